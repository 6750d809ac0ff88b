// grid.go --  This file is part of goHF project.
// Mirzaeva Irina, 2024
//
//	goHF is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------

// Package radial evaluates Coulomb integrals of orbitals tabulated on a
// radial grid: quadrature, the screening functions y^k_ab(r) and the base
// integral Q^k_abcd.
package radial

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrGrid indicates invalid grid parameters.
	ErrGrid = errors.New("radial: invalid grid parameters")
	// ErrQuadratureOrder indicates a quadrature order outside 1..14.
	ErrQuadratureOrder = errors.New("radial: quadrature order must be between 1 and 14")
	// ErrNoYk indicates a y^k function missing from the table.
	ErrNoYk = errors.New("radial: y^k not tabulated")
	// ErrNotRadial indicates an orbital without a tabulated radial function.
	ErrNotRadial = errors.New("radial: orbital has no radial function")
	// ErrGridSize indicates a function tabulated on a different number of points.
	ErrGridSize = errors.New("radial: function length does not match grid")
)

// Grid is an exponential grid r_i = r0 exp(i du), so dr/du = r.
type Grid struct {
	R    []float64
	Drdu []float64
	Du   float64
}

// NewGrid returns a grid of n points from r0 to rmax.
func NewGrid(r0, rmax float64, n int) (*Grid, error) {
	if r0 <= 0 || rmax <= r0 || n < 2 {
		return nil, fmt.Errorf("%w: r0=%g rmax=%g n=%d", ErrGrid, r0, rmax, n)
	}
	g := &Grid{
		R:    make([]float64, n),
		Drdu: make([]float64, n),
		Du:   math.Log(rmax/r0) / float64(n-1),
	}
	for i := range g.R {
		g.R[i] = r0 * math.Exp(float64(i)*g.Du)
		g.Drdu[i] = g.R[i]
	}
	g.R[n-1] = rmax
	g.Drdu[n-1] = rmax
	return g, nil
}

// Size is the number of grid points.
func (g *Grid) Size() int { return len(g.R) }
