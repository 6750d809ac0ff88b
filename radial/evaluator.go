// evaluator.go --  This file is part of goHF project.
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

package radial

import (
	"fmt"

	"github.com/MirzaevaIV/goHF/angular"
	"github.com/MirzaevaIV/goHF/coulomb"
)

// Evaluator computes Q^k_abcd = (-1)^k C~^k_ac C~^k_bd R^k_abcd with
// R^k_abcd = int P_a P_c y^k_bd dr. It implements coulomb.Evaluator.
//
// The y^k functions are tabulated by SetBasis; after the orbitals change,
// SetBasis must be called again before refreshing a table.
type Evaluator struct {
	quad *Quadrature
	ang  coulomb.Angular
	yk   *YkTable
}

// NewEvaluator returns an evaluator on q. ang supplies C~^k.
func NewEvaluator(q *Quadrature, ang coulomb.Angular) *Evaluator {
	return &Evaluator{quad: q, ang: ang}
}

// SetBasis tabulates y^k for all pairs of basis.
func (e *Evaluator) SetBasis(basis []Orbital, workers int) error {
	yk, err := NewYkTable(e.quad, basis, workers)
	if err != nil {
		return err
	}
	e.yk = yk
	return nil
}

// YkTable is the current y^k table (nil before SetBasis).
func (e *Evaluator) YkTable() *YkTable { return e.yk }

// KRange returns the parity and triangle allowed k of Q^k_abcd.
func (e *Evaluator) KRange(a, b, c, d coulomb.Orbital) (int, int) {
	return angular.KMinMaxQ(a.Kappa(), b.Kappa(), c.Kappa(), d.Kappa())
}

// Qk computes Q^k_abcd.
func (e *Evaluator) Qk(k int, a, b, c, d coulomb.Orbital) (float64, error) {
	if e.yk == nil {
		return 0, fmt.Errorf("%w: no basis set", ErrNoYk)
	}
	ra, ok := a.(Orbital)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNotRadial, a.Index())
	}
	rc, ok := c.(Orbital)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNotRadial, c.Index())
	}
	tCac := e.ang.TildeCk(k, a.Kappa(), c.Kappa())
	tCbd := e.ang.TildeCk(k, b.Kappa(), d.Kappa())
	if tCac == 0 || tCbd == 0 {
		return 0, nil
	}
	ybd := e.yk.Get(k, b.Index(), d.Index())
	if ybd == nil {
		return 0, fmt.Errorf("%w: k=%d (%d,%d)", ErrNoYk, k, b.Index(), d.Index())
	}
	s := 1.0
	if k%2 != 0 {
		s = -1.0
	}
	return s * tCac * tCbd * e.quad.Integrate3(ra.Radial(), rc.Radial(), ybd), nil
}

// Rk computes R^k_abcd directly, without angular factors.
func (e *Evaluator) Rk(k int, a, b, c, d Orbital) (float64, error) {
	if e.yk == nil {
		return 0, fmt.Errorf("%w: no basis set", ErrNoYk)
	}
	ybd := e.yk.Get(k, b.Index(), d.Index())
	if ybd == nil {
		return 0, fmt.Errorf("%w: k=%d (%d,%d)", ErrNoYk, k, b.Index(), d.Index())
	}
	return e.quad.Integrate3(a.Radial(), c.Radial(), ybd), nil
}
