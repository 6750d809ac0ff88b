// mix.go --  This file is part of goHF project.
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

package orbital

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/MirzaevaIV/goHF/radial"
)

// Damping is the weight of the previous function in Mix after the first
// iteration.
const Damping = 0.5

// ErrLinearDependence indicates an overlap matrix that is not positive definite.
var ErrLinearDependence = errors.New("orbital: basis is linearly dependent")

// Mix replaces o's radial function by (1-eta)*next + eta*old and
// renormalises it. eta is zero on iteration 0 and Damping afterwards.
func Mix(o *Orbital, next []float64, iteration int, q *radial.Quadrature) error {
	if len(next) != len(o.P) {
		return fmt.Errorf("%w: %v has %d points, got %d", radial.ErrGridSize, o, len(o.P), len(next))
	}
	eta := Damping
	if iteration == 0 {
		eta = 0
	}
	floats.Scale(eta, o.P)
	floats.AddScaled(o.P, 1-eta, next)
	return o.normalise(q)
}

// Orthonormalize applies symmetric (Lowdin) orthogonalisation S^(-1/2)
// within each kappa block of basis.
func Orthonormalize(basis []*Orbital, q *radial.Quadrature) error {
	blocks := make(map[int][]*Orbital)
	var order []int
	for _, o := range basis {
		if _, ok := blocks[o.K]; !ok {
			order = append(order, o.K)
		}
		blocks[o.K] = append(blocks[o.K], o)
	}
	for _, kappa := range order {
		if err := orthonormalizeBlock(blocks[kappa], q); err != nil {
			return fmt.Errorf("kappa %d: %w", kappa, err)
		}
	}
	return nil
}

func orthonormalizeBlock(block []*Orbital, q *radial.Quadrature) error {
	n := len(block)
	s := mat.NewSymDense(n, nil)
	for i := range block {
		for j := i; j < n; j++ {
			s.SetSym(i, j, q.Integrate2(block[i].P, block[j].P))
		}
	}
	x, err := sqrtInverse(s)
	if err != nil {
		return err
	}

	res := make([][]float64, n)
	for i := range block {
		res[i] = make([]float64, len(block[i].P))
		for j := range block {
			floats.AddScaled(res[i], x.At(i, j), block[j].P)
		}
	}
	for i, o := range block {
		o.P = res[i]
	}
	return nil
}

// sqrtInverse returns S^(-1/2) = V diag(1/sqrt(lambda)) V^T.
func sqrtInverse(s *mat.SymDense) (*mat.Dense, error) {
	n := s.SymmetricDim()
	var eigsym mat.EigenSym
	if ok := eigsym.Factorize(s, true); !ok {
		return nil, fmt.Errorf("%w: eigendecomposition failed", ErrLinearDependence)
	}
	vals := eigsym.Values(nil)
	inv := make([]float64, n)
	for i, v := range vals {
		if v <= 1e-12 {
			return nil, fmt.Errorf("%w: eigenvalue %g", ErrLinearDependence, v)
		}
		inv[i] = 1 / math.Sqrt(v)
	}
	var ev mat.Dense
	eigsym.VectorsTo(&ev)

	var tmp, res mat.Dense
	tmp.Mul(&ev, mat.NewDiagDense(n, inv))
	res.Mul(&tmp, ev.T())
	return &res, nil
}
