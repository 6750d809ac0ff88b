// orbital.go --  This file is part of goHF project.
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

// Package orbital describes the single-particle basis: orbitals built from
// contracted Gaussian primitives and tabulated on a radial grid.
package orbital

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/MirzaevaIV/goHF/angular"
	"github.com/MirzaevaIV/goHF/coulomb"
	"github.com/MirzaevaIV/goHF/radial"
)

var (
	// ErrKappa indicates kappa = 0 or a principal number below l+1.
	ErrKappa = errors.New("orbital: invalid quantum numbers")
	// ErrNorm indicates a radial function that vanishes on the grid.
	ErrNorm = errors.New("orbital: radial function has zero norm")
)

const spectroscopic = "spdfghiklmnoqrtuv"

// PrimitiveGauss is one term c exp(-zeta r^2) of a contraction.
type PrimitiveGauss struct {
	Zeta, Coeff float64
}

// Shell is the input description of one orbital.
type Shell struct {
	N, Kappa int
	Funcs    []PrimitiveGauss
}

// Orbital is a normalised radial function P(r) = r^(l+1) sum_i c_i exp(-zeta_i r^2)
// with its quantum numbers. It implements coulomb.Orbital and radial.Orbital.
type Orbital struct {
	ID    coulomb.Index
	N, K  int
	Funcs []PrimitiveGauss
	P     []float64
}

// Index is the basis index.
func (o *Orbital) Index() coulomb.Index { return o.ID }

// Kappa is the relativistic angular quantum number.
func (o *Orbital) Kappa() int { return o.K }

// Radial is P(r) on the grid.
func (o *Orbital) Radial() []float64 { return o.P }

// L is the orbital angular momentum.
func (o *Orbital) L() int { return angular.L(o.K) }

// TwoJ is 2j.
func (o *Orbital) TwoJ() int { return angular.TwoJ(o.K) }

// String gives the short spectroscopic name, e.g. "2p-" for n=2, kappa=1.
func (o *Orbital) String() string {
	return Symbol(o.N, o.K)
}

// Symbol formats n and kappa as "1s", "2p-", "3d", ...
func Symbol(n, kappa int) string {
	l := angular.L(kappa)
	letter := "?"
	if l < len(spectroscopic) {
		letter = spectroscopic[l : l+1]
	}
	if kappa > 0 {
		return fmt.Sprintf("%d%s-", n, letter)
	}
	return fmt.Sprintf("%d%s", n, letter)
}

// New tabulates and normalises shell s on q's grid.
func New(id coulomb.Index, s Shell, q *radial.Quadrature) (*Orbital, error) {
	if s.Kappa == 0 || s.N < angular.L(s.Kappa)+1 {
		return nil, fmt.Errorf("%w: n=%d kappa=%d", ErrKappa, s.N, s.Kappa)
	}
	o := &Orbital{ID: id, N: s.N, K: s.Kappa, Funcs: s.Funcs, P: Tabulate(s, q.Grid)}
	if err := o.normalise(q); err != nil {
		return nil, err
	}
	return o, nil
}

// Tabulate evaluates the unnormalised radial function of s on g.
func Tabulate(s Shell, g *radial.Grid) []float64 {
	l := float64(angular.L(s.Kappa))
	p := make([]float64, g.Size())
	for i, r := range g.R {
		for _, pg := range s.Funcs {
			p[i] += pg.Coeff * math.Exp(-pg.Zeta*r*r)
		}
		p[i] *= math.Pow(r, l+1)
	}
	return p
}

// Shell returns the orbital's description.
func (o *Orbital) Shell() Shell {
	return Shell{N: o.N, Kappa: o.K, Funcs: o.Funcs}
}

// Scaled returns a copy of s with every exponent multiplied by f.
func (s Shell) Scaled(f float64) Shell {
	res := Shell{N: s.N, Kappa: s.Kappa, Funcs: make([]PrimitiveGauss, len(s.Funcs))}
	for i, pg := range s.Funcs {
		res.Funcs[i] = PrimitiveGauss{Zeta: pg.Zeta * f, Coeff: pg.Coeff}
	}
	return res
}

// NewBasis builds orbitals for shells, numbered from 0 in order.
func NewBasis(shells []Shell, q *radial.Quadrature) ([]*Orbital, error) {
	res := make([]*Orbital, 0, len(shells))
	for i, s := range shells {
		o, err := New(coulomb.Index(i), s, q)
		if err != nil {
			return nil, fmt.Errorf("shell %d: %w", i+1, err)
		}
		res = append(res, o)
	}
	return res, nil
}

func (o *Orbital) normalise(q *radial.Quadrature) error {
	norm := q.Integrate2(o.P, o.P)
	if norm <= 0 || math.IsNaN(norm) {
		return fmt.Errorf("%w: %v", ErrNorm, o)
	}
	floats.Scale(1/math.Sqrt(norm), o.P)
	return nil
}

// Overlap returns <a|b> for all pairs of basis with equal kappa (zero
// otherwise).
func Overlap(basis []*Orbital, q *radial.Quadrature) *mat.SymDense {
	n := len(basis)
	s := mat.NewSymDense(n, nil)
	for i, a := range basis {
		for j := i; j < n; j++ {
			b := basis[j]
			if a.K != b.K {
				continue
			}
			s.SetSym(i, j, q.Integrate2(a.P, b.P))
		}
	}
	return s
}

// CoulombOrbitals converts basis to the form coulomb.Table expects.
func CoulombOrbitals(basis []*Orbital) []coulomb.Orbital {
	res := make([]coulomb.Orbital, len(basis))
	for i, o := range basis {
		res[i] = o
	}
	return res
}

// RadialOrbitals converts basis to the form radial.Evaluator expects.
func RadialOrbitals(basis []*Orbital) []radial.Orbital {
	res := make([]radial.Orbital, len(basis))
	for i, o := range basis {
		res[i] = o
	}
	return res
}
