// yk.go --  This file is part of goHF project.
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
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/MirzaevaIV/goHF/angular"
	"github.com/MirzaevaIV/goHF/coulomb"
)

// Orbital is an orbital with a radial function tabulated on the grid.
type Orbital interface {
	coulomb.Orbital
	Radial() []float64
}

// Yk returns y^k_ab(r) = int r_<^k / r_>^(k+1) P_a(r') P_b(r') dr' on the
// quadrature's grid. The same weights as Integrate are used, so
// int P_a P_c y^k_bd dr equals int P_b P_d y^k_ac dr up to rounding.
func (q *Quadrature) Yk(k int, pa, pb []float64) []float64 {
	r := q.Grid.R
	n := len(r)
	y := make([]float64, n)

	// r' <= r
	inner := 0.0
	for i := 0; i < n; i++ {
		if i > 0 {
			inner *= math.Pow(r[i-1]/r[i], float64(k+1))
		}
		inner += q.W[i] * pa[i] * pb[i] / r[i]
		y[i] = inner
	}
	// r' > r
	outer := 0.0
	for i := n - 2; i >= 0; i-- {
		outer = (outer + q.W[i+1]*pa[i+1]*pb[i+1]/r[i+1]) * math.Pow(r[i]/r[i+1], float64(k))
		y[i] += outer
	}
	return y
}

type pair struct{ a, b coulomb.Index }

func makePair(a, b coulomb.Index) pair {
	if b < a {
		a, b = b, a
	}
	return pair{a, b}
}

// ykPair holds y^k for k = kmin, kmin+2, ...
type ykPair struct {
	kmin int
	y    [][]float64
}

// YkTable holds y^k_ab for every pair of a basis and every k allowed by
// the C^k selection rule. It is read-only once built.
type YkTable struct {
	data map[pair]ykPair
}

// NewYkTable tabulates y^k_ab for all pairs a <= b of basis using up to
// workers goroutines.
func NewYkTable(q *Quadrature, basis []Orbital, workers int) (*YkTable, error) {
	n := q.Grid.Size()
	for _, o := range basis {
		if len(o.Radial()) != n {
			return nil, fmt.Errorf("%w: orbital %d has %d points, grid %d",
				ErrGridSize, o.Index(), len(o.Radial()), n)
		}
	}

	var pairs [][2]Orbital
	for i, a := range basis {
		for _, b := range basis[i:] {
			pairs = append(pairs, [2]Orbital{a, b})
		}
	}
	res := make([]ykPair, len(pairs))

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, p := range pairs {
		g.Go(func() error {
			a, b := p[0], p[1]
			kmin, kmax := angular.KMinMaxCk(a.Kappa(), b.Kappa())
			yp := ykPair{kmin: kmin}
			for k := kmin; k <= kmax; k += 2 {
				yp.y = append(yp.y, q.Yk(k, a.Radial(), b.Radial()))
			}
			res[i] = yp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	t := &YkTable{data: make(map[pair]ykPair, len(pairs))}
	for i, p := range pairs {
		t.data[makePair(p[0].Index(), p[1].Index())] = res[i]
	}
	return t, nil
}

// Get returns y^k_ab, or nil if it is not tabulated.
func (t *YkTable) Get(k int, a, b coulomb.Index) []float64 {
	yp, ok := t.data[makePair(a, b)]
	if !ok || k < yp.kmin || (k-yp.kmin)%2 != 0 {
		return nil
	}
	i := (k - yp.kmin) / 2
	if i >= len(yp.y) {
		return nil
	}
	return yp.y[i]
}

// Len is the number of tabulated pairs.
func (t *YkTable) Len() int { return len(t.data) }
