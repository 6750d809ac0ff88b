// helpers_test.go --  This file is part of goHF project.
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

package coulomb_test

import (
	"errors"
	"sync/atomic"

	"github.com/MirzaevaIV/goHF/angular"
	"github.com/MirzaevaIV/goHF/coulomb"
)

// orb is a bare orbital handle.
type orb struct {
	idx   coulomb.Index
	kappa int
}

func (o orb) Index() coulomb.Index { return o.idx }
func (o orb) Kappa() int          { return o.kappa }

func makeBasis(kappas ...int) []coulomb.Orbital {
	res := make([]coulomb.Orbital, len(kappas))
	for i, k := range kappas {
		res[i] = orb{idx: coulomb.Index(i), kappa: k}
	}
	return res
}

var errBoom = errors.New("boom")

// fakeEval returns h(k)*s(a,c)*s(b,d)*scale with s symmetric, so the value
// is invariant under both symmetry groups. The k range comes from the
// angular selection rules.
type fakeEval struct {
	scale  float64
	calls  atomic.Int64
	failAt int64 // fail on this call number when > 0
	krange func(a, b, c, d coulomb.Orbital) (int, int)
}

func newFakeEval() *fakeEval { return &fakeEval{scale: 1} }

func (e *fakeEval) KRange(a, b, c, d coulomb.Orbital) (int, int) {
	if e.krange != nil {
		return e.krange(a, b, c, d)
	}
	return angular.KMinMaxQ(a.Kappa(), b.Kappa(), c.Kappa(), d.Kappa())
}

func (e *fakeEval) Qk(k int, a, b, c, d coulomb.Orbital) (float64, error) {
	n := e.calls.Add(1)
	if e.failAt > 0 && n == e.failAt {
		return 0, errBoom
	}
	return e.value(k, a, b, c, d), nil
}

func (e *fakeEval) value(k int, a, b, c, d coulomb.Orbital) float64 {
	return e.scale * pairValue(a, c) * pairValue(b, d) / float64(k+1)
}

func pairValue(x, y coulomb.Orbital) float64 {
	i, j := float64(x.Index()), float64(y.Index())
	return 1 + 0.1*(i+j) + 0.01*i*j
}

// directSum adds every allowed Q^k over all ordered quadruples of basis.
func directSum(e *fakeEval, basis []coulomb.Orbital, distinct bool) float64 {
	sum := 0.0
	for _, a := range basis {
		for _, b := range basis {
			for _, c := range basis {
				for _, d := range basis {
					if distinct && !allDistinct(a.Index(), b.Index(), c.Index(), d.Index()) {
						continue
					}
					kmin, kmax := e.KRange(a, b, c, d)
					for k := kmin; k <= kmax; k += 2 {
						sum += e.value(k, a, b, c, d)
					}
				}
			}
		}
	}
	return sum
}

func allDistinct(a, b, c, d coulomb.Index) bool {
	return a != b && a != c && a != d && b != c && b != d && c != d
}
