// tables.go --  This file is part of goHF project.
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

package angular

// Tables holds pre-computed C~^k and 6j symbols for all angular momenta up
// to a maximum 2j. It is read-only after NewTables and safe for concurrent
// use. Arguments outside the tabulated range are computed directly.
type Tables struct {
	max2j int
	nk    int // number of kappa indices
	nj    int // number of half-integer j values
	maxk  int
	ck    []float64 // [k][ia][ib]
	sixj  []float64 // [ja][jb][jc][jd][k][l]
}

// NewTables tabulates everything needed for orbitals with 2j <= max2j.
func NewTables(max2j int) *Tables {
	if max2j < 1 {
		max2j = 1
	}
	if max2j%2 == 0 {
		max2j++
	}
	t := &Tables{
		max2j: max2j,
		nk:    max2j + 1,
		nj:    (max2j + 1) / 2,
		maxk:  max2j,
	}

	t.ck = make([]float64, (t.maxk+1)*t.nk*t.nk)
	for k := 0; k <= t.maxk; k++ {
		for ia := 0; ia < t.nk; ia++ {
			for ib := 0; ib < t.nk; ib++ {
				t.ck[t.ckIndex(k, ia, ib)] = TildeCk(k, KappaFromIndex(ia), KappaFromIndex(ib))
			}
		}
	}

	nk1 := t.maxk + 1
	t.sixj = make([]float64, t.nj*t.nj*t.nj*t.nj*nk1*nk1)
	for ja := 0; ja < t.nj; ja++ {
		for jb := 0; jb < t.nj; jb++ {
			for jc := 0; jc < t.nj; jc++ {
				for jd := 0; jd < t.nj; jd++ {
					for k := 0; k <= t.maxk; k++ {
						for l := 0; l <= t.maxk; l++ {
							t.sixj[t.sixjIndex(ja, jb, jc, jd, k, l)] =
								SixJ(2*ja+1, 2*jb+1, 2*k, 2*jc+1, 2*jd+1, 2*l)
						}
					}
				}
			}
		}
	}
	return t
}

// Max2j is the largest tabulated 2j.
func (t *Tables) Max2j() int { return t.max2j }

func (t *Tables) ckIndex(k, ia, ib int) int {
	return (k*t.nk+ia)*t.nk + ib
}

func (t *Tables) sixjIndex(ja, jb, jc, jd, k, l int) int {
	nk1 := t.maxk + 1
	return ((((ja*t.nj+jb)*t.nj+jc)*t.nj+jd)*nk1+k)*nk1 + l
}

// TildeCk returns C~^k for kappa values ka, kb.
func (t *Tables) TildeCk(k, ka, kb int) float64 {
	ia, ib := IndexFromKappa(ka), IndexFromKappa(kb)
	if k < 0 || k > t.maxk || ia < 0 || ia >= t.nk || ib < 0 || ib >= t.nk {
		return TildeCk(k, ka, kb)
	}
	return t.ck[t.ckIndex(k, ia, ib)]
}

// SixJ returns {ja jb k; jc jd l} for half-integer ja..jd (given as 2j) and
// integer k, l.
func (t *Tables) SixJ(tja, tjb, tjc, tjd, k, l int) float64 {
	if !t.tabulated(tja) || !t.tabulated(tjb) || !t.tabulated(tjc) || !t.tabulated(tjd) ||
		k < 0 || k > t.maxk || l < 0 || l > t.maxk {
		return SixJ(tja, tjb, 2*k, tjc, tjd, 2*l)
	}
	return t.sixj[t.sixjIndex(tja/2, tjb/2, tjc/2, tjd/2, k, l)]
}

func (t *Tables) tabulated(tj int) bool {
	return tj > 0 && tj%2 == 1 && tj <= t.max2j
}
