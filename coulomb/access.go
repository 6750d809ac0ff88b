// access.go --  This file is part of goHF project.
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

package coulomb

// Qk returns the stored entry for {a,b,c,d} (all k), or nil if the
// quadruple is absent.
func (t *Table) Qk(a, b, c, d Orbital) *Entry {
	return t.store.Find(t.Key(a, b, c, d))
}

// LookupQ returns Q^k_abcd and whether it is stored. A forbidden quadruple,
// a k outside [kmin, kmax] or a k of the wrong parity is not stored.
func (t *Table) LookupQ(k int, a, b, c, d Orbital) (float64, bool) {
	q, ok := t.Qk(a, b, c, d).At(k)
	return float64(q), ok
}

// Q returns Q^k_abcd, or zero if it is not stored.
func (t *Table) Q(k int, a, b, c, d Orbital) float64 {
	q, _ := t.LookupQ(k, a, b, c, d)
	return q
}

// R returns the radial integral R^k_abcd = Q^k_abcd / ((-1)^k C~^k_ac C~^k_bd),
// or zero if Q^k_abcd is not stored or the table has no angular source.
func (t *Table) R(k int, a, b, c, d Orbital) float64 {
	q, ok := t.LookupQ(k, a, b, c, d)
	if !ok || t.ang == nil {
		return 0
	}
	s := 1.0
	if k%2 != 0 {
		s = -1.0
	}
	den := s * t.ang.TildeCk(k, a.Kappa(), c.Kappa()) * t.ang.TildeCk(k, b.Kappa(), d.Kappa())
	if den == 0 {
		return 0
	}
	return q / den
}

// P returns the exchange combination
//
//	P^k_abcd = (2k+1) sum_l {ja jc k; jb jd l} Q^l_abdc
//
// summed over the l stored for {a,b,d,c}. It is zero when that quadruple is
// absent or the table has no angular source.
func (t *Table) P(k int, a, b, c, d Orbital) float64 {
	ql := t.Qk(a, b, d, c) // exchange
	if ql == nil || t.ang == nil {
		return 0
	}
	tja, tjb := twoJ(a.Kappa()), twoJ(b.Kappa())
	tjc, tjd := twoJ(c.Kappa()), twoJ(d.Kappa())
	res := 0.0
	l := ql.KMin
	for _, q := range ql.Values {
		res += t.ang.SixJ(tja, tjc, tjb, tjd, k, l) * float64(q)
		l += 2
	}
	return float64(2*k+1) * res
}

// W returns Q^k_abcd + P^k_abcd. Without an angular source it is zero, not Q.
func (t *Table) W(k int, a, b, c, d Orbital) float64 {
	if t.ang == nil {
		return 0
	}
	return t.Q(k, a, b, c, d) + t.P(k, a, b, c, d)
}
