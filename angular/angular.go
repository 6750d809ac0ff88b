// angular.go --  This file is part of goHF project.
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

// Package angular provides the angular-momentum coupling coefficients used
// with the Coulomb integrals: 3j and 6j symbols, reduced matrix elements of
// the spherical tensor C^k, and the multipolarity selection rules.
//
// Angular momenta are passed as 2j (odd for half-integer j) so every
// argument is an int.
package angular

import "math"

// TwoJ returns 2j for the relativistic quantum number kappa.
func TwoJ(kappa int) int {
	if kappa < 0 {
		return -2*kappa - 1
	}
	return 2*kappa - 1
}

// L returns the orbital angular momentum l for kappa.
func L(kappa int) int {
	if kappa < 0 {
		return -kappa - 1
	}
	return kappa
}

// IndexFromKappa maps kappa = -1, 1, -2, 2, ... to 0, 1, 2, 3, ...
func IndexFromKappa(kappa int) int {
	if kappa < 0 {
		return -2*kappa - 2
	}
	return 2*kappa - 1
}

// KappaFromIndex is the inverse of IndexFromKappa.
func KappaFromIndex(i int) int {
	if i%2 == 0 {
		return -(i/2 + 1)
	}
	return i/2 + 1
}

// Parity is 1 if la+lb+k is even and 0 otherwise.
func Parity(la, lb, k int) int {
	if (la+lb+k)%2 == 0 {
		return 1
	}
	return 0
}

// Triangle reports whether 2j values a, b, c satisfy the triangle rule and
// sum to an integer j.
func Triangle(a, b, c int) bool {
	if a < 0 || b < 0 || c < 0 || (a+b+c)%2 != 0 {
		return false
	}
	return c >= abs(a-b) && c <= a+b
}

// ThreeJ returns the 3j symbol (j1 j2 j3; m1 m2 m3), all arguments given as
// twice their value.
func ThreeJ(tj1, tj2, tj3, tm1, tm2, tm3 int) float64 {
	if tm1+tm2+tm3 != 0 || !Triangle(tj1, tj2, tj3) {
		return 0
	}
	if abs(tm1) > tj1 || abs(tm2) > tj2 || abs(tm3) > tj3 {
		return 0
	}
	if (tj1+tm1)%2 != 0 || (tj2+tm2)%2 != 0 || (tj3+tm3)%2 != 0 {
		return 0
	}
	j1pm1, j1mm1 := (tj1+tm1)/2, (tj1-tm1)/2
	j2pm2, j2mm2 := (tj2+tm2)/2, (tj2-tm2)/2
	j3pm3, j3mm3 := (tj3+tm3)/2, (tj3-tm3)/2
	j12m3 := (tj1 + tj2 - tj3) / 2
	j3m2p1 := (tj3 - tj2 + tm1) / 2
	j3m1m2 := (tj3 - tj1 - tm2) / 2

	tmin := max(0, -j3m2p1, -j3m1m2)
	tmax := min(j12m3, j1mm1, j2pm2)

	pre := 0.5 * (lnDelta(tj1, tj2, tj3) +
		lnFact(j1pm1) + lnFact(j1mm1) + lnFact(j2pm2) +
		lnFact(j2mm2) + lnFact(j3pm3) + lnFact(j3mm3))

	sum := 0.0
	for t := tmin; t <= tmax; t++ {
		den := lnFact(t) + lnFact(j3m2p1+t) + lnFact(j3m1m2+t) +
			lnFact(j12m3-t) + lnFact(j1mm1-t) + lnFact(j2pm2-t)
		sum += sign(t) * math.Exp(pre-den)
	}
	return sign((tj1-tj2-tm3)/2) * sum
}

// SixJ returns the 6j symbol {j1 j2 j3; j4 j5 j6}, all arguments given as
// twice their value.
func SixJ(tj1, tj2, tj3, tj4, tj5, tj6 int) float64 {
	if !Triangle(tj1, tj2, tj3) || !Triangle(tj1, tj5, tj6) ||
		!Triangle(tj4, tj2, tj6) || !Triangle(tj4, tj5, tj3) {
		return 0
	}
	a1 := (tj1 + tj2 + tj3) / 2
	a2 := (tj1 + tj5 + tj6) / 2
	a3 := (tj4 + tj2 + tj6) / 2
	a4 := (tj4 + tj5 + tj3) / 2
	b1 := (tj1 + tj2 + tj4 + tj5) / 2
	b2 := (tj2 + tj3 + tj5 + tj6) / 2
	b3 := (tj3 + tj1 + tj6 + tj4) / 2

	pre := 0.5 * (lnDelta(tj1, tj2, tj3) + lnDelta(tj1, tj5, tj6) +
		lnDelta(tj4, tj2, tj6) + lnDelta(tj4, tj5, tj3))

	sum := 0.0
	for t := max(a1, a2, a3, a4); t <= min(b1, b2, b3); t++ {
		den := lnFact(t-a1) + lnFact(t-a2) + lnFact(t-a3) + lnFact(t-a4) +
			lnFact(b1-t) + lnFact(b2-t) + lnFact(b3-t)
		sum += sign(t) * math.Exp(pre+lnFact(t+1)-den)
	}
	return sum
}

// TildeCk returns the reduced matrix element <ka||C^k||kb> without the
// (-1)^(ja+1/2) phase: sqrt([ja][jb]) (ja jb k; -1/2 1/2 0), zero if the
// parity rule forbids it.
func TildeCk(k, ka, kb int) float64 {
	if Parity(L(ka), L(kb), k) == 0 {
		return 0
	}
	tja, tjb := TwoJ(ka), TwoJ(kb)
	return math.Sqrt(float64((tja+1)*(tjb+1))) * ThreeJ(tja, tjb, 2*k, -1, 1, 0)
}

// Ck returns <ka||C^k||kb>.
func Ck(k, ka, kb int) float64 {
	return sign((TwoJ(ka)+1)/2) * TildeCk(k, ka, kb)
}

// KMinMaxCk returns the smallest and largest k with non-zero <ka||C^k||kb>.
func KMinMaxCk(ka, kb int) (kmin, kmax int) {
	tja, tjb := TwoJ(ka), TwoJ(kb)
	la, lb := L(ka), L(kb)
	kmin = abs(tja-tjb) / 2
	kmax = (tja + tjb) / 2
	if Parity(la, lb, kmin) == 0 {
		kmin++
	}
	if Parity(la, lb, kmax) == 0 {
		kmax--
	}
	return kmin, kmax
}

// KMinMaxQ returns the range of k (in steps of two) for which Q^k_abcd can
// be non-zero. The range is empty (kmax < kmin) when the (a,c) and (b,d)
// selection rules do not overlap.
func KMinMaxQ(ka, kb, kc, kd int) (kmin, kmax int) {
	kmin1, kmax1 := KMinMaxCk(ka, kc)
	kmin2, kmax2 := KMinMaxCk(kb, kd)
	if kmin1%2 != kmin2%2 {
		return 1, 0
	}
	return max(kmin1, kmin2), min(kmax1, kmax2)
}

func lnDelta(a, b, c int) float64 {
	return lnFact((a+b-c)/2) + lnFact((a-b+c)/2) + lnFact((-a+b+c)/2) - lnFact((a+b+c)/2+1)
}

var lnFactTable = func() []float64 {
	res := make([]float64, 171)
	for n := 2; n < len(res); n++ {
		res[n] = res[n-1] + math.Log(float64(n))
	}
	return res
}()

func lnFact(n int) float64 {
	if n < len(lnFactTable) {
		return lnFactTable[n]
	}
	lg, _ := math.Lgamma(float64(n + 1))
	return lg
}

func sign(n int) float64 {
	if n%2 == 0 {
		return 1
	}
	return -1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
