// collaborators.go --  This file is part of goHF project.
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

// Orbital is the view of a single-particle state the table needs: a stable
// index for the key and the relativistic quantum number kappa for the
// angular factors.
type Orbital interface {
	Index() Index
	Kappa() int
}

// Evaluator computes the base integrals the table caches.
//
// KRange returns the allowed multipolarities for the quadruple, stepping by
// two from kmin to kmax. An empty range (kmax < kmin) means every Q^k_abcd
// vanishes by selection rules. KRange must be invariant under the index
// permutations of the table's symmetry class.
//
// Qk is called concurrently from several goroutines, with distinct arguments.
type Evaluator interface {
	KRange(a, b, c, d Orbital) (kmin, kmax int)
	Qk(k int, a, b, c, d Orbital) (float64, error)
}

// Angular provides the angular-recoupling coefficients used by R and P.
//
// TildeCk is the reduced matrix element of the normalised spherical tensor,
// <kappaA||C^k||kappaB> without the (-1)^(ja+1/2) phase.
// SixJ returns {ja jb k; jc jd l} with ja..jd given as 2j.
type Angular interface {
	TildeCk(k, kappaA, kappaB int) float64
	SixJ(tja, tjb, tjc, tjd, k, l int) float64
}

func twoJ(kappa int) int {
	if kappa < 0 {
		return -2*kappa - 1
	}
	return 2*kappa - 1
}
