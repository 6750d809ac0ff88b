// errors.go --  This file is part of goHF project.
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

import "errors"

var (
	// ErrEmptyBasis indicates Fill or Update was called without orbitals.
	ErrEmptyBasis = errors.New("coulomb: basis must contain at least one orbital")
	// ErrNilOrbital indicates a nil orbital handle in the basis or in a single-entry call.
	ErrNilOrbital = errors.New("coulomb: nil orbital")
	// ErrDuplicateIndex indicates two orbitals in the basis share an index.
	ErrDuplicateIndex = errors.New("coulomb: duplicate orbital index in basis")
	// ErrMalformedRange indicates the evaluator returned a multipolarity range
	// that cannot be stored densely (negative kmin or kmax-kmin odd).
	ErrMalformedRange = errors.New("coulomb: malformed multipolarity range")
	// ErrRangeMismatch indicates an update found a stored entry whose
	// multipolarity range no longer matches the evaluator.
	ErrRangeMismatch = errors.New("coulomb: stored multipolarity range does not match evaluator")
	// ErrNoEvaluator indicates the table was built without an Evaluator.
	ErrNoEvaluator = errors.New("coulomb: table has no evaluator")
	// ErrNoAngular indicates the table was built without an Angular source,
	// so R, P and W are unavailable.
	ErrNoAngular = errors.New("coulomb: table has no angular coefficients")
)
