// basis.go --  This file is part of goHF project.
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
	"strconv"
	"strings"
)

// ErrBasisFormat indicates a malformed basis block.
var ErrBasisFormat = errors.New("orbital: malformed basis block")

// ParseBasis reads a basis block starting at data[pos]:
//
//	nOrbs
//	n kappa nPrim
//	zeta coeff      (nPrim lines)
//	...
//
// It returns the shells and the position of the first line after the block.
func ParseBasis(data []string, pos int) ([]Shell, int, error) {
	fields, err := basisLine(data, pos, 1)
	if err != nil {
		return nil, pos, err
	}
	nOrbs, err := strconv.Atoi(fields[0])
	if err != nil || nOrbs < 0 {
		return nil, pos, fmt.Errorf("%w: line %d: bad orbital count %q", ErrBasisFormat, pos+1, fields[0])
	}
	pos++

	shells := make([]Shell, 0, nOrbs)
	for k := 0; k < nOrbs; k++ {
		fields, err := basisLine(data, pos, 3)
		if err != nil {
			return nil, pos, err
		}
		var s Shell
		var nPrim int
		for i, dst := range []*int{&s.N, &s.Kappa, &nPrim} {
			if *dst, err = strconv.Atoi(fields[i]); err != nil {
				return nil, pos, fmt.Errorf("%w: line %d: %v", ErrBasisFormat, pos+1, err)
			}
		}
		if nPrim <= 0 {
			return nil, pos, fmt.Errorf("%w: line %d: orbital without primitives", ErrBasisFormat, pos+1)
		}
		pos++
		for l := 0; l < nPrim; l++ {
			fields, err := basisLine(data, pos, 2)
			if err != nil {
				return nil, pos, err
			}
			var pg PrimitiveGauss
			if pg.Zeta, err = strconv.ParseFloat(fields[0], 64); err != nil {
				return nil, pos, fmt.Errorf("%w: line %d: %v", ErrBasisFormat, pos+1, err)
			}
			if pg.Coeff, err = strconv.ParseFloat(fields[1], 64); err != nil {
				return nil, pos, fmt.Errorf("%w: line %d: %v", ErrBasisFormat, pos+1, err)
			}
			if pg.Zeta <= 0 {
				return nil, pos, fmt.Errorf("%w: line %d: exponent must be positive", ErrBasisFormat, pos+1)
			}
			s.Funcs = append(s.Funcs, pg)
			pos++
		}
		shells = append(shells, s)
	}
	return shells, pos, nil
}

func basisLine(data []string, pos, want int) ([]string, error) {
	if pos >= len(data) {
		return nil, fmt.Errorf("%w: unexpected end of input at line %d", ErrBasisFormat, pos+1)
	}
	fields := strings.Fields(data[pos])
	if len(fields) < want {
		return nil, fmt.Errorf("%w: line %d: want %d fields, got %q", ErrBasisFormat, pos+1, want, data[pos])
	}
	return fields, nil
}
