// symmetry.go --  This file is part of goHF project.
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

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Index identifies one orbital of the basis.
type Index = uint16

// Key is an index quadruple {a,b,c,d} packed into 64 bits, a in the highest
// 16. Comparing two keys numerically compares the quadruples
// lexicographically.
type Key uint64

// MakeKey packs a,b,c,d without reordering them.
func MakeKey(a, b, c, d Index) Key {
	return Key(a)<<48 | Key(b)<<32 | Key(c)<<16 | Key(d)
}

// Indices unpacks the key.
func (k Key) Indices() (a, b, c, d Index) {
	return Index(k >> 48), Index(k >> 32), Index(k >> 16), Index(k)
}

// Lead is the first index of the key.
func (k Key) Lead() Index {
	return Index(k >> 48)
}

func (k Key) String() string {
	a, b, c, d := k.Indices()
	return fmt.Sprintf("{%d,%d,%d,%d}", a, b, c, d)
}

// Symmetry selects which index permutations of Q^k_abcd are treated as the
// same integral.
type Symmetry uint8

const (
	// SymmetryNone stores every quadruple separately.
	SymmetryNone Symmetry = iota
	// SymmetryQk: abcd = cbad = adcb = cdab = badc = bcda = dabc = dcba.
	SymmetryQk
	// SymmetryWk: abcd = badc = cdab = dcba.
	SymmetryWk
)

func (s Symmetry) String() string {
	switch s {
	case SymmetryNone:
		return "none"
	case SymmetryQk:
		return "Qk"
	case SymmetryWk:
		return "Wk"
	}
	return fmt.Sprintf("Symmetry(%d)", uint8(s))
}

// GroupSize is the number of index permutations identified by s.
func (s Symmetry) GroupSize() int {
	switch s {
	case SymmetryQk:
		return 8
	case SymmetryWk:
		return 4
	}
	return 1
}

// ParseSymmetry reads a symmetry class name as written in input files.
func ParseSymmetry(name string) (Symmetry, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return SymmetryNone, nil
	case "qk", "rk", "a":
		return SymmetryQk, nil
	case "wk", "b":
		return SymmetryWk, nil
	}
	return SymmetryNone, fmt.Errorf("coulomb: unknown symmetry %q", name)
}

// Canonical returns the normal-ordered key of {a,b,c,d} under s.
//
// The smallest index goes first. For Qk there are two images with it in
// front (second and fourth swapped) and the one with the smaller second
// index wins. When indices repeat, the smallest packed image over the whole
// group is taken, so the result does not depend on which of the tied
// positions the minimum came from.
func Canonical(s Symmetry, a, b, c, d Index) Key {
	im, n := s.images(a, b, c, d)
	return slices.Min(im[:n])
}

// CanonicalKey is Canonical applied to an already packed key.
func CanonicalKey(s Symmetry, k Key) Key {
	a, b, c, d := k.Indices()
	return Canonical(s, a, b, c, d)
}

// Images lists the group images of k, k itself first. Repeated indices give
// repeated images.
func (s Symmetry) Images(k Key) []Key {
	im, n := s.images(k.Indices())
	return slices.Clone(im[:n])
}

func (s Symmetry) images(a, b, c, d Index) ([8]Key, int) {
	switch s {
	case SymmetryQk:
		return [8]Key{
			MakeKey(a, b, c, d), MakeKey(c, b, a, d),
			MakeKey(a, d, c, b), MakeKey(c, d, a, b),
			MakeKey(b, a, d, c), MakeKey(b, c, d, a),
			MakeKey(d, a, b, c), MakeKey(d, c, b, a),
		}, 8
	case SymmetryWk:
		return [8]Key{
			MakeKey(a, b, c, d), MakeKey(b, a, d, c),
			MakeKey(c, d, a, b), MakeKey(d, c, b, a),
		}, 4
	}
	return [8]Key{MakeKey(a, b, c, d)}, 1
}

// Multiplicity is the number of distinct quadruples sharing k's canonical
// entry.
func (s Symmetry) Multiplicity(k Key) int {
	im := s.Images(k)
	slices.Sort(im)
	return len(slices.Compact(im))
}
