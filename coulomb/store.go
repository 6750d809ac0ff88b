// store.go --  This file is part of goHF project.
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
	"iter"

	"golang.org/x/exp/slices"
)

// Entry holds Q^k for k = KMin, KMin+2, ... of one canonical quadruple.
type Entry struct {
	KMin   int
	Values []float32
}

// KMax is the largest stored multipolarity.
func (e *Entry) KMax() int {
	return e.KMin + 2*(len(e.Values)-1)
}

// At returns the stored value for k, or false if k is outside the range or
// has the wrong parity.
func (e *Entry) At(k int) (float32, bool) {
	if e == nil || k < e.KMin || (k-e.KMin)%2 != 0 {
		return 0, false
	}
	i := (k - e.KMin) / 2
	if i >= len(e.Values) {
		return 0, false
	}
	return e.Values[i], true
}

// Store maps canonical keys to entries. It is not safe for concurrent
// mutation; reads may run concurrently once writes have stopped.
type Store struct {
	data   map[Key]*Entry
	keys   []Key // insertion order until sorted
	sorted bool
}

// NewStore returns an empty store with room for size entries.
func NewStore(size int) *Store {
	return &Store{data: make(map[Key]*Entry, size), sorted: true}
}

// InsertIfAbsent returns the entry for key, creating it with n zero values
// starting at kmin if it does not exist yet. The bool reports whether the
// entry was created. An existing entry is returned untouched.
func (s *Store) InsertIfAbsent(key Key, kmin, n int) (*Entry, bool) {
	if e, ok := s.data[key]; ok {
		return e, false
	}
	if n <= 0 {
		panic(fmt.Sprintf("coulomb: inserting empty entry %v", key))
	}
	e := &Entry{KMin: kmin, Values: make([]float32, n)}
	s.put(key, e)
	return e, true
}

// put adds a new entry; key must not be present yet.
func (s *Store) put(key Key, e *Entry) {
	if len(e.Values) == 0 {
		panic(fmt.Sprintf("coulomb: inserting empty entry %v", key))
	}
	if s.data == nil {
		s.data = make(map[Key]*Entry)
	}
	s.data[key] = e
	if len(s.keys) > 0 && key < s.keys[len(s.keys)-1] {
		s.sorted = false
	}
	s.keys = append(s.keys, key)
}

// Find returns the entry stored under key, or nil.
func (s *Store) Find(key Key) *Entry {
	return s.data[key]
}

// Len is the number of entries.
func (s *Store) Len() int {
	return len(s.data)
}

// Count is the number of stored values over all entries.
func (s *Store) Count() int {
	n := 0
	for key, e := range s.data {
		if len(e.Values) == 0 {
			panic(fmt.Sprintf("coulomb: empty entry %v", key))
		}
		n += len(e.Values)
	}
	return n
}

// Merge moves all entries of other into s and leaves other empty. The key
// sets must be disjoint.
func (s *Store) Merge(other *Store) {
	if other == nil || len(other.data) == 0 {
		return
	}
	for _, key := range other.keys {
		if _, ok := s.data[key]; ok {
			panic(fmt.Sprintf("coulomb: key %v present in both merged stores", key))
		}
		s.put(key, other.data[key])
	}
	other.Clear()
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.data = make(map[Key]*Entry)
	s.keys = nil
	s.sorted = true
}

// Sort puts the key order into canonical order so that later calls to All
// need not sort a copy.
func (s *Store) Sort() {
	if !s.sorted {
		slices.Sort(s.keys)
		s.sorted = true
	}
}

// All yields every entry once, in increasing key order. It does not modify
// the store and may be ranged over any number of times.
func (s *Store) All() iter.Seq2[Key, *Entry] {
	return func(yield func(Key, *Entry) bool) {
		keys := s.keys
		if !s.sorted {
			keys = slices.Clone(keys)
			slices.Sort(keys)
		}
		for _, key := range keys {
			if !yield(key, s.data[key]) {
				return
			}
		}
	}
}

// Iterate calls f for all entries in key order.
//
// When f returns a non-nil error, iteration stops and the error is returned.
func (s *Store) Iterate(f func(Key, *Entry) error) error {
	for key, e := range s.All() {
		if err := f(key, e); err != nil {
			return err
		}
	}
	return nil
}
