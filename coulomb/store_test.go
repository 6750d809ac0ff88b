// store_test.go --  This file is part of goHF project.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MirzaevaIV/goHF/coulomb"
)

func TestEntryAt(t *testing.T) {
	e := &coulomb.Entry{KMin: 1, Values: []float32{10, 30, 50}}
	assert.Equal(t, 5, e.KMax())

	v, ok := e.At(3)
	require.True(t, ok)
	assert.Equal(t, float32(30), v)

	for _, k := range []int{-1, 0, 2, 7, 4} {
		_, ok := e.At(k)
		assert.False(t, ok, "k=%d", k)
	}

	var missing *coulomb.Entry
	v, ok = missing.At(1)
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestStoreInsertIfAbsent(t *testing.T) {
	s := coulomb.NewStore(0)
	key := coulomb.MakeKey(0, 1, 2, 3)

	e, inserted := s.InsertIfAbsent(key, 0, 2)
	require.True(t, inserted)
	require.Len(t, e.Values, 2)
	e.Values[0] = 7

	again, inserted := s.InsertIfAbsent(key, 4, 9)
	assert.False(t, inserted)
	assert.Same(t, e, again)
	assert.Equal(t, 0, again.KMin, "existing entry must not change")
	assert.Equal(t, float32(7), again.Values[0])

	assert.Same(t, e, s.Find(key))
	assert.Nil(t, s.Find(coulomb.MakeKey(3, 2, 1, 0)))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, s.Count())

	assert.Panics(t, func() { s.InsertIfAbsent(coulomb.MakeKey(9, 9, 9, 9), 0, 0) })
}

func TestStoreOrder(t *testing.T) {
	s := coulomb.NewStore(0)
	keys := []coulomb.Key{
		coulomb.MakeKey(2, 0, 0, 0), coulomb.MakeKey(0, 0, 0, 1),
		coulomb.MakeKey(1, 5, 0, 0), coulomb.MakeKey(0, 0, 0, 0),
	}
	for _, k := range keys {
		s.InsertIfAbsent(k, 0, 1)
	}

	var got []coulomb.Key
	for k := range s.All() {
		got = append(got, k)
	}
	want := []coulomb.Key{keys[3], keys[1], keys[2], keys[0]}
	assert.Equal(t, want, got)

	// restartable and unchanged by iteration
	got = got[:0]
	for k := range s.All() {
		got = append(got, k)
	}
	assert.Equal(t, want, got)

	s.Sort()
	got = got[:0]
	for k := range s.All() {
		got = append(got, k)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, want[:2], got)
}

func TestStoreIterateStops(t *testing.T) {
	s := coulomb.NewStore(0)
	for i := coulomb.Index(0); i < 5; i++ {
		s.InsertIfAbsent(coulomb.MakeKey(i, i, i, i), 0, 1)
	}
	stop := errors.New("stop")
	n := 0
	err := s.Iterate(func(coulomb.Key, *coulomb.Entry) error {
		n++
		if n == 3 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, n)
}

func TestStoreMerge(t *testing.T) {
	a := coulomb.NewStore(0)
	b := coulomb.NewStore(0)
	a.InsertIfAbsent(coulomb.MakeKey(0, 0, 0, 0), 0, 1)
	b.InsertIfAbsent(coulomb.MakeKey(1, 1, 1, 1), 0, 3)
	b.InsertIfAbsent(coulomb.MakeKey(0, 1, 1, 1), 1, 2)

	a.Merge(b)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 6, a.Count())
	assert.Zero(t, b.Len(), "merged store is emptied")
	assert.NotNil(t, a.Find(coulomb.MakeKey(0, 1, 1, 1)))

	c := coulomb.NewStore(0)
	c.InsertIfAbsent(coulomb.MakeKey(1, 1, 1, 1), 0, 1)
	assert.Panics(t, func() { a.Merge(c) })

	a.Merge(nil)
	a.Merge(coulomb.NewStore(0))
	assert.Equal(t, 3, a.Len())
}

func TestStoreClear(t *testing.T) {
	s := coulomb.NewStore(4)
	s.InsertIfAbsent(coulomb.MakeKey(1, 2, 3, 4), 0, 1)
	s.Clear()
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Count())
	for range s.All() {
		t.Fatal("cleared store yields entries")
	}
}
