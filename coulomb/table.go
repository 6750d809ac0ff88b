// table.go --  This file is part of goHF project.
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
	"io"
	"iter"
	"log"
	"runtime"

	"github.com/MirzaevaIV/goHF/internal/metrics"
)

// Table is a symmetry-reduced cache of Q^k_abcd for one basis.
//
// Fill, Update, AddOne and UpdateOne modify the table and must not overlap
// with each other or with readers. Readers (Q, R, P, W, All, Count) may run
// concurrently with each other.
type Table struct {
	sym     Symmetry
	eval    Evaluator
	ang     Angular
	store   *Store
	filled  bool
	workers int
	log     *log.Logger
	metrics *metrics.Table
}

// Option configures a Table.
type Option func(*Table)

// WithWorkers sets the number of goroutines used by Fill and Update.
// Values below one mean runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(t *Table) { t.workers = n }
}

// WithLogger sets the logger for fill/update summaries.
func WithLogger(l *log.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.log = l
		}
	}
}

// WithMetrics reports fill/update statistics to m.
func WithMetrics(m *metrics.Table) Option {
	return func(t *Table) { t.metrics = m }
}

// NewTable returns an empty table. Fill, Update, AddOne and UpdateOne return
// ErrNoEvaluator when eval is nil. ang may be nil if only Q is needed: R, P
// and W are then zero. Check reports both cases up front.
func NewTable(sym Symmetry, eval Evaluator, ang Angular, opts ...Option) *Table {
	t := &Table{
		sym:   sym,
		eval:  eval,
		ang:   ang,
		store: NewStore(0),
		log:   log.New(io.Discard, "", 0),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Check returns ErrNoEvaluator or ErrNoAngular if a collaborator is missing.
func (t *Table) Check() error {
	if t.eval == nil {
		return ErrNoEvaluator
	}
	if t.ang == nil {
		return ErrNoAngular
	}
	return nil
}

// Symmetry is the symmetry class the table was created with.
func (t *Table) Symmetry() Symmetry { return t.sym }

// Filled reports whether the last Fill completed and no later Update failed.
func (t *Table) Filled() bool { return t.filled }

// Len is the number of stored canonical quadruples.
func (t *Table) Len() int { return t.store.Len() }

// Count is the total number of stored integrals over all k.
func (t *Table) Count() int { return t.store.Count() }

// All yields each stored entry once, in canonical key order. Use it for sums
// that do not care which orbitals an integral belongs to.
func (t *Table) All() iter.Seq2[Key, *Entry] { return t.store.All() }

// Iterate is the callback form of All.
func (t *Table) Iterate(f func(Key, *Entry) error) error { return t.store.Iterate(f) }

// Key returns the canonical key of {a,b,c,d} for this table.
func (t *Table) Key(a, b, c, d Orbital) Key {
	return Canonical(t.sym, a.Index(), b.Index(), c.Index(), d.Index())
}

// Clear drops all entries.
func (t *Table) Clear() {
	t.store.Clear()
	t.filled = false
}

// AddOne computes and stores Q^k_abcd for every allowed k, unless the
// quadruple is forbidden or already stored.
func (t *Table) AddOne(a, b, c, d Orbital) error {
	if t.eval == nil {
		return ErrNoEvaluator
	}
	if a == nil || b == nil || c == nil || d == nil {
		return ErrNilOrbital
	}
	_, err := t.add(t.store, a, b, c, d)
	return err
}

// UpdateOne recomputes the stored Q^k_abcd. Absent quadruples are left
// absent. On error the stored values are unchanged.
func (t *Table) UpdateOne(a, b, c, d Orbital) error {
	if t.eval == nil {
		return ErrNoEvaluator
	}
	if a == nil || b == nil || c == nil || d == nil {
		return ErrNilOrbital
	}
	e := t.store.Find(t.Key(a, b, c, d))
	if e == nil {
		return nil
	}
	values := make([]float32, len(e.Values))
	if _, err := t.refresh(e, values, a, b, c, d); err != nil {
		return err
	}
	copy(e.Values, values)
	return nil
}

func (t *Table) numWorkers(n int) int {
	w := t.workers
	if w < 1 {
		w = runtime.GOMAXPROCS(0)
	}
	return min(w, n)
}

// kCount is the number of multipolarities in [kmin, kmax] stepping by two.
func kCount(kmin, kmax int) (int, error) {
	if kmax < kmin {
		return 0, nil
	}
	if kmin < 0 || (kmax-kmin)%2 != 0 {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrMalformedRange, kmin, kmax)
	}
	return (kmax-kmin)/2 + 1, nil
}

// add inserts {a,b,c,d} into st unless it is forbidden or present. It
// returns the number of evaluator calls made. Nothing is inserted on error.
func (t *Table) add(st *Store, a, b, c, d Orbital) (int, error) {
	key := t.Key(a, b, c, d)
	if st.Find(key) != nil {
		return 0, nil
	}
	kmin, kmax := t.eval.KRange(a, b, c, d)
	n, err := kCount(kmin, kmax)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", key, err)
	}
	if n == 0 {
		return 0, nil
	}
	values := make([]float32, n)
	for i := range values {
		k := kmin + 2*i
		q, err := t.eval.Qk(k, a, b, c, d)
		if err != nil {
			return i, fmt.Errorf("coulomb: Q^%d%v: %w", k, key, err)
		}
		values[i] = float32(q)
	}
	e, _ := st.InsertIfAbsent(key, kmin, n)
	copy(e.Values, values)
	return n, nil
}

// refresh recomputes e's values for {a,b,c,d} into dst, which must have
// len(e.Values) elements (dst may be e.Values itself).
func (t *Table) refresh(e *Entry, dst []float32, a, b, c, d Orbital) (int, error) {
	kmin, kmax := t.eval.KRange(a, b, c, d)
	n, err := kCount(kmin, kmax)
	if err != nil {
		return 0, err
	}
	if kmin != e.KMin || n != len(e.Values) {
		return 0, fmt.Errorf("%w: %v stored k=%d..%d, evaluator k=%d..%d",
			ErrRangeMismatch, t.Key(a, b, c, d), e.KMin, e.KMax(), kmin, kmax)
	}
	for i := range dst {
		k := kmin + 2*i
		q, err := t.eval.Qk(k, a, b, c, d)
		if err != nil {
			return i, fmt.Errorf("coulomb: Q^%d%v: %w", k, t.Key(a, b, c, d), err)
		}
		dst[i] = float32(q)
	}
	return n, nil
}
