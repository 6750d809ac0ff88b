// fill.go --  This file is part of goHF project.
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
	"cmp"
	"fmt"
	"time"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// shard is a contiguous run [lo, hi) of leading orbitals in the sorted basis.
type shard struct{ lo, hi int }

// TODO: size shards by the number of accepted quadruples instead of the
// number of leading orbitals; the first shards do most of the work under Qk
// and Wk because small leading indices accept the most (b,c,d).
func shards(n, workers int) []shard {
	res := make([]shard, workers)
	for i := range res {
		res[i] = shard{i * n / workers, (i + 1) * n / workers}
	}
	return res
}

// sortBasis returns a copy of basis ordered by index.
func sortBasis(basis []Orbital) ([]Orbital, error) {
	if len(basis) == 0 {
		return nil, ErrEmptyBasis
	}
	for i, o := range basis {
		if o == nil {
			return nil, fmt.Errorf("%w: basis[%d]", ErrNilOrbital, i)
		}
	}
	res := slices.Clone(basis)
	slices.SortFunc(res, func(x, y Orbital) int { return cmp.Compare(x.Index(), y.Index()) })
	for i := 1; i < len(res); i++ {
		if res[i].Index() == res[i-1].Index() {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateIndex, res[i].Index())
		}
	}
	return res, nil
}

// visit calls f for every quadruple whose leading orbital is in basis[lo:hi]
// and whose canonical key starts with that orbital's index. The accepted
// quadruples satisfy a<=b, a<=c, a<=d (plus b<=d for Qk); the canonical form
// guarantees the same orderings, so every class has an accepted member and
// all accepted members lead with a. basis must be sorted by index without
// duplicates, so the conditions become lower bounds on positions.
func (s Symmetry) visit(basis []Orbital, sh shard, f func(a, b, c, d Orbital) error) error {
	n := len(basis)
	for ia := sh.lo; ia < sh.hi; ia++ {
		first := 0
		if s != SymmetryNone {
			first = ia // a <= b, a <= c, a <= d
		}
		for ib := first; ib < n; ib++ {
			for ic := first; ic < n; ic++ {
				firstD := first
				if s == SymmetryQk {
					firstD = ib // b <= d
				}
				for id := firstD; id < n; id++ {
					if err := f(basis[ia], basis[ib], basis[ic], basis[id]); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// fillShard builds the private store of one worker.
func (t *Table) fillShard(basis []Orbital, sh shard) (*Store, int, error) {
	st := NewStore(0)
	evals := 0
	err := t.sym.visit(basis, sh, func(a, b, c, d Orbital) error {
		n, err := t.add(st, a, b, c, d)
		evals += n
		return err
	})
	return st, evals, err
}

// Fill clears the table and computes every non-zero Q^k_abcd with a, b, c, d
// drawn from basis. Orbital indices must be unique. If any evaluation fails
// the table is left empty. Without an evaluator it returns ErrNoEvaluator and
// leaves the table untouched.
func (t *Table) Fill(basis []Orbital) error {
	if t.eval == nil {
		return ErrNoEvaluator
	}
	tstart := time.Now()
	t.Clear()
	sorted, err := sortBasis(basis)
	if err != nil {
		return err
	}

	parts := shards(len(sorted), t.numWorkers(len(sorted)))
	stores := make([]*Store, len(parts))
	evals := make([]int, len(parts))

	var g errgroup.Group
	for i, sh := range parts {
		g.Go(func() error {
			var err error
			stores[i], evals[i], err = t.fillShard(sorted, sh)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("coulomb: fill: %w", err)
	}

	// workers are done, merging is the only shared write
	total := 0
	for i, st := range stores {
		t.store.Merge(st)
		total += evals[i]
	}
	t.store.Sort()
	t.filled = true

	took := time.Since(tstart)
	values := t.store.Count()
	t.log.Println("Qk table (", t.sym, ") filled:", t.store.Len(), "entries,", values,
		"values,", total, "evaluations,", len(parts), "workers,", took)
	t.metrics.Observe("fill", total, took)
	t.metrics.Size(t.store.Len(), values)
	return nil
}

// updateShard refreshes the entries led by the shard's orbitals in place.
// Different shards touch different entries.
func (t *Table) updateShard(basis []Orbital, sh shard) (int, error) {
	done := make(map[Key]struct{})
	evals := 0
	err := t.sym.visit(basis, sh, func(a, b, c, d Orbital) error {
		key := t.Key(a, b, c, d)
		if _, ok := done[key]; ok {
			return nil
		}
		e := t.store.Find(key)
		if e == nil {
			return nil
		}
		done[key] = struct{}{}
		n, err := t.refresh(e, e.Values, a, b, c, d)
		evals += n
		return err
	})
	return evals, err
}

// Update recomputes every stored integral from the orbitals in basis, which
// must carry the same indices the table was filled with. No entry is added
// or removed. If any evaluation fails the table is cleared. Without an
// evaluator it returns ErrNoEvaluator and leaves the table untouched.
func (t *Table) Update(basis []Orbital) error {
	if t.eval == nil {
		return ErrNoEvaluator
	}
	tstart := time.Now()
	sorted, err := sortBasis(basis)
	if err != nil {
		return err
	}

	parts := shards(len(sorted), t.numWorkers(len(sorted)))
	evals := make([]int, len(parts))

	var g errgroup.Group
	for i, sh := range parts {
		g.Go(func() error {
			var err error
			evals[i], err = t.updateShard(sorted, sh)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Clear()
		return fmt.Errorf("coulomb: update: %w", err)
	}

	total := 0
	for _, n := range evals {
		total += n
	}
	took := time.Since(tstart)
	t.log.Println("Qk table (", t.sym, ") updated:", total, "evaluations,", len(parts), "workers,", took)
	t.metrics.Observe("update", total, took)
	return nil
}
