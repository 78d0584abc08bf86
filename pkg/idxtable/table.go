// Package idxtable allocates integer ids out of a pool described in the
// range grammar, for example "1~4094" or "100~199,300~399".
package idxtable

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/henderiw/rangeset/pkg/ranges"
	"github.com/henderiw/rangeset/pkg/rangeset"
)

type Table[T1 any] interface {
	Get(id int64) (T1, error)
	Claim(id int64, d T1) error
	ClaimDynamic(d T1) (int64, error)
	ClaimRange(start, size int64, d T1) error
	ClaimSize(size int64, d T1) error
	Release(id int64) error
	Update(id int64, d T1) error

	Iterate() *Iterator[T1]
	IterateFree() *Iterator[T1]

	Count() int
	Has(id int64) bool

	IsFree(id int64) bool
	FindFree() (int64, error)
	FindFreeRange(min, size int64) (map[int64]T1, error)
	FindFreeSize(size int64) (map[int64]T1, error)

	GetAll() map[int64]T1

	// Pool returns a copy of the ids the table allocates from.
	Pool() *rangeset.RangeSet
	// Claimed returns a copy of the claimed ids.
	Claimed() *rangeset.RangeSet
	// Free returns the ids of the pool that are not claimed.
	Free() *rangeset.RangeSet
}

type ValidationFn func(id int64) error

// NewTable returns a table allocating ids out of pool. The init entries are
// claimed without running the validation function. The table is returned
// together with the errors of the init entries that could not be claimed.
func NewTable[T1 any](pool string, initEntries map[int64]T1, v ValidationFn) (Table[T1], error) {
	p, err := rangeset.Parse(pool)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPool, "pool %q: %v", pool, err)
	}
	for _, rng := range p.Ranges() {
		if !rng.Kind().IsInteger() {
			return nil, errors.Wrapf(ErrInvalidPool, "%s range %s in pool %q", rng.Kind(), rng, pool)
		}
	}

	r := &table[T1]{
		m:          new(sync.RWMutex),
		table:      map[int64]T1{},
		pool:       p,
		claimed:    rangeset.New(),
		validateFn: v,
	}

	var errm error
	for id, d := range initEntries {
		if err := r.add(id, d, true); err != nil {
			errm = errors.CombineErrors(errm, err)
		}
	}

	return r, errm
}

type table[T1 any] struct {
	m     *sync.RWMutex
	table map[int64]T1
	pool  *rangeset.RangeSet
	// claimed holds the keys of table
	claimed    *rangeset.RangeSet
	validateFn ValidationFn
}

func (r *table[T1]) validate(id int64, init bool) error {
	if !r.pool.Contains(id) {
		return errors.Wrapf(ErrOutOfPool, "id %d, pool %s", id, r.pool)
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(id); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[T1]) Get(id int64) (T1, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	var d T1

	if err := r.validate(id, false); err != nil {
		return d, err
	}

	d, ok := r.table[id]
	if !ok {
		return d, errors.Wrapf(ErrNotFound, "id %d", id)
	}
	return d, nil
}

func (r *table[T1]) Claim(id int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(id, d, false)
}

func (r *table[T1]) ClaimDynamic(d T1) (int64, error) {
	r.m.Lock()
	defer r.m.Unlock()

	free := r.iterateFree()
	for free.Next() {
		if r.validateFn != nil && r.validateFn(free.ID()) != nil {
			continue
		}
		if err := r.add(free.ID(), d, false); err != nil {
			return 0, err
		}
		return free.ID(), nil
	}
	return 0, ErrExhausted
}

func (r *table[T1]) ClaimRange(start, size int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	entries, err := r.findFreeRange(start, size)
	if err != nil {
		return err
	}
	return r.addAll(entries, d)
}

func (r *table[T1]) ClaimSize(size int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	entries, err := r.findFreeSize(size)
	if err != nil {
		return err
	}
	return r.addAll(entries, d)
}

// addAll claims the ids of entries with d, all or nothing.
func (r *table[T1]) addAll(entries map[int64]T1, d T1) error {
	for id := range entries {
		if err := r.validate(id, false); err != nil {
			return err
		}
	}
	for id := range entries {
		// getting an error is unlikely as we have a lock
		if err := r.add(id, d, false); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[T1]) Release(id int64) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.delete(id)
}

func (r *table[T1]) Update(id int64, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.update(id, d)
}

// Iterate returns an iterator over a snapshot of the claimed entries.
func (r *table[T1]) Iterate() *Iterator[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *table[T1]) iterate() *Iterator[T1] {
	entries := make(map[int64]T1, len(r.table))
	for id, d := range r.table {
		entries[id] = d
	}
	return newIterator(r.claimed.Clone(), entries)
}

// IterateFree returns an iterator over a snapshot of the free ids.
func (r *table[T1]) IterateFree() *Iterator[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterateFree()
}

func (r *table[T1]) iterateFree() *Iterator[T1] {
	return newIterator[T1](r.free(), nil)
}

func (r *table[T1]) free() *rangeset.RangeSet {
	free := r.pool.Clone()
	free.RemoveSet(r.claimed)
	return free
}

func (r *table[T1]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

func (r *table[T1]) Has(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.claimed.Contains(id)
}

func (r *table[T1]) IsFree(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.pool.Contains(id) && r.isFree(id)
}

func (r *table[T1]) isFree(id int64) bool {
	return !r.claimed.Contains(id)
}

func (r *table[T1]) FindFree() (int64, error) {
	free := r.IterateFree()

	if free.Next() {
		return free.ID(), nil
	}
	return 0, ErrExhausted
}

func (r *table[T1]) FindFreeRange(start, size int64) (map[int64]T1, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.findFreeRange(start, size)
}

// findFreeRange returns the ids [start, start+size-1] when they are all free.
func (r *table[T1]) findFreeRange(start, size int64) (map[int64]T1, error) {
	if size < 1 {
		return nil, errors.Newf("size %d must be positive", size)
	}
	end := start + size - 1
	if !r.pool.Contains(start) {
		return nil, errors.Wrapf(ErrOutOfPool, "start %d, pool %s", start, r.pool)
	}
	if !r.pool.Contains(end) {
		return nil, errors.Wrapf(ErrOutOfPool, "end %d, pool %s", end, r.pool)
	}

	want := ranges.NewInt64(start, end)
	for _, rng := range r.free().Ranges() {
		if !rng.Contains(start) {
			continue
		}
		if !ranges.Covers(rng, want) {
			break
		}
		entries := make(map[int64]T1, size)
		for id := start; id <= end; id++ {
			entries[id] = *new(T1)
		}
		return entries, nil
	}
	return nil, errors.Newf("could not find free range that fit in start %d, size %d, claimed %s", start, size, r.claimed)
}

func (r *table[T1]) FindFreeSize(size int64) (map[int64]T1, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.findFreeSize(size)
}

func (r *table[T1]) findFreeSize(size int64) (map[int64]T1, error) {
	if size < 1 || uint64(size) > r.pool.Size() {
		return nil, errors.Newf("size %d is out of bounds of the pool %s", size, r.pool)
	}
	entries := map[int64]T1{}
	free := r.iterateFree()
	for free.Next() {
		entries[free.ID()] = free.Value()
		if int64(len(entries)) == size {
			return entries, nil
		}
	}
	return nil, errors.Wrapf(ErrExhausted, "could not find free entries that fit in size %d", size)
}

func (r *table[T1]) add(id int64, d T1, init bool) error {
	if err := r.validate(id, init); err != nil {
		return err
	}
	if !r.isFree(id) {
		return errors.Wrapf(ErrExists, "id %d", id)
	}
	if _, err := r.claimed.Add(id); err != nil {
		return err
	}
	r.table[id] = d
	return nil
}

func (r *table[T1]) update(id int64, d T1) error {
	if err := r.validate(id, false); err != nil {
		return err
	}
	if r.isFree(id) {
		return errors.Wrapf(ErrNotFound, "id %d", id)
	}
	r.table[id] = d
	return nil
}

func (r *table[T1]) delete(id int64) error {
	if err := r.validate(id, false); err != nil {
		return err
	}
	delete(r.table, id)
	r.claimed.Remove(id)
	return nil
}

func (r *table[T1]) GetAll() map[int64]T1 {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(map[int64]T1, len(r.table))

	iter := r.iterate()
	for iter.Next() {
		entries[iter.ID()] = iter.Value()
	}
	return entries
}

func (r *table[T1]) Pool() *rangeset.RangeSet {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.pool.Clone()
}

func (r *table[T1]) Claimed() *rangeset.RangeSet {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.claimed.Clone()
}

func (r *table[T1]) Free() *rangeset.RangeSet {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.free()
}
