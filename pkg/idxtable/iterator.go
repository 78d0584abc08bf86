package idxtable

import (
	"github.com/henderiw/rangeset/pkg/rangeset"
	"github.com/spf13/cast"
)

// Iterator walks ids in ascending order.
type Iterator[T1 any] struct {
	ids     *rangeset.Iterator
	id      int64
	prev    int64
	started bool
	table   map[int64]T1
}

func newIterator[T1 any](ids *rangeset.RangeSet, table map[int64]T1) *Iterator[T1] {
	return &Iterator[T1]{ids: ids.Iterate(), table: table}
}

// Value returns the data claimed with the current id, the zero value for
// free ids.
func (r *Iterator[T1]) Value() T1 {
	return r.table[r.id]
}

func (r *Iterator[T1]) ID() int64 {
	return r.id
}

func (r *Iterator[T1]) Next() bool {
	if !r.ids.Next() {
		return false
	}
	if r.started {
		r.prev = r.id
	}
	r.id = cast.ToInt64(r.ids.Value())
	if !r.started {
		r.prev = r.id
		r.started = true
	}
	return true
}

// IsConsecutive returns whether the current id directly follows the previous
// one.
func (r *Iterator[T1]) IsConsecutive() bool {
	return r.prev == r.id-1
}
