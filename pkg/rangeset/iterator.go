package rangeset

import "github.com/henderiw/rangeset/pkg/ranges"

// Iterator walks the values of a set range by range.
type Iterator struct {
	rr      []ranges.Range
	current int
	it      *ranges.Iterator
}

// Iterate returns a new iterator over the values of r. The set must not be
// mutated while iterating.
func (r *RangeSet) Iterate() *Iterator {
	return &Iterator{rr: r.rr, current: -1}
}

func (r *Iterator) Next() bool {
	for {
		if r.it != nil && r.it.Next() {
			return true
		}
		r.current++
		if r.current >= len(r.rr) {
			r.it = nil
			return false
		}
		r.it = r.rr[r.current].Iterate()
	}
}

func (r *Iterator) Value() interface{} {
	if r.it == nil {
		return nil
	}
	return r.it.Value()
}

// Range returns the range holding the current value.
func (r *Iterator) Range() ranges.Range {
	if r.current < 0 || r.current >= len(r.rr) {
		return nil
	}
	return r.rr[r.current]
}
