package ranges

type generator func() (interface{}, bool)

// Iterator walks the values of a range. Every call to Range.Iterate returns
// an independent iterator; mutating the owner of the range while iterating is
// not supported.
type Iterator struct {
	start func() generator
	next  generator
	value interface{}
}

func newIterator(start func() generator) *Iterator {
	it := &Iterator{start: start}
	it.Reset()
	return it
}

// Next advances the iterator and returns false once it is exhausted.
func (r *Iterator) Next() bool {
	v, ok := r.next()
	if !ok {
		r.value = nil
		return false
	}
	r.value = v
	return true
}

// Value returns the current value.
func (r *Iterator) Value() interface{} {
	return r.value
}

// Reset restarts the iterator at the lower bound of its range.
func (r *Iterator) Reset() {
	r.next = r.start()
	r.value = nil
}

// successors steps from the lower bound of r using r.Next until the upper
// bound is emitted or the successor falls outside r.
func successors(r Range) func() generator {
	return func() generator {
		var current interface{}
		started, done := false, false
		return func() (interface{}, bool) {
			if done {
				return nil, false
			}
			if !started {
				started = true
				current = r.From()
			} else {
				n, ok := r.Next(current)
				if !ok || !r.Contains(n) {
					done = true
					return nil, false
				}
				current = n
			}
			if r.CompareTo(current) == 0 {
				done = true
			}
			return current, true
		}
	}
}
