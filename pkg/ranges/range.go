package ranges

import "math"

// Range is an immutable closed interval [From, To] over one ordered domain.
//
// Values are passed as interface{} and are typed per Kind: the integer
// families use int8..int64, the floating families float32/float64, character
// ranges Char, time-of-day ranges Clock and the padded, string and
// cross-product kinds use string.
type Range interface {
	Kind() Kind
	From() interface{}
	To() interface{}

	// Contains returns whether v lies within the range.
	Contains(v interface{}) bool
	// CompareFrom compares the lower bound against v.
	CompareFrom(v interface{}) int
	// CompareTo compares the upper bound against v.
	CompareTo(v interface{}) int
	// Next returns the successor of v in the domain of the range, false when
	// v has no successor.
	Next(v interface{}) (interface{}, bool)
	// Prev returns the predecessor of v in the domain of the range, false
	// when v has no predecessor.
	Prev(v interface{}) (interface{}, bool)

	// Expand returns the union of the range and other. The receiver itself is
	// returned when other is already contained. ErrNotAdjacent is returned
	// when the ranges neither overlap nor touch.
	Expand(other Range) (Range, error)
	// ExpandValue is Expand for a single value.
	ExpandValue(v interface{}) (Range, error)
	// WithBounds returns a range of the same domain with new bounds.
	WithBounds(from, to interface{}) (Range, error)

	// Parse converts a textual token into a value of the range domain.
	Parse(token string) (interface{}, error)
	// Format renders a value of the range domain.
	Format(v interface{}) string

	// Size returns the number of elements in the range.
	Size() uint64
	// Iterate returns a new iterator over the values of the range.
	Iterate() *Iterator
	Equal(other Range) bool
	String() string
}

// Values returns all the values of r in order.
func Values(r Range) []interface{} {
	var out []interface{}
	it := r.Iterate()
	for it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// Covers returns whether every value of other is in r.
func Covers(r, other Range) bool {
	expanded, err := r.Expand(other)
	if err != nil {
		return false
	}
	return expanded.Equal(r)
}

// Below returns the greatest value of the domain of r that is less than v,
// false when r holds no such value. Unlike Prev, v need not be a value of the
// domain: 2.5 is below 3 in an integer range.
func Below(r Range, v interface{}) (interface{}, bool) {
	if f, ok := offDomain(r, v); ok {
		switch b := r.(type) {
		case interface{ int64Bounds() (int64, int64) }:
			from, to := b.int64Bounds()
			c := math.Ceil(f) - 1
			switch {
			case c < float64(from):
				return nil, false
			case c >= float64(to):
				return to, true
			}
			return int64(c), true
		case interface{ float64Bounds() (float64, float64) }:
			from, to := b.float64Bounds()
			c := from + math.Ceil(f-from) - 1
			if c < from {
				return nil, false
			}
			return min(c, to), true
		}
	}
	p, ok := r.Prev(v)
	return p, ok && r.Contains(p)
}

// Above returns the least value of the domain of r that is greater than v,
// false when r holds no such value.
func Above(r Range, v interface{}) (interface{}, bool) {
	if f, ok := offDomain(r, v); ok {
		switch b := r.(type) {
		case interface{ int64Bounds() (int64, int64) }:
			from, to := b.int64Bounds()
			c := math.Floor(f) + 1
			switch {
			case c > float64(to):
				return nil, false
			case c >= float64(to):
				return to, true
			case c <= float64(from):
				return from, true
			}
			return int64(c), true
		case interface{ float64Bounds() (float64, float64) }:
			from, to := b.float64Bounds()
			c := from + math.Floor(f-from) + 1
			if c > to {
				return nil, false
			}
			return max(c, from), true
		}
	}
	n, ok := r.Next(v)
	return n, ok && r.Contains(n)
}

// offDomain returns v as a float64 when r is numeric and v is a finite number
// that has to be snapped onto the steps of r.
func offDomain(r Range, v interface{}) (float64, bool) {
	k := r.Kind()
	if !k.IsInteger() && !k.IsFloat() {
		return 0, false
	}
	if _, ok := asInt64(v); ok && k.IsInteger() {
		return 0, false
	}
	f, ok := asFloat64(v)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func render(r Range) string {
	if r.CompareTo(r.From()) == 0 {
		return r.Format(r.From())
	}
	return r.Format(r.From()) + "~" + r.Format(r.To())
}
