package ranges

import (
	"cmp"
	"math"
	"strconv"
)

type integer interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// intRange is shared by the signed integer families. Merging is computed in
// int64 and promotes the result to a wider family when needed.
type intRange[T integer] struct {
	kind Kind
	from T
	to   T
}

func NewInt8(from, to int8) Range { return newInt(KindInt8, from, to) }
func NewInt16(from, to int16) Range { return newInt(KindInt16, from, to) }
func NewInt32(from, to int32) Range { return newInt(KindInt32, from, to) }
func NewInt64(from, to int64) Range { return newInt(KindInt64, from, to) }

func newInt[T integer](k Kind, from, to T) Range {
	if to < from {
		from, to = to, from
	}
	return intRange[T]{kind: k, from: from, to: to}
}

func intBounds(k Kind) (int64, int64) {
	switch k {
	case KindInt8:
		return math.MinInt8, math.MaxInt8
	case KindInt16:
		return math.MinInt16, math.MaxInt16
	case KindInt32:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

// Promote returns an integer range over [from, to] using the narrowest
// integer family, not narrower than min, able to hold both bounds.
func Promote(min Kind, from, to int64) Range {
	if to < from {
		from, to = to, from
	}
	k := min
	if !k.IsInteger() {
		k = KindInt8
	}
	for ; k < KindInt64; k++ {
		lo, hi := intBounds(k)
		if from >= lo && to <= hi {
			break
		}
	}
	switch k {
	case KindInt8:
		return intRange[int8]{kind: k, from: int8(from), to: int8(to)}
	case KindInt16:
		return intRange[int16]{kind: k, from: int16(from), to: int16(to)}
	case KindInt32:
		return intRange[int32]{kind: k, from: int32(from), to: int32(to)}
	default:
		return intRange[int64]{kind: KindInt64, from: from, to: to}
	}
}

func (r intRange[T]) Kind() Kind { return r.kind }
func (r intRange[T]) From() interface{} { return r.from }
func (r intRange[T]) To() interface{} { return r.to }
func (r intRange[T]) int64Bounds() (int64, int64) { return int64(r.from), int64(r.to) }

func (r intRange[T]) Contains(v interface{}) bool {
	i, ok := asInt64(v)
	return ok && int64(r.from) <= i && i <= int64(r.to)
}

func (r intRange[T]) compare(bound T, v interface{}) int {
	if i, ok := asInt64(v); ok {
		return cmp.Compare(int64(bound), i)
	}
	return Compare(bound, v)
}

func (r intRange[T]) CompareFrom(v interface{}) int { return r.compare(r.from, v) }
func (r intRange[T]) CompareTo(v interface{}) int { return r.compare(r.to, v) }

func (r intRange[T]) Next(v interface{}) (interface{}, bool) {
	i, ok := asInt64(v)
	if !ok {
		return nil, false
	}
	lo, hi := intBounds(r.kind)
	if i < lo || i >= hi {
		return nil, false
	}
	return T(i + 1), true
}

func (r intRange[T]) Prev(v interface{}) (interface{}, bool) {
	i, ok := asInt64(v)
	if !ok {
		return nil, false
	}
	lo, hi := intBounds(r.kind)
	if i <= lo || i > hi {
		return nil, false
	}
	return T(i - 1), true
}

func (r intRange[T]) Expand(other Range) (Range, error) {
	o, ok := other.(interface{ int64Bounds() (int64, int64) })
	if !ok || !other.Kind().IsInteger() {
		return nil, mismatch(r, other)
	}
	from, to := o.int64Bounds()
	return expandInt(r, other, from, to)
}

func (r intRange[T]) ExpandValue(v interface{}) (Range, error) {
	i, ok := asInt64(v)
	if !ok {
		return nil, mismatch(r, v)
	}
	return expandInt(r, nil, i, i)
}

// expandInt merges [from, to] into r. other is the range the bounds come
// from, nil when expanding with a single value.
func expandInt[T integer](r intRange[T], other Range, from, to int64) (Range, error) {
	rf, rt := int64(r.from), int64(r.to)
	if from >= rf && to <= rt {
		return r, nil
	}
	if other != nil && rf >= from && rt <= to {
		return other, nil
	}
	if from > rt && gap(rt, from) > 1 || rf > to && gap(to, rf) > 1 {
		return nil, ErrNotAdjacent
	}
	k := r.kind
	if other != nil && other.Kind() > k {
		k = other.Kind()
	}
	return Promote(k, min(rf, from), max(rt, to)), nil
}

// gap returns b-a for a < b without overflowing.
func gap(a, b int64) uint64 {
	return uint64(b) - uint64(a)
}

func (r intRange[T]) WithBounds(from, to interface{}) (Range, error) {
	f, fok := asInt64(from)
	t, tok := asInt64(to)
	if !fok || !tok {
		return nil, invalidf("%v~%v for %s range", from, to, r.kind)
	}
	return Promote(r.kind, f, t), nil
}

func (r intRange[T]) Parse(token string) (interface{}, error) {
	i, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil, invalidf("%q is not an integer", token)
	}
	lo, hi := intBounds(r.kind)
	if i < lo || i > hi {
		return nil, invalidf("%q overflows %s", token, r.kind)
	}
	return T(i), nil
}

func (r intRange[T]) Format(v interface{}) string {
	if i, ok := asInt64(v); ok {
		return strconv.FormatInt(i, 10)
	}
	return toText(v)
}

// Size returns to-from+1. The full int64 range wraps to 0.
func (r intRange[T]) Size() uint64 {
	return gap(int64(r.from), int64(r.to)) + 1
}

func (r intRange[T]) Iterate() *Iterator { return newIterator(successors(r)) }

func (r intRange[T]) Equal(other Range) bool {
	o, ok := other.(intRange[T])
	return ok && o == r
}

func (r intRange[T]) String() string { return render(r) }
