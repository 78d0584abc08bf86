package ranges

import (
	"cmp"
	"math"
	"strconv"
)

type float interface {
	~float32 | ~float64
}

// floatRange models discretely labeled numeric categories rather than
// continuous measurements: the successor of a value is value+1 and the size
// counts the integer aligned steps spanned, ceil(to)-floor(from)+1.
type floatRange[T float] struct {
	kind Kind
	from T
	to   T
}

// NewFloat32 returns a float32 range. Next and Prev step by 1.
func NewFloat32(from, to float32) (Range, error) { return newFloat(KindFloat32, from, to) }

// NewFloat64 returns a float64 range. Next and Prev step by 1.
func NewFloat64(from, to float64) (Range, error) { return newFloat(KindFloat64, from, to) }

func newFloat[T float](k Kind, from, to T) (Range, error) {
	if math.IsNaN(float64(from)) || math.IsNaN(float64(to)) {
		return nil, invalidf("NaN bound in %s range", k)
	}
	if to < from {
		from, to = to, from
	}
	return floatRange[T]{kind: k, from: from, to: to}, nil
}

func floatOf(k Kind, from, to float64) (Range, error) {
	if k == KindFloat32 {
		return newFloat(k, float32(from), float32(to))
	}
	return newFloat(KindFloat64, from, to)
}

func (r floatRange[T]) Kind() Kind { return r.kind }
func (r floatRange[T]) From() interface{} { return r.from }
func (r floatRange[T]) To() interface{} { return r.to }
func (r floatRange[T]) float64Bounds() (float64, float64) { return float64(r.from), float64(r.to) }

func (r floatRange[T]) Contains(v interface{}) bool {
	f, ok := asFloat64(v)
	return ok && float64(r.from) <= f && f <= float64(r.to)
}

func (r floatRange[T]) compare(bound T, v interface{}) int {
	if f, ok := asFloat64(v); ok {
		return cmp.Compare(float64(bound), f)
	}
	return Compare(bound, v)
}

func (r floatRange[T]) CompareFrom(v interface{}) int { return r.compare(r.from, v) }
func (r floatRange[T]) CompareTo(v interface{}) int { return r.compare(r.to, v) }

func (r floatRange[T]) Next(v interface{}) (interface{}, bool) {
	f, ok := asFloat64(v)
	if !ok || math.IsInf(f, 0) {
		return nil, false
	}
	return T(f + 1), true
}

func (r floatRange[T]) Prev(v interface{}) (interface{}, bool) {
	f, ok := asFloat64(v)
	if !ok || math.IsInf(f, 0) {
		return nil, false
	}
	return T(f - 1), true
}

func (r floatRange[T]) Expand(other Range) (Range, error) {
	o, ok := other.(interface{ float64Bounds() (float64, float64) })
	if !ok || !other.Kind().IsFloat() {
		return nil, mismatch(r, other)
	}
	from, to := o.float64Bounds()
	return r.expand(other, from, to)
}

func (r floatRange[T]) ExpandValue(v interface{}) (Range, error) {
	f, ok := asFloat64(v)
	if !ok {
		return nil, mismatch(r, v)
	}
	return r.expand(nil, f, f)
}

func (r floatRange[T]) expand(other Range, from, to float64) (Range, error) {
	rf, rt := float64(r.from), float64(r.to)
	if from >= rf && to <= rt {
		return r, nil
	}
	if other != nil && rf >= from && rt <= to {
		return other, nil
	}
	overlaps := from <= rt && rf <= to
	if !overlaps && rt+1 != from && to+1 != rf {
		return nil, ErrNotAdjacent
	}
	k := r.kind
	if other != nil && other.Kind() > k {
		k = other.Kind()
	}
	return floatOf(k, math.Min(rf, from), math.Max(rt, to))
}

func (r floatRange[T]) WithBounds(from, to interface{}) (Range, error) {
	f, fok := asFloat64(from)
	t, tok := asFloat64(to)
	if !fok || !tok {
		return nil, invalidf("%v~%v for %s range", from, to, r.kind)
	}
	return floatOf(r.kind, f, t)
}

func (r floatRange[T]) bitSize() int {
	if r.kind == KindFloat32 {
		return 32
	}
	return 64
}

func (r floatRange[T]) Parse(token string) (interface{}, error) {
	f, err := strconv.ParseFloat(token, r.bitSize())
	if err != nil {
		return nil, invalidf("%q is not a number", token)
	}
	return T(f), nil
}

func (r floatRange[T]) Format(v interface{}) string {
	if f, ok := asFloat64(v); ok {
		return strconv.FormatFloat(f, 'f', -1, r.bitSize())
	}
	return toText(v)
}

func (r floatRange[T]) Size() uint64 {
	return uint64(math.Ceil(float64(r.to))-math.Floor(float64(r.from))) + 1
}

func (r floatRange[T]) Iterate() *Iterator { return newIterator(successors(r)) }

func (r floatRange[T]) Equal(other Range) bool {
	o, ok := other.(floatRange[T])
	return ok && o == r
}

func (r floatRange[T]) String() string { return render(r) }
