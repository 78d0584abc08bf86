package ranges

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// paddedRange is a range of non-negative decimals rendered with leading zeros
// to a fixed number of digits. Values are the padded strings; comparison is
// numeric and the digit count only affects rendering.
type paddedRange struct {
	from   int64
	to     int64
	digits int
}

// NewPadded returns a zero padded decimal range. digits is raised to the
// width of the widest bound. Expanding a padded range with a value written
// with more digits widens the rendering of the whole range: adding "005" to
// 01~09 gives 001~009.
func NewPadded(from, to int64, digits int) (Range, error) {
	if from < 0 || to < 0 {
		return nil, invalidf("padded range %d~%d must not be negative", from, to)
	}
	if to < from {
		from, to = to, from
	}
	digits = max(digits, width(from), width(to))
	return paddedRange{from: from, to: to, digits: digits}, nil
}

func width(i int64) int {
	return len(strconv.FormatInt(i, 10))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// paddedValue returns the numeric value of a digit string or a non-negative
// integer along with the number of digits the value was written with.
func paddedValue(v interface{}) (int64, int, bool) {
	if s, ok := v.(string); ok {
		if !isDigits(s) {
			return 0, 0, false
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, 0, false
		}
		return i, len(s), true
	}
	if i, ok := asInt64(v); ok && i >= 0 {
		return i, width(i), true
	}
	return 0, 0, false
}

// Digits returns the rendering width of the range.
func (r paddedRange) Digits() int { return r.digits }

func (r paddedRange) pad(i int64) string {
	return fmt.Sprintf("%0*d", r.digits, i)
}

func (r paddedRange) Kind() Kind { return KindPadded }
func (r paddedRange) From() interface{} { return r.pad(r.from) }
func (r paddedRange) To() interface{} { return r.pad(r.to) }
func (r paddedRange) int64Bounds() (int64, int64) { return r.from, r.to }

func (r paddedRange) Contains(v interface{}) bool {
	i, _, ok := paddedValue(v)
	return ok && r.from <= i && i <= r.to
}

func (r paddedRange) compare(bound int64, v interface{}) int {
	if i, _, ok := paddedValue(v); ok {
		return cmp.Compare(bound, i)
	}
	return Compare(r.pad(bound), v)
}

func (r paddedRange) CompareFrom(v interface{}) int { return r.compare(r.from, v) }
func (r paddedRange) CompareTo(v interface{}) int { return r.compare(r.to, v) }

func (r paddedRange) Next(v interface{}) (interface{}, bool) {
	i, _, ok := paddedValue(v)
	if !ok || i == math.MaxInt64 {
		return nil, false
	}
	return r.pad(i + 1), true
}

func (r paddedRange) Prev(v interface{}) (interface{}, bool) {
	i, _, ok := paddedValue(v)
	if !ok || i == 0 {
		return nil, false
	}
	return r.pad(i - 1), true
}

func (r paddedRange) Expand(other Range) (Range, error) {
	o, ok := other.(paddedRange)
	if !ok {
		return nil, mismatch(r, other)
	}
	return r.expand(other, o.from, o.to, o.digits)
}

func (r paddedRange) ExpandValue(v interface{}) (Range, error) {
	i, digits, ok := paddedValue(v)
	if !ok {
		return nil, mismatch(r, v)
	}
	return r.expand(nil, i, i, digits)
}

func (r paddedRange) expand(other Range, from, to int64, digits int) (Range, error) {
	if from >= r.from && to <= r.to && digits <= r.digits {
		return r, nil
	}
	if other != nil && r.from >= from && r.to <= to && r.digits <= digits {
		return other, nil
	}
	if from > r.to && gap(r.to, from) > 1 || r.from > to && gap(to, r.from) > 1 {
		return nil, ErrNotAdjacent
	}
	return NewPadded(min(r.from, from), max(r.to, to), max(r.digits, digits))
}

func (r paddedRange) WithBounds(from, to interface{}) (Range, error) {
	f, _, fok := paddedValue(from)
	t, _, tok := paddedValue(to)
	if !fok || !tok {
		return nil, invalidf("%v~%v for padded range", from, to)
	}
	return NewPadded(f, t, r.digits)
}

func (r paddedRange) Parse(token string) (interface{}, error) {
	i, _, ok := paddedValue(token)
	if !ok {
		return nil, invalidf("%q is not a decimal", token)
	}
	return r.pad(i), nil
}

func (r paddedRange) Format(v interface{}) string {
	if i, _, ok := paddedValue(v); ok {
		return r.pad(i)
	}
	return toText(v)
}

func (r paddedRange) Size() uint64 { return gap(r.from, r.to) + 1 }

func (r paddedRange) Iterate() *Iterator { return newIterator(successors(r)) }

func (r paddedRange) Equal(other Range) bool {
	o, ok := other.(paddedRange)
	return ok && o == r
}

func (r paddedRange) String() string { return render(r) }
