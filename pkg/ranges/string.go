package ranges

import "strings"

// stringRange holds one opaque string. It only merges with an identical value.
type stringRange struct {
	value string
}

func NewString(value string) Range {
	return stringRange{value: value}
}

func (r stringRange) Kind() Kind { return KindString }
func (r stringRange) From() interface{} { return r.value }
func (r stringRange) To() interface{} { return r.value }

func (r stringRange) Contains(v interface{}) bool {
	s, ok := v.(string)
	return ok && s == r.value
}

func (r stringRange) compare(v interface{}) int {
	if s, ok := v.(string); ok {
		return strings.Compare(r.value, s)
	}
	return Compare(r.value, v)
}

func (r stringRange) CompareFrom(v interface{}) int { return r.compare(v) }
func (r stringRange) CompareTo(v interface{}) int { return r.compare(v) }

func (r stringRange) Next(interface{}) (interface{}, bool) { return nil, false }
func (r stringRange) Prev(interface{}) (interface{}, bool) { return nil, false }

func (r stringRange) Expand(other Range) (Range, error) {
	o, ok := other.(stringRange)
	if !ok {
		return nil, mismatch(r, other)
	}
	if o.value != r.value {
		return nil, ErrNotAdjacent
	}
	return r, nil
}

func (r stringRange) ExpandValue(v interface{}) (Range, error) {
	s, ok := v.(string)
	if !ok {
		return nil, mismatch(r, v)
	}
	if s != r.value {
		return nil, ErrNotAdjacent
	}
	return r, nil
}

func (r stringRange) WithBounds(from, to interface{}) (Range, error) {
	f, fok := from.(string)
	t, tok := to.(string)
	if !fok || !tok || f != t {
		return nil, invalidf("%v~%v for string range", from, to)
	}
	return NewString(f), nil
}

func (r stringRange) Parse(token string) (interface{}, error) {
	if token != r.value {
		return nil, invalidf("%q is not %q", token, r.value)
	}
	return token, nil
}

func (r stringRange) Format(v interface{}) string { return toText(v) }

func (r stringRange) Size() uint64 { return 1 }

func (r stringRange) Iterate() *Iterator { return newIterator(successors(r)) }

func (r stringRange) Equal(other Range) bool {
	o, ok := other.(stringRange)
	return ok && o == r
}

func (r stringRange) String() string { return r.value }
