package ranges

import "cmp"

// Char is a single ASCII letter.
type Char rune

func (c Char) String() string { return string(rune(c)) }

func (c Char) isLower() bool { return c >= 'a' && c <= 'z' }
func (c Char) isUpper() bool { return c >= 'A' && c <= 'Z' }
func (c Char) isLetter() bool { return c.isLower() || c.isUpper() }

func charOf(v interface{}) (Char, bool) {
	switch c := v.(type) {
	case Char:
		return c, c.isLetter()
	case string:
		if len(c) == 1 && Char(c[0]).isLetter() {
			return Char(c[0]), true
		}
	}
	return 0, false
}

type charRange struct {
	from Char
	to   Char
}

// NewChar returns a range of letters. Both bounds must be letters of the
// same case.
func NewChar(from, to rune) (Range, error) {
	f, t := Char(from), Char(to)
	if !f.isLetter() || !t.isLetter() {
		return nil, invalidf("%q~%q must be letters", from, to)
	}
	if f.isLower() != t.isLower() {
		return nil, invalidf("%q~%q mixes upper and lower case", from, to)
	}
	if t < f {
		f, t = t, f
	}
	return charRange{from: f, to: t}, nil
}

func (r charRange) Kind() Kind { return KindChar }
func (r charRange) From() interface{} { return r.from }
func (r charRange) To() interface{} { return r.to }

func (r charRange) Contains(v interface{}) bool {
	c, ok := charOf(v)
	return ok && r.from <= c && c <= r.to
}

func (r charRange) compare(bound Char, v interface{}) int {
	if c, ok := charOf(v); ok {
		return cmp.Compare(bound, c)
	}
	return Compare(bound, v)
}

func (r charRange) CompareFrom(v interface{}) int { return r.compare(r.from, v) }
func (r charRange) CompareTo(v interface{}) int { return r.compare(r.to, v) }

func (r charRange) Next(v interface{}) (interface{}, bool) {
	c, ok := charOf(v)
	if !ok || c == 'z' || c == 'Z' {
		return nil, false
	}
	return c + 1, true
}

func (r charRange) Prev(v interface{}) (interface{}, bool) {
	c, ok := charOf(v)
	if !ok || c == 'a' || c == 'A' {
		return nil, false
	}
	return c - 1, true
}

func (r charRange) Expand(other Range) (Range, error) {
	o, ok := other.(charRange)
	if !ok {
		return nil, mismatch(r, other)
	}
	return r.expand(other, o.from, o.to)
}

func (r charRange) ExpandValue(v interface{}) (Range, error) {
	c, ok := charOf(v)
	if !ok {
		return nil, mismatch(r, v)
	}
	return r.expand(nil, c, c)
}

func (r charRange) expand(other Range, from, to Char) (Range, error) {
	if from >= r.from && to <= r.to {
		return r, nil
	}
	if other != nil && r.from >= from && r.to <= to {
		return other, nil
	}
	if from > r.to+1 || r.from > to+1 {
		return nil, ErrNotAdjacent
	}
	// 'Z'+1 is not 'a', so mixed case can never be adjacent.
	return NewChar(rune(min(r.from, from)), rune(max(r.to, to)))
}

func (r charRange) WithBounds(from, to interface{}) (Range, error) {
	f, fok := charOf(from)
	t, tok := charOf(to)
	if !fok || !tok {
		return nil, invalidf("%v~%v for char range", from, to)
	}
	return NewChar(rune(f), rune(t))
}

func (r charRange) Parse(token string) (interface{}, error) {
	c, ok := charOf(token)
	if !ok {
		return nil, invalidf("%q is not a letter", token)
	}
	return c, nil
}

func (r charRange) Format(v interface{}) string { return toText(v) }

func (r charRange) Size() uint64 { return uint64(r.to-r.from) + 1 }

func (r charRange) Iterate() *Iterator { return newIterator(successors(r)) }

func (r charRange) Equal(other Range) bool {
	o, ok := other.(charRange)
	return ok && o == r
}

func (r charRange) String() string { return render(r) }
