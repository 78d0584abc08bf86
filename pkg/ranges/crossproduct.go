package ranges

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// crossRange is the cartesian product of its parts. Each value is the
// concatenation of one formatted value of every part, e.g. 0~1+a~b holds
// "0a", "0b", "1a" and "1b".
type crossRange struct {
	parts []Range
}

// NewCrossProduct returns the cross product of parts. A cross product can not
// be expanded or merged with other ranges.
func NewCrossProduct(parts ...Range) (Range, error) {
	if len(parts) == 0 {
		return nil, invalidf("cross product without parts")
	}
	for i, p := range parts {
		if p == nil {
			return nil, invalidf("cross product part %d is nil", i)
		}
	}
	return crossRange{parts: append([]Range{}, parts...)}, nil
}

// Parts returns the components of a cross product range.
func Parts(r Range) ([]Range, error) {
	c, ok := r.(crossRange)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupported, "parts of %s range", r.Kind())
	}
	return append([]Range{}, c.parts...), nil
}

func (r crossRange) join(bound func(Range) interface{}) string {
	var sb strings.Builder
	for _, p := range r.parts {
		sb.WriteString(p.Format(bound(p)))
	}
	return sb.String()
}

func (r crossRange) Kind() Kind { return KindCrossProduct }
func (r crossRange) From() interface{} { return r.join(Range.From) }
func (r crossRange) To() interface{} { return r.join(Range.To) }

func (r crossRange) Contains(v interface{}) bool {
	s, ok := v.(string)
	return ok && matchParts(r.parts, s)
}

// matchParts reports whether s splits into one formatted member of every
// part, in order.
func matchParts(parts []Range, s string) bool {
	if len(parts) == 0 {
		return s == ""
	}
	p := parts[0]
	for i := 1; i <= len(s); i++ {
		token := s[:i]
		v, err := p.Parse(token)
		if err != nil || !p.Contains(v) || p.Format(v) != token {
			continue
		}
		if matchParts(parts[1:], s[i:]) {
			return true
		}
	}
	return false
}

func (r crossRange) CompareFrom(v interface{}) int { return Compare(r.From(), v) }
func (r crossRange) CompareTo(v interface{}) int { return Compare(r.To(), v) }

func (r crossRange) Next(interface{}) (interface{}, bool) { return nil, false }
func (r crossRange) Prev(interface{}) (interface{}, bool) { return nil, false }

func (r crossRange) Expand(other Range) (Range, error) {
	if r.Equal(other) {
		return r, nil
	}
	return nil, errors.Wrapf(ErrUnsupported, "expand cross product %s", r)
}

func (r crossRange) ExpandValue(v interface{}) (Range, error) {
	if r.Contains(v) {
		return r, nil
	}
	return nil, errors.Wrapf(ErrUnsupported, "add %v to cross product %s", v, r)
}

func (r crossRange) WithBounds(from, to interface{}) (Range, error) {
	return nil, errors.Wrapf(ErrUnsupported, "bounds %v~%v for cross product", from, to)
}

func (r crossRange) Parse(token string) (interface{}, error) {
	if !matchParts(r.parts, token) {
		return nil, invalidf("%q is not in %s", token, r)
	}
	return token, nil
}

func (r crossRange) Format(v interface{}) string { return toText(v) }

// Size is the product of the sizes of the parts.
func (r crossRange) Size() uint64 {
	size := uint64(1)
	for _, p := range r.parts {
		size *= p.Size()
	}
	return size
}

// Iterate walks the product like an odometer: the last part advances first
// and carries into the part before it when exhausted.
func (r crossRange) Iterate() *Iterator {
	return newIterator(func() generator {
		its := make([]*Iterator, len(r.parts))
		vals := make([]string, len(r.parts))
		started, done := false, false
		return func() (interface{}, bool) {
			if done {
				return nil, false
			}
			if !started {
				started = true
				for i, p := range r.parts {
					its[i] = p.Iterate()
					if !its[i].Next() {
						done = true
						return nil, false
					}
					vals[i] = p.Format(its[i].Value())
				}
				return strings.Join(vals, ""), true
			}
			for i := len(its) - 1; i >= 0; i-- {
				if its[i].Next() {
					vals[i] = r.parts[i].Format(its[i].Value())
					return strings.Join(vals, ""), true
				}
				if i == 0 {
					break
				}
				its[i].Reset()
				its[i].Next()
				vals[i] = r.parts[i].Format(its[i].Value())
			}
			done = true
			return nil, false
		}
	})
}

func (r crossRange) Equal(other Range) bool {
	o, ok := other.(crossRange)
	if !ok || len(o.parts) != len(r.parts) {
		return false
	}
	for i := range r.parts {
		if !r.parts[i].Equal(o.parts[i]) {
			return false
		}
	}
	return true
}

func (r crossRange) String() string {
	parts := make([]string, 0, len(r.parts))
	for _, p := range r.parts {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, "+")
}
