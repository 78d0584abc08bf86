package rangeset

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/henderiw/rangeset/pkg/ranges"
)

// ErrSyntax is returned for a malformed range spec.
var ErrSyntax = errors.New("range spec syntax error")

const (
	unionSep    = ","
	crossSep    = "+"
	intervalSep = "~"
)

// Parse reads a range spec:
//
//	rangeset  := part (',' part)*
//	part      := crossPart ('+' crossPart)*
//	crossPart := token ('~' token)?
//
// Whitespace and a single trailing ',' are ignored. Tokens are classified as in ranges.FromTokens and a
// part with '+' becomes a cross product of its components.
func Parse(spec string) (*RangeSet, error) {
	r := New()
	compact := strings.Map(func(c rune) rune {
		if unicode.IsSpace(c) {
			return -1
		}
		return c
	}, spec)
	if compact == "" {
		return r, nil
	}
	parts := strings.Split(compact, unionSep)
	if n := len(parts); n > 1 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	for i, part := range parts {
		rng, err := parsePart(part)
		if err != nil {
			return nil, errors.Wrapf(err, "part %d of %q", i+1, spec)
		}
		r.AddRange(rng)
	}
	return r, nil
}

// MustParse is Parse for specs known to be valid. It panics on error.
func MustParse(spec string) *RangeSet {
	r, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return r
}

func parsePart(part string) (ranges.Range, error) {
	if part == "" {
		return nil, errors.Wrap(ErrSyntax, "empty range")
	}
	components := strings.Split(part, crossSep)
	parts := make([]ranges.Range, 0, len(components))
	for _, c := range components {
		rng, err := parseInterval(c)
		if err != nil {
			return nil, err
		}
		parts = append(parts, rng)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return ranges.NewCrossProduct(parts...)
}

func parseInterval(s string) (ranges.Range, error) {
	from, to, found := strings.Cut(s, intervalSep)
	if !found {
		to = from
	}
	if strings.Contains(to, intervalSep) {
		return nil, errors.Wrapf(ErrSyntax, "the ~ character cannot be used twice in a range, see %q", s)
	}
	if from == "" || to == "" {
		return nil, errors.Wrapf(ErrSyntax, "empty bound in %q", s)
	}
	return ranges.FromTokens(from, to)
}

// MarshalText renders the set in the range spec grammar.
func (r *RangeSet) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText replaces the content of r with the parsed range spec.
func (r *RangeSet) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}

// MarshalYAML renders the set as a range spec scalar.
func (r *RangeSet) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// UnmarshalYAML reads a range spec scalar.
func (r *RangeSet) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var spec string
	if err := unmarshal(&spec); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(spec))
}
