package ranges

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"
)

type tokenKind int

const (
	tokenOpaque tokenKind = iota
	tokenInteger
	tokenPadded
	tokenFloat
	tokenClock
	tokenChar
)

func classify(s string) tokenKind {
	digits := strings.TrimPrefix(s, "-")
	switch {
	case isDigits(digits):
		if len(digits) > 1 && digits[0] == '0' && len(digits) == len(s) {
			return tokenPadded
		}
		return tokenInteger
	case len(s) == 1 && Char(s[0]).isLetter():
		return tokenChar
	case strings.Contains(s, ":"):
		if _, err := ParseClock(s); err == nil {
			return tokenClock
		}
	case strings.Contains(s, "."):
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return tokenFloat
		}
	}
	return tokenOpaque
}

// FromTokens infers the range kind from two textual bounds. Integers without
// a leading zero give an integer range, integers with a leading zero a padded
// range, HH:MM a time of day range, decimals a float64 range and single
// letters a char range. Any other token is an opaque string, which can only
// form a range with itself.
func FromTokens(from, to string) (Range, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return nil, invalidf("empty bound in %q~%q", from, to)
	}
	fk, tk := classify(from), classify(to)
	k := fk
	if fk != tk {
		switch {
		case fk == tokenPadded && tk == tokenInteger, fk == tokenInteger && tk == tokenPadded:
			k = tokenPadded
		case fk == tokenFloat && tk == tokenInteger, fk == tokenInteger && tk == tokenFloat:
			k = tokenFloat
		default:
			return nil, invalidf("%q and %q are not of the same kind", from, to)
		}
	}
	switch k {
	case tokenInteger, tokenPadded:
		f, err := strconv.ParseInt(from, 10, 64)
		if err != nil {
			return nil, invalidf("%q overflows int64", from)
		}
		t, err := strconv.ParseInt(to, 10, 64)
		if err != nil {
			return nil, invalidf("%q overflows int64", to)
		}
		if k == tokenPadded {
			return NewPadded(f, t, max(len(from), len(to)))
		}
		return Promote(KindInt32, f, t), nil
	case tokenFloat:
		f, _ := strconv.ParseFloat(from, 64)
		t, _ := strconv.ParseFloat(to, 64)
		return NewFloat64(f, t)
	case tokenClock:
		f, _ := ParseClock(from)
		t, _ := ParseClock(to)
		return NewTimeOfDay(f, t)
	case tokenChar:
		return NewChar(rune(from[0]), rune(to[0]))
	}
	if from != to {
		return nil, invalidf("%q~%q is not a range", from, to)
	}
	return NewString(from), nil
}

// FromToken returns the single value range for a textual token.
func FromToken(token string) (Range, error) {
	return FromTokens(token, token)
}

// NewValue returns a range holding only v.
func NewValue(v interface{}) (Range, error) {
	return NewRange(v, v)
}

// NewRange returns a range over [from, to] whose kind is inferred from the
// Go types of the bounds. Mixing numeric and non-numeric bounds fails with
// ErrInvalidRange. Values of other types are converted to text and
// classified like tokens.
func NewRange(from, to interface{}) (Range, error) {
	if from == nil || to == nil {
		return nil, invalidf("nil bound")
	}
	switch f := from.(type) {
	case Range:
		return nil, errors.Wrapf(ErrUnsupported, "range %s as bound", f)
	case Char:
		t, ok := charOf(to)
		if !ok {
			return nil, invalidf("%v~%v", from, to)
		}
		return NewChar(rune(f), rune(t))
	case Clock:
		t, ok := clockOf(to)
		if !ok {
			return nil, invalidf("%v~%v", from, to)
		}
		return NewTimeOfDay(f, t)
	case string:
		t, ok := to.(string)
		if !ok {
			return nil, invalidf("%q~%v", f, to)
		}
		return FromTokens(f, t)
	}

	fi, fInt := asInt64(from)
	ti, tInt := asInt64(to)
	if fInt && tInt {
		return Promote(max(intKindOf(from), intKindOf(to)), fi, ti), nil
	}
	ff, fNum := asFloat64(from)
	tf, tNum := asFloat64(to)
	switch {
	case fNum && tNum:
		_, f32 := from.(float32)
		_, t32 := to.(float32)
		if f32 && t32 {
			return NewFloat32(float32(ff), float32(tf))
		}
		return NewFloat64(ff, tf)
	case fNum != tNum:
		return nil, invalidf("numeric and non-numeric bounds %v~%v", from, to)
	}

	fs, err := cast.ToStringE(from)
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupported, "bound of type %T", from)
	}
	ts, err := cast.ToStringE(to)
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupported, "bound of type %T", to)
	}
	return FromTokens(fs, ts)
}

// Int64Bounds returns the bounds of an integer or padded range.
func Int64Bounds(r Range) (int64, int64, error) {
	if b, ok := r.(interface{ int64Bounds() (int64, int64) }); ok {
		from, to := b.int64Bounds()
		return from, to, nil
	}
	return 0, 0, errors.Wrapf(ErrUnsupported, "integer bounds of %s range", r.Kind())
}

// Float64Bounds returns the bounds of a numeric or padded range.
func Float64Bounds(r Range) (float64, float64, error) {
	if b, ok := r.(interface{ float64Bounds() (float64, float64) }); ok {
		from, to := b.float64Bounds()
		return from, to, nil
	}
	from, to, err := Int64Bounds(r)
	if err != nil {
		return 0, 0, errors.Wrapf(ErrUnsupported, "numeric bounds of %s range", r.Kind())
	}
	return float64(from), float64(to), nil
}

// Wrapping returns whether r is a time of day range crossing midnight.
func Wrapping(r Range) bool {
	t, ok := r.(timeRange)
	return ok && t.Wrapping()
}

// Unwrap splits a range crossing midnight into its two linear parts. Every
// other range is returned as is.
func Unwrap(r Range) []Range {
	if t, ok := r.(timeRange); ok {
		return t.Unwrap()
	}
	return []Range{r}
}

// Digits returns the rendering width of a padded range.
func Digits(r Range) (int, error) {
	p, ok := r.(paddedRange)
	if !ok {
		return 0, errors.Wrapf(ErrUnsupported, "digits of %s range", r.Kind())
	}
	return p.Digits(), nil
}
