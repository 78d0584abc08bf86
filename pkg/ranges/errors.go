package ranges

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidRange is returned when the bounds of a range can not form a range.
	ErrInvalidRange = errors.New("invalid range")
	// ErrUnsupported is returned for operations a range kind does not support.
	ErrUnsupported = errors.New("unsupported for this range kind")
	// ErrNotAdjacent is returned by Expand when two ranges neither overlap nor touch.
	ErrNotAdjacent = errors.New("ranges are not adjacent")
	// ErrKindMismatch is returned when a value or range does not belong to the domain of a range.
	ErrKindMismatch = errors.New("value kind does not match range kind")
)

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidRange, format, args...)
}

func mismatch(r Range, v interface{}) error {
	return errors.Wrapf(ErrKindMismatch, "%T for %s range", v, r.Kind())
}
