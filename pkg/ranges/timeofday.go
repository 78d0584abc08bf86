package ranges

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the number of distinct Clock values.
const MinutesPerDay = 24 * 60

// Clock is a wall-clock time of day with minute resolution, counted in
// minutes since midnight.
type Clock int

// ClockOf returns the time of day of t.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// ParseClock parses a "HH:MM" (or "H:MM") time of day.
func ParseClock(s string) (Clock, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok || len(h) < 1 || len(h) > 2 || len(m) != 2 || !isDigits(h) || !isDigits(m) {
		return 0, invalidf("%q is not a HH:MM time of day", s)
	}
	hour, _ := strconv.Atoi(h)
	minute, _ := strconv.Atoi(m)
	if hour > 23 || minute > 59 {
		return 0, invalidf("%q is not a valid time of day", s)
	}
	return Clock(hour*60 + minute), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c Clock) valid() bool { return c >= 0 && c < MinutesPerDay }

func clockOf(v interface{}) (Clock, bool) {
	switch c := v.(type) {
	case Clock:
		return c, c.valid()
	case time.Time:
		return ClockOf(c), true
	case string:
		clock, err := ParseClock(c)
		return clock, err == nil
	}
	return 0, false
}

// timeRange is an arc of the day from from to to. When to is before from the
// arc crosses midnight.
type timeRange struct {
	from Clock
	to   Clock
}

// NewTimeOfDay returns a time of day range. Bounds are not swapped: a range
// whose to is before its from wraps around midnight.
func NewTimeOfDay(from, to Clock) (Range, error) {
	if !from.valid() || !to.valid() {
		return nil, invalidf("time of day %d~%d out of range", from, to)
	}
	return timeRange{from: from, to: to}, nil
}

// Wrapping returns whether the range crosses midnight.
func (r timeRange) Wrapping() bool { return r.to < r.from }

// Unwrap splits a wrapping range into its parts before and after midnight.
func (r timeRange) Unwrap() []Range {
	if !r.Wrapping() {
		return []Range{r}
	}
	return []Range{
		timeRange{from: r.from, to: MinutesPerDay - 1},
		timeRange{from: 0, to: r.to},
	}
}

func (r timeRange) length() int {
	return (int(r.to)-int(r.from)+MinutesPerDay)%MinutesPerDay + 1
}

func (r timeRange) Kind() Kind { return KindTimeOfDay }
func (r timeRange) From() interface{} { return r.from }
func (r timeRange) To() interface{} { return r.to }

func (r timeRange) Contains(v interface{}) bool {
	c, ok := clockOf(v)
	if !ok {
		return false
	}
	if r.Wrapping() {
		return c >= r.from || c <= r.to
	}
	return r.from <= c && c <= r.to
}

func (r timeRange) compare(bound Clock, v interface{}) int {
	if c, ok := clockOf(v); ok {
		return cmp.Compare(bound, c)
	}
	return Compare(bound, v)
}

func (r timeRange) CompareFrom(v interface{}) int { return r.compare(r.from, v) }
func (r timeRange) CompareTo(v interface{}) int { return r.compare(r.to, v) }

func (r timeRange) Next(v interface{}) (interface{}, bool) {
	c, ok := clockOf(v)
	if !ok {
		return nil, false
	}
	return (c + 1) % MinutesPerDay, true
}

func (r timeRange) Prev(v interface{}) (interface{}, bool) {
	c, ok := clockOf(v)
	if !ok {
		return nil, false
	}
	return (c + MinutesPerDay - 1) % MinutesPerDay, true
}

func (r timeRange) Expand(other Range) (Range, error) {
	o, ok := other.(timeRange)
	if !ok {
		return nil, mismatch(r, other)
	}
	if expanded, ok := r.union(o); ok {
		return expanded, nil
	}
	if expanded, ok := o.union(r); ok {
		return expanded, nil
	}
	return nil, ErrNotAdjacent
}

// union merges o into r when o starts inside r or right after it.
func (r timeRange) union(o timeRange) (Range, bool) {
	n := r.length()
	offset := (int(o.from) - int(r.from) + MinutesPerDay) % MinutesPerDay
	if offset > n {
		return nil, false
	}
	total := max(n, offset+o.length())
	switch {
	case offset < n && total == n:
		return r, true
	case offset == 0 && total == o.length():
		return o, true
	case total >= MinutesPerDay:
		return timeRange{from: 0, to: MinutesPerDay - 1}, true
	}
	return timeRange{from: r.from, to: Clock((int(r.from) + total - 1) % MinutesPerDay)}, true
}

func (r timeRange) ExpandValue(v interface{}) (Range, error) {
	c, ok := clockOf(v)
	if !ok {
		return nil, mismatch(r, v)
	}
	return r.Expand(timeRange{from: c, to: c})
}

func (r timeRange) WithBounds(from, to interface{}) (Range, error) {
	f, fok := clockOf(from)
	t, tok := clockOf(to)
	if !fok || !tok {
		return nil, invalidf("%v~%v for time of day range", from, to)
	}
	return NewTimeOfDay(f, t)
}

func (r timeRange) Parse(token string) (interface{}, error) {
	return ParseClock(token)
}

func (r timeRange) Format(v interface{}) string { return toText(v) }

func (r timeRange) Size() uint64 { return uint64(r.length()) }

func (r timeRange) Iterate() *Iterator { return newIterator(successors(r)) }

func (r timeRange) Equal(other Range) bool {
	o, ok := other.(timeRange)
	return ok && o == r
}

func (r timeRange) String() string { return render(r) }
