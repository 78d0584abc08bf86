// Package rangeset keeps sparse ordered domains as the canonical union of
// disjoint, non-adjacent ranges.
package rangeset

import (
	"sort"
	"strings"

	"github.com/henderiw/rangeset/pkg/ranges"
)

// RangeSet is a mutable set of values stored as ranges. A RangeSet is not
// safe for concurrent use, see Synced.
type RangeSet struct {
	// rr is kept in canonical form: sorted by lower bound, no overlapping
	// ranges and no two consecutive ranges that can be merged. The
	// implementation of the mutating methods relies on this property.
	rr   []ranges.Range
	size uint64
}

func New() *RangeSet {
	return &RangeSet{}
}

// FromValues returns a set holding values.
func FromValues(values ...interface{}) (*RangeSet, error) {
	r := New()
	if _, err := r.AddValues(values...); err != nil {
		return nil, err
	}
	return r, nil
}

// FromRange returns a set holding the range [from, to].
func FromRange(from, to interface{}) (*RangeSet, error) {
	r := New()
	if _, err := r.AddBounds(from, to); err != nil {
		return nil, err
	}
	return r, nil
}

// normalize maps textual values onto the domain value their token denotes,
// so "5" matches the integer 5 and "22:00" the Clock 22:00.
func normalize(v interface{}) interface{} {
	s, ok := v.(string)
	if !ok {
		return v
	}
	r, err := ranges.FromToken(s)
	if err != nil {
		return v
	}
	return r.From()
}

// Add adds a single value. Ranges and sets are added with AddRange and
// AddSet. It returns whether the set changed.
func (r *RangeSet) Add(v interface{}) (bool, error) {
	switch t := v.(type) {
	case nil:
		return false, nil
	case ranges.Range:
		return r.AddRange(t), nil
	case *RangeSet:
		return r.AddSet(t), nil
	}
	single, err := ranges.NewValue(v)
	if err != nil {
		return false, err
	}
	value := single.From()
	for i, rng := range r.rr {
		expanded, err := rng.ExpandValue(value)
		if err != nil {
			continue
		}
		if expanded.Equal(rng) {
			return false, nil
		}
		r.delete(i)
		r.place(expanded)
		return true, nil
	}
	r.place(single)
	return true, nil
}

// AddValues adds every value and returns whether the set changed.
func (r *RangeSet) AddValues(values ...interface{}) (bool, error) {
	added := false
	for _, v := range values {
		ok, err := r.Add(v)
		if err != nil {
			return added, err
		}
		added = added || ok
	}
	return added, nil
}

// AddBounds adds the range [from, to], inferring its kind from the bounds.
func (r *RangeSet) AddBounds(from, to interface{}) (bool, error) {
	add, err := ranges.NewRange(from, to)
	if err != nil {
		return false, err
	}
	return r.AddRange(add), nil
}

// AddRange adds every value of add and returns whether the set changed.
func (r *RangeSet) AddRange(add ranges.Range) bool {
	if add == nil {
		return false
	}
	for _, rng := range r.rr {
		if ranges.Covers(rng, add) {
			return false
		}
	}
	r.place(add)
	return true
}

// AddSet adds all ranges of o.
func (r *RangeSet) AddSet(o *RangeSet) bool {
	if o == nil {
		return false
	}
	added := false
	for _, rng := range o.rr {
		if r.AddRange(rng) {
			added = true
		}
	}
	return added
}

func (r *RangeSet) insert(i int, rng ranges.Range) {
	r.rr = append(r.rr, nil)
	copy(r.rr[i+1:], r.rr[i:])
	r.rr[i] = rng
	r.size += rng.Size()
}

func (r *RangeSet) delete(i int) {
	r.size -= r.rr[i].Size()
	r.rr = append(r.rr[:i], r.rr[i+1:]...)
}

// place folds every range touching rng into it and inserts the result at its
// sorted position. A merge can move the lower bound, and a time of day range
// crossing midnight can touch both the first and the last range.
func (r *RangeSet) place(rng ranges.Range) {
	for i := 0; i < len(r.rr); {
		merged, err := r.rr[i].Expand(rng)
		if err != nil {
			i++
			continue
		}
		r.delete(i)
		rng, i = merged, 0
	}
	r.insertSorted(rng)
}

// insertSorted inserts rng before the first range starting after it.
func (r *RangeSet) insertSorted(rng ranges.Range) {
	i := sort.Search(len(r.rr), func(i int) bool {
		return r.rr[i].CompareFrom(rng.From()) > 0
	})
	r.insert(i, rng)
}

// Remove removes a single value. A value at the edge of a range shrinks the
// range, a value inside a range splits it in two.
func (r *RangeSet) Remove(v interface{}) bool {
	for i, rng := range r.rr {
		value := v
		if !rng.Contains(value) {
			value = normalize(v)
			if !rng.Contains(value) {
				continue
			}
		}
		atFrom := rng.CompareFrom(value) == 0
		atTo := rng.CompareTo(value) == 0
		var pieces []ranges.Range
		switch {
		case atFrom && atTo:
		case atFrom:
			next, ok := rng.Next(value)
			if !ok {
				return false
			}
			piece, err := rng.WithBounds(next, rng.To())
			if err != nil {
				return false
			}
			pieces = append(pieces, piece)
		case atTo:
			prev, ok := rng.Prev(value)
			if !ok {
				return false
			}
			piece, err := rng.WithBounds(rng.From(), prev)
			if err != nil {
				return false
			}
			pieces = append(pieces, piece)
		default:
			prev, pok := rng.Prev(value)
			next, nok := rng.Next(value)
			if !pok || !nok {
				return false
			}
			before, err := rng.WithBounds(rng.From(), prev)
			if err != nil {
				return false
			}
			after, err := rng.WithBounds(next, rng.To())
			if err != nil {
				return false
			}
			pieces = append(pieces, before, after)
		}
		r.delete(i)
		for _, piece := range pieces {
			r.insertSorted(piece)
		}
		return true
	}
	return false
}

// RemoveValues removes every value and returns whether the set changed.
func (r *RangeSet) RemoveValues(values ...interface{}) bool {
	removed := false
	for _, v := range values {
		if r.Remove(v) {
			removed = true
		}
	}
	return removed
}

// RemoveFirst removes and returns the lowest value of the set.
func (r *RangeSet) RemoveFirst() (interface{}, bool) {
	if len(r.rr) == 0 {
		return nil, false
	}
	v := r.rr[0].From()
	if !r.Remove(v) {
		return nil, false
	}
	return v, true
}

// RemoveRange removes all values in [from, to]. Ranges inside the interval are
// dropped, ranges overlapping one end are shrunk and ranges spanning the whole
// interval are split in two. For time of day values, from after to removes the
// interval crossing midnight.
func (r *RangeSet) RemoveRange(from, to interface{}) bool {
	from, to = normalize(from), normalize(to)
	if ranges.Compare(from, to) > 0 {
		f, fok := from.(ranges.Clock)
		t, tok := to.(ranges.Clock)
		if fok && tok {
			before := r.RemoveRange(f, ranges.Clock(ranges.MinutesPerDay-1))
			after := r.RemoveRange(ranges.Clock(0), t)
			return before || after
		}
		from, to = to, from
	}

	removed := false
	rr := r.rr
	r.rr, r.size = make([]ranges.Range, 0, len(rr)), 0
	for _, rng := range rr {
		pieces, changed := cut(rng, from, to)
		removed = removed || changed
		for _, piece := range pieces {
			r.insertSorted(piece)
		}
	}
	return removed
}

// RemoveSet removes all ranges of o.
func (r *RangeSet) RemoveSet(o *RangeSet) bool {
	if o == nil {
		return false
	}
	removed := false
	for _, rng := range o.rr {
		if r.RemoveRange(rng.From(), rng.To()) {
			removed = true
		}
	}
	return removed
}

// cut returns what is left of rng after removing [lo, hi].
func cut(rng ranges.Range, lo, hi interface{}) ([]ranges.Range, bool) {
	if !ranges.Wrapping(rng) {
		return cutLinear(rng, lo, hi)
	}
	var pieces []ranges.Range
	changed := false
	for _, part := range ranges.Unwrap(rng) {
		p, c := cutLinear(part, lo, hi)
		pieces = append(pieces, p...)
		changed = changed || c
	}
	if !changed {
		return []ranges.Range{rng}, false
	}
	return rejoin(pieces), true
}

func cutLinear(rng ranges.Range, lo, hi interface{}) ([]ranges.Range, bool) {
	if rng.CompareFrom(hi) > 0 || rng.CompareTo(lo) < 0 {
		return []ranges.Range{rng}, false
	}
	keepBefore := rng.CompareFrom(lo) < 0
	keepAfter := rng.CompareTo(hi) > 0
	if rng.Kind() == ranges.KindCrossProduct && (keepBefore || keepAfter) {
		// a cross product can only be removed as a whole.
		return []ranges.Range{rng}, false
	}
	unchanged := []ranges.Range{rng}
	var pieces []ranges.Range
	var size uint64
	if keepBefore {
		prev, ok := ranges.Below(rng, lo)
		if !ok {
			return unchanged, false
		}
		piece, err := rng.WithBounds(rng.From(), prev)
		if err != nil {
			return unchanged, false
		}
		pieces = append(pieces, piece)
		size += piece.Size()
	}
	if keepAfter {
		next, ok := ranges.Above(rng, hi)
		if !ok {
			return unchanged, false
		}
		piece, err := rng.WithBounds(next, rng.To())
		if err != nil {
			return unchanged, false
		}
		pieces = append(pieces, piece)
		size += piece.Size()
	}
	if len(pieces) > 0 && size == rng.Size() {
		// [lo, hi] falls between two steps of the domain.
		return unchanged, false
	}
	return pieces, true
}

// rejoin merges consecutive pieces that touch again, the halves of a range
// crossing midnight.
func rejoin(pieces []ranges.Range) []ranges.Range {
	out := make([]ranges.Range, 0, len(pieces))
	for _, p := range pieces {
		if n := len(out); n > 0 {
			if merged, err := out[n-1].Expand(p); err == nil {
				out[n-1] = merged
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Clear removes all values.
func (r *RangeSet) Clear() {
	r.rr = nil
	r.size = 0
}

// Contains returns whether v is in the set.
func (r *RangeSet) Contains(v interface{}) bool {
	if v == nil {
		return false
	}
	nv := normalize(v)
	for _, rng := range r.rr {
		if rng.Contains(v) || rng.Contains(nv) {
			return true
		}
	}
	return false
}

// Size returns the number of values in the set.
func (r *RangeSet) Size() uint64 { return r.size }

func (r *RangeSet) IsEmpty() bool { return len(r.rr) == 0 }

// Len returns the number of ranges in the canonical form.
func (r *RangeSet) Len() int { return len(r.rr) }

// Ranges returns a copy of the canonical ranges.
func (r *RangeSet) Ranges() []ranges.Range {
	return append([]ranges.Range{}, r.rr...)
}

// From returns the lowest value of the set.
func (r *RangeSet) From() (interface{}, bool) {
	if len(r.rr) == 0 {
		return nil, false
	}
	return r.rr[0].From(), true
}

// To returns the highest value of the set.
func (r *RangeSet) To() (interface{}, bool) {
	if len(r.rr) == 0 {
		return nil, false
	}
	return r.rr[len(r.rr)-1].To(), true
}

// Values returns every value of the set in order.
func (r *RangeSet) Values() []interface{} {
	out := make([]interface{}, 0, min(r.size, 1024))
	it := r.Iterate()
	for it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func (r *RangeSet) Clone() *RangeSet {
	return &RangeSet{
		rr:   append([]ranges.Range{}, r.rr...),
		size: r.size,
	}
}

// Compare orders sets by their lowest value, an empty set sorts first.
func (r *RangeSet) Compare(o *RangeSet) int {
	switch {
	case r.IsEmpty() && o.IsEmpty():
		return 0
	case r.IsEmpty():
		return -1
	case o.IsEmpty():
		return 1
	}
	return ranges.Compare(r.rr[0].From(), o.rr[0].From())
}

func (r *RangeSet) Equal(o *RangeSet) bool {
	if o == nil || len(r.rr) != len(o.rr) {
		return false
	}
	for i := range r.rr {
		if !r.rr[i].Equal(o.rr[i]) {
			return false
		}
	}
	return true
}

// EqualsRange returns whether the set is exactly the integer range [from, to].
func (r *RangeSet) EqualsRange(from, to int64) bool {
	if len(r.rr) != 1 || !r.rr[0].Kind().IsInteger() {
		return false
	}
	f, t, err := ranges.Int64Bounds(r.rr[0])
	return err == nil && f == from && t == to
}

func (r *RangeSet) String() string {
	parts := make([]string, 0, len(r.rr))
	for _, rng := range r.rr {
		parts = append(parts, rng.String())
	}
	return strings.Join(parts, ",")
}
