// Package minmax provides mutable running minimum/maximum accumulators for
// the numeric range kinds.
package minmax

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/henderiw/rangeset/pkg/ranges"
)

// ErrEmpty is returned when a snapshot is taken of an empty accumulator.
var ErrEmpty = errors.New("minmax is empty")

// emptyHash is the hash of every empty accumulator.
const emptyHash = uint64(0x9e3779b97f4a7c15)

type Number interface {
	int8 | int16 | int32 | int64 | float32 | float64
}

// MinMax tracks the extent of the values added to it. The bounds only widen
// on Add; Clip returns a narrowed copy. The zero value is not usable, create
// one with New or one of the width specific constructors.
type MinMax[N Number] struct {
	min N
	max N
}

type (
	Int8    = MinMax[int8]
	Int16   = MinMax[int16]
	Int32   = MinMax[int32]
	Int64   = MinMax[int64]
	Float32 = MinMax[float32]
	Float64 = MinMax[float64]
)

func New[N Number](values ...N) *MinMax[N] {
	r := &MinMax[N]{}
	r.Clear()
	r.AddAll(values...)
	return r
}

// Of returns an accumulator spanning [min, max], swapping the bounds if needed.
func Of[N Number](min, max N) *MinMax[N] {
	if max < min {
		min, max = max, min
	}
	return &MinMax[N]{min: min, max: max}
}

func NewInt8(values ...int8) *Int8 { return New(values...) }
func NewInt16(values ...int16) *Int16 { return New(values...) }
func NewInt32(values ...int32) *Int32 { return New(values...) }
func NewInt64(values ...int64) *Int64 { return New(values...) }
func NewFloat32(values ...float32) *Float32 { return New(values...) }
func NewFloat64(values ...float64) *Float64 { return New(values...) }

// sentinels returns the lowest and highest value of N, infinities for floats.
func sentinels[N Number]() (N, N) {
	var lo, hi interface{}
	switch interface{}(*new(N)).(type) {
	case int8:
		lo, hi = int8(math.MinInt8), int8(math.MaxInt8)
	case int16:
		lo, hi = int16(math.MinInt16), int16(math.MaxInt16)
	case int32:
		lo, hi = int32(math.MinInt32), int32(math.MaxInt32)
	case int64:
		lo, hi = int64(math.MinInt64), int64(math.MaxInt64)
	case float32:
		lo, hi = float32(math.Inf(-1)), float32(math.Inf(1))
	default:
		lo, hi = math.Inf(-1), math.Inf(1)
	}
	return lo.(N), hi.(N)
}

func isNaN[N Number](n N) bool {
	return n != n
}

// Clear resets r to the empty state.
func (r *MinMax[N]) Clear() {
	lo, hi := sentinels[N]()
	r.min, r.max = hi, lo
}

func (r *MinMax[N]) IsEmpty() bool {
	return r.max < r.min
}

// Add widens r to include n and returns whether a bound changed. NaN is ignored.
func (r *MinMax[N]) Add(n N) bool {
	if isNaN(n) {
		return false
	}
	changed := false
	if n < r.min {
		r.min = n
		changed = true
	}
	if n > r.max {
		r.max = n
		changed = true
	}
	return changed
}

func (r *MinMax[N]) AddAll(values ...N) bool {
	changed := false
	for _, n := range values {
		if r.Add(n) {
			changed = true
		}
	}
	return changed
}

// AddMinMax widens r to include the extent of o.
func (r *MinMax[N]) AddMinMax(o *MinMax[N]) bool {
	if o == nil || o.IsEmpty() {
		return false
	}
	changed := r.Add(o.min)
	if r.Add(o.max) {
		changed = true
	}
	return changed
}

// Min returns the lower bound, false when r is empty.
func (r *MinMax[N]) Min() (N, bool) {
	return r.min, !r.IsEmpty()
}

// Max returns the upper bound, false when r is empty.
func (r *MinMax[N]) Max() (N, bool) {
	return r.max, !r.IsEmpty()
}

// Clip returns the intersection of r and [min, max]. The result is empty when
// they are disjoint.
func (r *MinMax[N]) Clip(min, max N) *MinMax[N] {
	if max < min {
		min, max = max, min
	}
	if r.IsEmpty() || min > r.max || max < r.min {
		return New[N]()
	}
	return Of(maxOf(r.min, min), minOf(r.max, max))
}

func minOf[N Number](a, b N) N {
	if a < b {
		return a
	}
	return b
}

func maxOf[N Number](a, b N) N {
	if a > b {
		return a
	}
	return b
}

func (r *MinMax[N]) Contains(n N) bool {
	return !r.IsEmpty() && r.min <= n && n <= r.max
}

// ContainsMinMax returns whether o lies within r. Both must be non-empty.
func (r *MinMax[N]) ContainsMinMax(o *MinMax[N]) bool {
	if o == nil || r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.min <= o.min && o.max <= r.max
}

// Overlaps returns whether r and o share a value. Both must be non-empty.
func (r *MinMax[N]) Overlaps(o *MinMax[N]) bool {
	if o == nil || r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.min <= o.max && o.min <= r.max
}

func (r *MinMax[N]) Equal(o *MinMax[N]) bool {
	if o == nil {
		return false
	}
	if r.IsEmpty() || o.IsEmpty() {
		return r.IsEmpty() == o.IsEmpty()
	}
	return r.min == o.min && r.max == o.max
}

// Hash hashes the bounds. All empty accumulators share one hash.
func (r *MinMax[N]) Hash() uint64 {
	if r.IsEmpty() {
		return emptyHash
	}
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], bits(r.min))
	binary.LittleEndian.PutUint64(buf[8:], bits(r.max))
	return xxhash.Sum64(buf[:])
}

func bits[N Number](n N) uint64 {
	switch v := interface{}(n).(type) {
	case float32:
		return uint64(math.Float32bits(v))
	case float64:
		return math.Float64bits(v)
	}
	return uint64(int64(n))
}

// Range returns an immutable snapshot of r.
func (r *MinMax[N]) Range() (ranges.Range, error) {
	if r.IsEmpty() {
		return nil, ErrEmpty
	}
	switch lo := interface{}(r.min).(type) {
	case int8:
		return ranges.NewInt8(lo, interface{}(r.max).(int8)), nil
	case int16:
		return ranges.NewInt16(lo, interface{}(r.max).(int16)), nil
	case int32:
		return ranges.NewInt32(lo, interface{}(r.max).(int32)), nil
	case int64:
		return ranges.NewInt64(lo, interface{}(r.max).(int64)), nil
	case float32:
		return ranges.NewFloat32(lo, interface{}(r.max).(float32))
	case float64:
		return ranges.NewFloat64(lo, interface{}(r.max).(float64))
	}
	return nil, errors.Newf("unsupported number type %T", r.min)
}

func (r *MinMax[N]) String() string {
	if r.IsEmpty() {
		return "empty"
	}
	if r.min == r.max {
		return fmt.Sprint(r.min)
	}
	return fmt.Sprintf("%v~%v", r.min, r.max)
}
