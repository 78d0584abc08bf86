package ranges

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	r, err := NewFloat64(3.2, 1.5)
	require.NoError(t, err)

	assert.Equal(t, 1.5, r.From())
	assert.Equal(t, uint64(4), r.Size())
	assert.Equal(t, []interface{}{1.5, 2.5}, Values(r))
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(3.3))

	next, ok := r.Next(1.5)
	assert.True(t, ok)
	assert.Equal(t, 2.5, next)

	_, err = NewFloat32(0, float32(nan()))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}

func TestFloatExpand(t *testing.T) {
	cases := map[string]struct {
		from, to    float64
		expected    string
		expectedErr error
	}{
		"Adjacent":   {from: 4, to: 5, expected: "1~5"},
		"Overlap":    {from: 2.5, to: 6.5, expected: "1~6.5"},
		"Gap":        {from: 4.5, to: 5, expectedErr: ErrNotAdjacent},
		"Contained":  {from: 1.5, to: 2, expected: "1~3"},
		"AdjacentLo": {from: -1, to: 0, expected: "-1~3"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewFloat64(1, 3)
			require.NoError(t, err)
			other, err := NewFloat64(tc.from, tc.to)
			require.NoError(t, err)
			expanded, err := r.Expand(other)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, expanded.String())
		})
	}
}

func TestFloat32Widens(t *testing.T) {
	r, err := NewFloat32(1, 2)
	require.NoError(t, err)
	other, err := NewFloat64(3, 4)
	require.NoError(t, err)
	expanded, err := r.Expand(other)
	require.NoError(t, err)
	assert.Equal(t, KindFloat64, expanded.Kind())
	assert.Equal(t, "1~4", expanded.String())
}

func TestChar(t *testing.T) {
	_, err := NewChar('a', 'Z')
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = NewChar('1', 'a')
	assert.ErrorIs(t, err, ErrInvalidRange)

	r, err := NewChar('c', 'a')
	require.NoError(t, err)
	assert.Equal(t, "a~c", r.String())
	assert.Equal(t, []interface{}{Char('a'), Char('b'), Char('c')}, Values(r))
	assert.True(t, r.Contains("b"))
	assert.True(t, r.Contains(Char('c')))
	assert.False(t, r.Contains('b'))

	_, ok := r.Next(Char('z'))
	assert.False(t, ok)
	_, ok = r.Prev(Char('A'))
	assert.False(t, ok)

	other, err := NewChar('d', 'f')
	require.NoError(t, err)
	expanded, err := r.Expand(other)
	require.NoError(t, err)
	assert.Equal(t, "a~f", expanded.String())

	upper, err := NewChar('A', 'Z')
	require.NoError(t, err)
	_, err = upper.Expand(r)
	assert.ErrorIs(t, err, ErrNotAdjacent)
}

func TestPadded(t *testing.T) {
	r, err := FromTokens("01", "05")
	require.NoError(t, err)
	assert.Equal(t, KindPadded, r.Kind())
	assert.Equal(t, "01~05", r.String())
	assert.Equal(t, []interface{}{"01", "02", "03", "04", "05"}, Values(r))
	assert.True(t, r.Contains("3"))
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains("x"))
	digits, err := Digits(r)
	require.NoError(t, err)
	assert.Equal(t, 2, digits)

	wide, err := FromTokens("8", "010")
	require.NoError(t, err)
	assert.Equal(t, "008~010", wide.String())

	expanded, err := r.ExpandValue("06")
	require.NoError(t, err)
	assert.Equal(t, "01~06", expanded.String())

	// a wider token widens the whole range
	widened, err := r.ExpandValue("005")
	require.NoError(t, err)
	assert.Equal(t, "001~005", widened.String())
	assert.Equal(t, r.Size(), widened.Size())

	_, err = Digits(NewInt32(1, 2))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestTimeOfDay(t *testing.T) {
	r, err := FromTokens("22:00", "02:00")
	require.NoError(t, err)
	assert.Equal(t, KindTimeOfDay, r.Kind())
	assert.True(t, Wrapping(r))
	assert.Equal(t, "22:00~02:00", r.String())
	assert.Equal(t, uint64(241), r.Size())

	assert.True(t, r.Contains("23:30"))
	assert.True(t, r.Contains("01:00"))
	assert.False(t, r.Contains("12:00"))
	assert.True(t, r.Contains(time.Date(2024, 1, 1, 23, 15, 0, 0, time.UTC)))

	assert.Equal(t, []Range{
		timeRange{from: 22 * 60, to: MinutesPerDay - 1},
		timeRange{from: 0, to: 2 * 60},
	}, Unwrap(r))
}

func TestTimeOfDayExpand(t *testing.T) {
	cases := map[string]struct {
		a, b     [2]string
		expected string
	}{
		"AcrossMidnight": {a: [2]string{"22:00", "23:59"}, b: [2]string{"00:00", "01:00"}, expected: "22:00~01:00"},
		"Reversed":       {a: [2]string{"00:00", "01:00"}, b: [2]string{"22:00", "23:59"}, expected: "22:00~01:00"},
		"Contained":      {a: [2]string{"22:00", "02:00"}, b: [2]string{"23:00", "01:00"}, expected: "22:00~02:00"},
		"Covering":       {a: [2]string{"23:00", "01:00"}, b: [2]string{"22:00", "02:00"}, expected: "22:00~02:00"},
		"FullDay":        {a: [2]string{"06:00", "18:00"}, b: [2]string{"17:00", "06:30"}, expected: "00:00~23:59"},
		"Linear":         {a: [2]string{"08:00", "09:00"}, b: [2]string{"09:01", "10:00"}, expected: "08:00~10:00"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			a, err := FromTokens(tc.a[0], tc.a[1])
			require.NoError(t, err)
			b, err := FromTokens(tc.b[0], tc.b[1])
			require.NoError(t, err)
			expanded, err := a.Expand(b)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, expanded.String())
		})
	}

	a, err := FromTokens("08:00", "09:00")
	require.NoError(t, err)
	b, err := FromTokens("09:02", "10:00")
	require.NoError(t, err)
	_, err = a.Expand(b)
	assert.ErrorIs(t, err, ErrNotAdjacent)
}

func TestTimeOfDayValues(t *testing.T) {
	r, err := NewTimeOfDay(23*60+58, 1)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{Clock(1438), Clock(1439), Clock(0), Clock(1)}, Values(r))

	_, err = ParseClock("24:00")
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = NewTimeOfDay(0, MinutesPerDay)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestString(t *testing.T) {
	r, err := FromTokens("abc", "abc")
	require.NoError(t, err)
	assert.Equal(t, KindString, r.Kind())
	assert.Equal(t, uint64(1), r.Size())
	assert.Equal(t, []interface{}{"abc"}, Values(r))

	same, err := r.Expand(NewString("abc"))
	require.NoError(t, err)
	assert.True(t, same.Equal(r))
	_, err = r.Expand(NewString("abd"))
	assert.ErrorIs(t, err, ErrNotAdjacent)

	_, err = FromTokens("abc", "abd")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCrossProduct(t *testing.T) {
	digits, err := FromTokens("0", "1")
	require.NoError(t, err)
	letters, err := FromTokens("a", "b")
	require.NoError(t, err)

	r, err := NewCrossProduct(digits, letters)
	require.NoError(t, err)
	assert.Equal(t, KindCrossProduct, r.Kind())
	assert.Equal(t, "0~1+a~b", r.String())
	assert.Equal(t, "0a", r.From())
	assert.Equal(t, "1b", r.To())
	assert.Equal(t, uint64(4), r.Size())
	if diff := cmp.Diff([]interface{}{"0a", "0b", "1a", "1b"}, Values(r)); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}

	assert.True(t, r.Contains("1b"))
	assert.False(t, r.Contains("2a"))
	assert.False(t, r.Contains("0"))

	_, err = r.Expand(NewInt32(1, 2))
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = r.ExpandValue("2a")
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = r.WithBounds("0a", "1a")
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = NewCrossProduct()
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCrossProductOdometer(t *testing.T) {
	digits, err := FromTokens("1", "10")
	require.NoError(t, err)
	x, err := FromToken("x")
	require.NoError(t, err)
	padded, err := FromTokens("01", "02")
	require.NoError(t, err)

	r, err := NewCrossProduct(padded, x, digits)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), r.Size())
	assert.True(t, r.Contains("01x10"))
	assert.True(t, r.Contains("02x1"))
	assert.False(t, r.Contains("1x1"))

	it := r.Iterate()
	var got []interface{}
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.Len(t, got, 20)
	assert.Equal(t, "01x1", got[0])
	assert.Equal(t, "01x10", got[9])
	assert.Equal(t, "02x1", got[10])

	it.Reset()
	require.True(t, it.Next())
	assert.Equal(t, "01x1", it.Value())
}

func TestFromTokens(t *testing.T) {
	cases := map[string]struct {
		from, to    string
		kind        Kind
		expected    string
		expectedErr error
	}{
		"Integer":       {from: "5", to: "1", kind: KindInt32, expected: "1~5"},
		"Negative":      {from: "-5", to: "5", kind: KindInt32, expected: "-5~5"},
		"Large":         {from: "1", to: "5000000000", kind: KindInt64, expected: "1~5000000000"},
		"Zero":          {from: "0", to: "0", kind: KindInt32, expected: "0"},
		"Padded":        {from: "007", to: "012", kind: KindPadded, expected: "007~012"},
		"Float":         {from: "1.5", to: "3", kind: KindFloat64, expected: "1.5~3"},
		"Clock":         {from: "08:30", to: "9:15", kind: KindTimeOfDay, expected: "08:30~09:15"},
		"Char":          {from: "B", to: "D", kind: KindChar, expected: "B~D"},
		"Opaque":        {from: "foo", to: "foo", kind: KindString, expected: "foo"},
		"Mixed":         {from: "1", to: "a", expectedErr: ErrInvalidRange},
		"MixedCase":     {from: "a", to: "Z", expectedErr: ErrInvalidRange},
		"Empty":         {from: "", to: "1", expectedErr: ErrInvalidRange},
		"Overflow":      {from: "1", to: "99999999999999999999", expectedErr: ErrInvalidRange},
		"OpaqueRange":   {from: "foo", to: "bar", expectedErr: ErrInvalidRange},
		"ClockAndFloat": {from: "08:30", to: "1.5", expectedErr: ErrInvalidRange},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := FromTokens(tc.from, tc.to)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, r.Kind())
			assert.Equal(t, tc.expected, r.String())
		})
	}
}

type label string

func (l label) String() string { return string(l) }

func TestNewRange(t *testing.T) {
	cases := map[string]struct {
		from, to    interface{}
		kind        Kind
		expected    string
		expectedErr error
	}{
		"Int8":        {from: int8(1), to: int8(5), kind: KindInt8, expected: "1~5"},
		"Int":         {from: 1, to: 5, kind: KindInt32, expected: "1~5"},
		"MixedWidth":  {from: int8(1), to: int64(5), kind: KindInt64, expected: "1~5"},
		"Uint64":      {from: uint64(1), to: uint64(1) << 40, kind: KindInt64, expected: "1~1099511627776"},
		"Float":       {from: 1, to: 2.5, kind: KindFloat64, expected: "1~2.5"},
		"Float32":     {from: float32(1), to: float32(2), kind: KindFloat32, expected: "1~2"},
		"Char":        {from: Char('a'), to: Char('c'), kind: KindChar, expected: "a~c"},
		"Clock":       {from: Clock(60), to: Clock(120), kind: KindTimeOfDay, expected: "01:00~02:00"},
		"String":      {from: "01", to: "03", kind: KindPadded, expected: "01~03"},
		"Bytes":       {from: []byte("a"), to: []byte("c"), kind: KindChar, expected: "a~c"},
		"Stringer":    {from: label("x"), to: label("x"), kind: KindString, expected: "x"},
		"Nil":         {from: nil, to: 1, expectedErr: ErrInvalidRange},
		"NumericMix":  {from: 1, to: "a", expectedErr: ErrInvalidRange},
		"NumericMix2": {from: []byte("a"), to: 1, expectedErr: ErrInvalidRange},
		"RangeBound":  {from: NewInt32(1, 2), to: 3, expectedErr: ErrUnsupported},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewRange(tc.from, tc.to)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, r.Kind())
			assert.Equal(t, tc.expected, r.String())
		})
	}
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, Compare(1, "a"))
	assert.Equal(t, 1, Compare("a", 1.5))
	assert.Equal(t, 1, Compare("b", "a"))
	assert.Equal(t, -1, Compare(int8(3), 3.5))
	assert.Equal(t, 0, Compare(int16(3), int64(3)))
	assert.Equal(t, -1, Compare(Char('a'), "b"))
	assert.Equal(t, 1, Compare(Clock(600), Clock(60)))
}

func TestNumericAccessors(t *testing.T) {
	from, to, err := Float64Bounds(NewInt32(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 1.0, from)
	assert.Equal(t, 2.0, to)

	r, err := NewChar('a', 'b')
	require.NoError(t, err)
	_, _, err = Int64Bounds(r)
	assert.True(t, errors.Is(err, ErrUnsupported))
	_, _, err = Float64Bounds(r)
	assert.True(t, errors.Is(err, ErrUnsupported))

	_, err = Parts(r)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestCovers(t *testing.T) {
	assert.True(t, Covers(NewInt32(1, 10), NewInt32(2, 3)))
	assert.False(t, Covers(NewInt32(1, 10), NewInt32(2, 11)))
	assert.False(t, Covers(NewInt32(1, 10), NewString("a")))
}
