package ranges

import (
	"cmp"
	"fmt"
	"math"
	"strings"
)

func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func asFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	if i, ok := asInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

func isNumber(v interface{}) bool {
	_, ok := asFloat64(v)
	return ok
}

func toText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

// Compare is the total order used between values of different kinds:
// numbers sort before everything else and compare numerically, all other
// values compare by their textual form.
func Compare(a, b interface{}) int {
	ai, aInt := asInt64(a)
	bi, bInt := asInt64(b)
	if aInt && bInt {
		return cmp.Compare(ai, bi)
	}
	af, aNum := asFloat64(a)
	bf, bNum := asFloat64(b)
	switch {
	case aNum && bNum:
		return cmp.Compare(af, bf)
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return strings.Compare(toText(a), toText(b))
}

// intKindOf returns the narrowest integer family a Go integer value maps to.
// Plain int values map to the int32 family, matching tokens parsed from text.
func intKindOf(v interface{}) Kind {
	switch v.(type) {
	case int8:
		return KindInt8
	case int16, uint8:
		return KindInt16
	case int32, uint16, int:
		return KindInt32
	}
	return KindInt64
}
