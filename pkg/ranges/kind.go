package ranges

// Kind identifies the domain of a Range.
type Kind int

const (
	KindInt8 Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindChar
	KindPadded
	KindTimeOfDay
	KindString
	KindCrossProduct
)

func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindChar:
		return "char"
	case KindPadded:
		return "padded"
	case KindTimeOfDay:
		return "timeofday"
	case KindString:
		return "string"
	case KindCrossProduct:
		return "crossproduct"
	default:
		return "unknown"
	}
}

// IsInteger returns whether k is one of the signed integer families.
func (k Kind) IsInteger() bool {
	return k >= KindInt8 && k <= KindInt64
}

// IsFloat returns whether k is one of the floating point families.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsNumeric returns whether the values of k are Go numbers.
func (k Kind) IsNumeric() bool {
	return k.IsInteger() || k.IsFloat()
}
