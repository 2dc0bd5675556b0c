package number

import "strconv"

// Type identifies one of the fixed-width numeric types a literal may be
// suffixed with.
type Type uint8

// Supported type tags. TypeIsize and TypeUsize follow the platform word size.
const (
	TypeInvalid Type = iota
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeI128
	TypeIsize
	TypeU8
	TypeU16
	TypeU32
	TypeU64
	TypeU128
	TypeUsize
	TypeF32
	TypeF64
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeI8:      "i8",
	TypeI16:     "i16",
	TypeI32:     "i32",
	TypeI64:     "i64",
	TypeI128:    "i128",
	TypeIsize:   "isize",
	TypeU8:      "u8",
	TypeU16:     "u16",
	TypeU32:     "u32",
	TypeU64:     "u64",
	TypeU128:    "u128",
	TypeUsize:   "usize",
	TypeF32:     "f32",
	TypeF64:     "f64",
}

// Types lists every valid type tag in declaration order.
var Types = []Type{
	TypeI8, TypeI16, TypeI32, TypeI64, TypeI128, TypeIsize,
	TypeU8, TypeU16, TypeU32, TypeU64, TypeU128, TypeUsize,
	TypeF32, TypeF64,
}

// String returns the suffix token for the type, e.g. "u32".
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// ParseType looks up a suffix token. The match is exact and case-sensitive.
func ParseType(token string) (Type, bool) {
	for _, t := range Types {
		if typeNames[t] == token {
			return t, true
		}
	}
	return TypeInvalid, false
}

// Signed reports whether t is a signed integer type.
func (t Type) Signed() bool {
	return t >= TypeI8 && t <= TypeIsize
}

// Unsigned reports whether t is an unsigned integer type.
func (t Type) Unsigned() bool {
	return t >= TypeU8 && t <= TypeUsize
}

// Float reports whether t is a floating-point type.
func (t Type) Float() bool {
	return t == TypeF32 || t == TypeF64
}

// Bits returns the width of t in bits, or 0 for TypeInvalid.
func (t Type) Bits() int {
	switch t {
	case TypeI8, TypeU8:
		return 8
	case TypeI16, TypeU16:
		return 16
	case TypeI32, TypeU32, TypeF32:
		return 32
	case TypeI64, TypeU64, TypeF64:
		return 64
	case TypeI128, TypeU128:
		return 128
	case TypeIsize, TypeUsize:
		return strconv.IntSize
	default:
		return 0
	}
}
