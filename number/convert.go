package number

import (
	"strconv"
	"strings"

	"github.com/fewensa/toolkit/errors"
)

// Numeric is the closed set of native Go types the generic converters accept.
// int and uint stand in for isize and usize.
type Numeric interface {
	int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint |
		float32 | float64
}

// As parses text as T using the strconv decimal grammar. The returned error
// has code errors.CodeInvalidInput and wraps a *ParseError.
func As[T Numeric](text string) (T, error) {
	v, perr := parse[T](text)
	if perr != nil {
		return 0, errors.Wrap(perr, errors.CodeInvalidInput, "invalid numeric text")
	}
	return v, nil
}

// AsOr parses text as T, returning def when text is blank or cannot be parsed.
func AsOr[T Numeric](text string, def T) T {
	if strings.TrimSpace(text) == "" {
		return def
	}
	v, perr := parse[T](text)
	if perr != nil {
		return def
	}
	return v
}

// TypeOf returns the type tag for T.
func TypeOf[T Numeric]() Type {
	var zero T
	switch any(zero).(type) {
	case int8:
		return TypeI8
	case int16:
		return TypeI16
	case int32:
		return TypeI32
	case int64:
		return TypeI64
	case int:
		return TypeIsize
	case uint8:
		return TypeU8
	case uint16:
		return TypeU16
	case uint32:
		return TypeU32
	case uint64:
		return TypeU64
	case uint:
		return TypeUsize
	case float32:
		return TypeF32
	case float64:
		return TypeF64
	default:
		return TypeInvalid
	}
}

func parse[T Numeric](text string) (T, *ParseError) {
	typ := TypeOf[T]()
	if text == "" {
		return 0, &ParseError{Input: text, Type: typ, Kind: ParseEmpty}
	}

	var (
		v   T
		err error
	)
	switch {
	case typ.Float():
		if !isDecimalFloat(text) {
			return 0, newParseError(text, typ, strconv.ErrSyntax)
		}
		var f float64
		f, err = strconv.ParseFloat(text, typ.Bits())
		v = T(f)
	case typ.Signed():
		var n int64
		n, err = strconv.ParseInt(text, 10, typ.Bits())
		v = T(n)
	default:
		var n uint64
		n, err = strconv.ParseUint(text, 10, typ.Bits())
		v = T(n)
	}
	if err != nil {
		return 0, newParseError(text, typ, err)
	}
	return v, nil
}

// isDecimalFloat rejects the hexadecimal mantissas and underscore digit
// separators strconv.ParseFloat accepts on top of decimal notation.
func isDecimalFloat(text string) bool {
	if strings.ContainsRune(text, '_') {
		return false
	}
	body := text
	if body != "" && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	return !(len(body) >= 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X'))
}

func newParseError(text string, typ Type, err error) *ParseError {
	kind := ParseInvalidDigit
	if errors.Is(err, strconv.ErrRange) {
		kind = ParseOverflow
	}
	return &ParseError{Input: text, Type: typ, Kind: kind, Err: err}
}

// Int8 parses text as an int8.
func Int8(text string) (int8, error) { return As[int8](text) }

// Int8Or parses text as an int8, returning def on failure.
func Int8Or(text string, def int8) int8 { return AsOr(text, def) }

// Int16 parses text as an int16.
func Int16(text string) (int16, error) { return As[int16](text) }

// Int16Or parses text as an int16, returning def on failure.
func Int16Or(text string, def int16) int16 { return AsOr(text, def) }

// Int32 parses text as an int32.
func Int32(text string) (int32, error) { return As[int32](text) }

// Int32Or parses text as an int32, returning def on failure.
func Int32Or(text string, def int32) int32 { return AsOr(text, def) }

// Int64 parses text as an int64.
func Int64(text string) (int64, error) { return As[int64](text) }

// Int64Or parses text as an int64, returning def on failure.
func Int64Or(text string, def int64) int64 { return AsOr(text, def) }

// Int parses text as a platform-width int (isize).
func Int(text string) (int, error) { return As[int](text) }

// IntOr parses text as a platform-width int (isize), returning def on failure.
func IntOr(text string, def int) int { return AsOr(text, def) }

// Uint8 parses text as a uint8.
func Uint8(text string) (uint8, error) { return As[uint8](text) }

// Uint8Or parses text as a uint8, returning def on failure.
func Uint8Or(text string, def uint8) uint8 { return AsOr(text, def) }

// Uint16 parses text as a uint16.
func Uint16(text string) (uint16, error) { return As[uint16](text) }

// Uint16Or parses text as a uint16, returning def on failure.
func Uint16Or(text string, def uint16) uint16 { return AsOr(text, def) }

// Uint32 parses text as a uint32.
func Uint32(text string) (uint32, error) { return As[uint32](text) }

// Uint32Or parses text as a uint32, returning def on failure.
func Uint32Or(text string, def uint32) uint32 { return AsOr(text, def) }

// Uint64 parses text as a uint64.
func Uint64(text string) (uint64, error) { return As[uint64](text) }

// Uint64Or parses text as a uint64, returning def on failure.
func Uint64Or(text string, def uint64) uint64 { return AsOr(text, def) }

// Uint parses text as a platform-width uint (usize).
func Uint(text string) (uint, error) { return As[uint](text) }

// UintOr parses text as a platform-width uint (usize), returning def on failure.
func UintOr(text string, def uint) uint { return AsOr(text, def) }

// Float32 parses text as a float32.
func Float32(text string) (float32, error) { return As[float32](text) }

// Float32Or parses text as a float32, returning def on failure.
func Float32Or(text string, def float32) float32 { return AsOr(text, def) }

// Float64 parses text as a float64.
func Float64(text string) (float64, error) { return As[float64](text) }

// Float64Or parses text as a float64, returning def on failure.
func Float64Or(text string, def float64) float64 { return AsOr(text, def) }
