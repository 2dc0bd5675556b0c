package number

import (
	"math/big"
	"strings"

	"github.com/fewensa/toolkit/errors"
)

var (
	one        = big.NewInt(1)
	minInt128  = new(big.Int).Neg(new(big.Int).Lsh(one, 127))
	maxInt128  = new(big.Int).Sub(new(big.Int).Lsh(one, 127), one)
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(one, 128), one)
)

// MinInt128 returns the smallest value representable as i128.
func MinInt128() *big.Int { return new(big.Int).Set(minInt128) }

// MaxInt128 returns the largest value representable as i128.
func MaxInt128() *big.Int { return new(big.Int).Set(maxInt128) }

// MaxUint128 returns the largest value representable as u128.
func MaxUint128() *big.Int { return new(big.Int).Set(maxUint128) }

// Int128 parses text as a signed 128-bit integer.
func Int128(text string) (*big.Int, error) {
	return asWide(text, TypeI128)
}

// Int128Or parses text as a signed 128-bit integer, returning def on failure.
func Int128Or(text string, def *big.Int) *big.Int {
	return asWideOr(text, TypeI128, def)
}

// Uint128 parses text as an unsigned 128-bit integer.
func Uint128(text string) (*big.Int, error) {
	return asWide(text, TypeU128)
}

// Uint128Or parses text as an unsigned 128-bit integer, returning def on failure.
func Uint128Or(text string, def *big.Int) *big.Int {
	return asWideOr(text, TypeU128, def)
}

func asWide(text string, typ Type) (*big.Int, error) {
	n, perr := parseWide(text, typ)
	if perr != nil {
		return nil, errors.Wrap(perr, errors.CodeInvalidInput, "invalid numeric text")
	}
	return n, nil
}

func asWideOr(text string, typ Type, def *big.Int) *big.Int {
	if strings.TrimSpace(text) == "" {
		return def
	}
	n, perr := parseWide(text, typ)
	if perr != nil {
		return def
	}
	return n
}

// parseWide mirrors strconv.ParseInt/ParseUint for the 128-bit widths:
// signed text may carry one leading '+' or '-'; unsigned text is digits only.
func parseWide(text string, typ Type) (*big.Int, *ParseError) {
	if text == "" {
		return nil, &ParseError{Input: text, Type: typ, Kind: ParseEmpty}
	}

	digits := text
	if digits[0] == '+' || digits[0] == '-' {
		if typ.Unsigned() {
			return nil, &ParseError{Input: text, Type: typ, Kind: ParseInvalidDigit}
		}
		digits = digits[1:]
	}
	if digits == "" || !IsUDigit(digits) {
		return nil, &ParseError{Input: text, Type: typ, Kind: ParseInvalidDigit}
	}

	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, &ParseError{Input: text, Type: typ, Kind: ParseInvalidDigit}
	}

	lo, hi := minInt128, maxInt128
	if typ.Unsigned() {
		lo, hi = new(big.Int), maxUint128
	}
	if n.Cmp(lo) < 0 || n.Cmp(hi) > 0 {
		return nil, &ParseError{Input: text, Type: typ, Kind: ParseOverflow}
	}
	return n, nil
}
