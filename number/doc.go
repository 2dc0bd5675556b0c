// Package number classifies and converts numeric text.
//
// # Classification
//
// IsNumber reports whether text is a numeric literal with an optional
// fixed-width type suffix:
//
//	literal := '-'? digit+ ('.' digit+)? suffix?
//	suffix  := i8 | i16 | i32 | i64 | i128 | isize
//	         | u8 | u16 | u32 | u64 | u128 | usize
//	         | f32 | f64
//
// Integer suffixes reject a fractional part and unsigned suffixes also reject
// a sign:
//
//	number.IsNumber("2usize")   // true
//	number.IsNumber("3.5f32")   // true
//	number.IsNumber("-1u32")    // false
//	number.IsNumber("0.2.1f32") // false
//
// IsDigit, IsUDigit and IsIDigit are stricter: only decimal digits, with an
// optional leading minus sign for IsIDigit.
//
// # Conversion
//
// Every width has a strict converter that returns an error and a defaulting
// converter that never fails:
//
//	n, err := number.Int32("42")   // 42, nil
//	n := number.Int32Or("", -1)    // -1, empty input
//	n := number.Uint8Or("300", 0)  // 0, overflow
//
// The generic As and AsOr back every native width. The 128-bit widths use
// math/big and are parsed against their own bounds.
//
// Strict converter errors carry errors.CodeInvalidInput and wrap a
// *ParseError whose Kind is ParseEmpty, ParseInvalidDigit or ParseOverflow.
//
// All functions are pure and safe for concurrent use.
package number
