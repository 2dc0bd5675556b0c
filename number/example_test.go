package number_test

import (
	"fmt"

	"github.com/fewensa/toolkit/errors"
	"github.com/fewensa/toolkit/number"
)

func ExampleIsNumber() {
	for _, s := range []string{"0", "-1u32", "2usize", "3.5f32", "0.2.1f32"} {
		fmt.Println(s, number.IsNumber(s))
	}
	// Output:
	// 0 true
	// -1u32 false
	// 2usize true
	// 3.5f32 true
	// 0.2.1f32 false
}

func ExampleIsDigit() {
	fmt.Println(number.IsDigit("2", false))
	fmt.Println(number.IsDigit("-2", false))
	fmt.Println(number.IsIDigit("-2"))
	// Output:
	// true
	// false
	// true
}

func ExampleInt() {
	n, err := number.Int("1")
	fmt.Println(n, err)

	_, err = number.Int("a")
	var perr *number.ParseError
	if errors.As(err, &perr) {
		fmt.Println(perr.Kind)
	}
	// Output:
	// 1 <nil>
	// invalid digit
}

func ExampleIntOr() {
	fmt.Println(number.IntOr("a", -1))
	fmt.Println(number.Float64Or("0.5", 0.5))
	// Output:
	// -1
	// 0.5
}

func ExampleInt128() {
	n, _ := number.Int128("52")
	fmt.Println(n)
	// Output: 52
}
