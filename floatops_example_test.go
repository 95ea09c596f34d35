// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatops_test

import (
	"fmt"

	"github.com/avdva/floatops"
)

func ExampleDirect64_IntegerDecode() {
	d := floatops.Direct64{}.IntegerDecode(-2)
	fmt.Println(d.Mantissa, d.Exponent, d.Sign)
	fmt.Println(d.Float64())
	// Output:
	// 4503599627370496 -51 -1
	// -2
}

func ExampleDelegate64_Classify() {
	var ops floatops.Delegate64
	fmt.Println(ops.Classify(1.5))
	fmt.Println(ops.Classify(ops.Inf()))
	fmt.Println(ops.Classify(ops.NegZero()))
	fmt.Println(ops.Classify(ops.NaN()))
	// Output:
	// Normal
	// Infinite
	// Zero
	// NaN
}

func ExampleDirect32_Classify() {
	var ops floatops.Direct32
	fmt.Println(ops.Classify(0x1p-127))
	fmt.Println(ops.IsSignNegative(ops.NegZero()))
	// Output:
	// Subnormal
	// true
}
