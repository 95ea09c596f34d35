// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatops

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/avdva/floatops/internal/ieee"
)

// Bit patterns for the edge values, so the direct backends produce them
// without consulting any math facility.
const (
	nan64Bits     = 0x7FF8000000000000
	inf64Bits     = 0x7FF0000000000000
	negInf64Bits  = 0xFFF0000000000000
	negZero64Bits = 0x8000000000000000

	nan32Bits     = 0x7FC00000
	inf32Bits     = 0x7F800000
	negInf32Bits  = 0xFF800000
	negZero32Bits = 0x80000000
)

// Direct64 implements Ops[float64] from first principles: bit masks for
// classification, sign, truncation and decomposition, arithmetic identities
// for the trivial operations, and the double-precision math entry points
// for the transcendental ones.
type Direct64 struct{}

func (Direct64) NaN() float64 { return math.Float64frombits(nan64Bits) }
func (Direct64) Inf() float64 { return math.Float64frombits(inf64Bits) }
func (Direct64) NegInf() float64 { return math.Float64frombits(negInf64Bits) }
func (Direct64) NegZero() float64 { return math.Float64frombits(negZero64Bits) }
func (Direct64) Epsilon() float64 { return 0x1p-52 }

func (Direct64) Classify(x float64) Class {
	return classify(ieee.Binary64, math.Float64bits(x))
}

func (d Direct64) IsNaN(x float64) bool { return d.Classify(x) == ClassNaN }
func (d Direct64) IsInf(x float64) bool { return d.Classify(x) == ClassInfinite }
func (d Direct64) IsNormal(x float64) bool { return d.Classify(x) == ClassNormal }

func (d Direct64) IsFinite(x float64) bool {
	c := d.Classify(x)
	return c != ClassNaN && c != ClassInfinite
}

func (d Direct64) IsSignPositive(x float64) bool { return !d.IsSignNegative(x) }

func (d Direct64) IsSignNegative(x float64) bool {
	if x != x { // the reciprocal trick says nothing about NaN, read the bit
		return ieee.Binary64.SignBit(math.Float64bits(x))
	}
	return signNegative(x)
}

func (Direct64) Trunc(x float64) float64 {
	return math.Float64frombits(ieee.Binary64.TruncBits(math.Float64bits(x)))
}

func (d Direct64) Fract(x float64) float64 { return x - d.Trunc(x) }
func (Direct64) Recip(x float64) float64 { return 1 / x }

func (Direct64) Powi(x float64, n int) float64 { return powi(x, n) }

func (Direct64) Pow(x, y float64) float64 { return math.Pow(x, y) }
func (Direct64) Exp(x float64) float64 { return math.Exp(x) }
func (Direct64) Exp2(x float64) float64 { return math.Exp2(x) }
func (Direct64) Log(x float64) float64 { return math.Log(x) }
func (Direct64) LogBase(x, base float64) float64 { return math.Log(x) / math.Log(base) }
func (Direct64) Log2(x float64) float64 { return math.Log2(x) }
func (Direct64) Log10(x float64) float64 { return math.Log10(x) }
func (Direct64) Cbrt(x float64) float64 { return math.Cbrt(x) }
func (Direct64) Hypot(x, y float64) float64 { return math.Hypot(x, y) }
func (Direct64) Expm1(x float64) float64 { return math.Expm1(x) }
func (Direct64) Log1p(x float64) float64 { return math.Log1p(x) }

func (Direct64) IntegerDecode(x float64) Decomposition {
	m, e, s := ieee.Binary64.Decode(math.Float64bits(x))
	return Decomposition{Mantissa: m, Exponent: e, Sign: s}
}

// Direct32 is Direct64 for float32: the same bit-level algorithms run on
// the binary32 layout, and the transcendental operations resolve to the
// single-precision entry points in math32. IntegerDecode is a native
// binary32 decode, not the widening one Delegate32 keeps.
//
// Exp, Log, Log10 and Log2 live in build-tagged files: platforms whose
// float32 kernels are unreliable get a substitute resolved at build time.
type Direct32 struct{}

func (Direct32) NaN() float32 { return math.Float32frombits(nan32Bits) }
func (Direct32) Inf() float32 { return math.Float32frombits(inf32Bits) }
func (Direct32) NegInf() float32 { return math.Float32frombits(negInf32Bits) }
func (Direct32) NegZero() float32 { return math.Float32frombits(negZero32Bits) }
func (Direct32) Epsilon() float32 { return 0x1p-23 }

func (Direct32) Classify(x float32) Class {
	return classify(ieee.Binary32, uint64(math.Float32bits(x)))
}

func (d Direct32) IsNaN(x float32) bool { return d.Classify(x) == ClassNaN }
func (d Direct32) IsInf(x float32) bool { return d.Classify(x) == ClassInfinite }
func (d Direct32) IsNormal(x float32) bool { return d.Classify(x) == ClassNormal }

func (d Direct32) IsFinite(x float32) bool {
	c := d.Classify(x)
	return c != ClassNaN && c != ClassInfinite
}

func (d Direct32) IsSignPositive(x float32) bool { return !d.IsSignNegative(x) }

func (d Direct32) IsSignNegative(x float32) bool {
	if x != x {
		return ieee.Binary32.SignBit(uint64(math.Float32bits(x)))
	}
	return signNegative(x)
}

func (Direct32) Trunc(x float32) float32 {
	return math.Float32frombits(uint32(ieee.Binary32.TruncBits(uint64(math.Float32bits(x)))))
}

func (d Direct32) Fract(x float32) float32 { return x - d.Trunc(x) }
func (Direct32) Recip(x float32) float32 { return 1 / x }

func (Direct32) Powi(x float32, n int) float32 { return powi(x, n) }

func (Direct32) Pow(x, y float32) float32 { return math32.Pow(x, y) }
func (Direct32) Exp2(x float32) float32 { return math32.Exp2(x) }
func (Direct32) Cbrt(x float32) float32 { return math32.Cbrt(x) }
func (Direct32) Hypot(x, y float32) float32 { return math32.Hypot(x, y) }
func (Direct32) Expm1(x float32) float32 { return math32.Expm1(x) }
func (Direct32) Log1p(x float32) float32 { return math32.Log1p(x) }

func (d Direct32) LogBase(x, base float32) float32 { return d.Log(x) / d.Log(base) }

func (Direct32) IntegerDecode(x float32) Decomposition {
	m, e, s := ieee.Binary32.Decode(uint64(math.Float32bits(x)))
	return Decomposition{Mantissa: m, Exponent: e, Sign: s}
}
