package floatops

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/avdva/floatops/internal/ieee"
)

const (
	minNormal32 = 0x1p-126
	minNormal64 = 0x1p-1022
)

// Delegate64 implements Ops[float64] by forwarding to the standard math
// package, adding only what it does not provide (bit-exact decomposition).
type Delegate64 struct{}

func (Delegate64) NaN() float64 { return math.NaN() }
func (Delegate64) Inf() float64 { return math.Inf(1) }
func (Delegate64) NegInf() float64 { return math.Inf(-1) }
func (Delegate64) NegZero() float64 { return math.Copysign(0, -1) }
func (Delegate64) Epsilon() float64 { return 0x1p-52 }

func (Delegate64) Classify(x float64) Class {
	switch {
	case math.IsNaN(x):
		return ClassNaN
	case math.IsInf(x, 0):
		return ClassInfinite
	case x == 0:
		return ClassZero
	case math.Abs(x) < minNormal64:
		return ClassSubnormal
	default:
		return ClassNormal
	}
}

func (Delegate64) IsNaN(x float64) bool { return math.IsNaN(x) }
func (Delegate64) IsInf(x float64) bool { return math.IsInf(x, 0) }
func (Delegate64) IsFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func (d Delegate64) IsNormal(x float64) bool { return d.Classify(x) == ClassNormal }

func (Delegate64) IsSignPositive(x float64) bool { return !math.Signbit(x) }
func (Delegate64) IsSignNegative(x float64) bool { return math.Signbit(x) }

func (Delegate64) Trunc(x float64) float64 { return math.Trunc(x) }

func (Delegate64) Fract(x float64) float64 {
	_, frac := math.Modf(x)
	return frac
}

func (Delegate64) Recip(x float64) float64 { return 1 / x }

func (Delegate64) Powi(x float64, n int) float64 { return math.Pow(x, float64(n)) }
func (Delegate64) Pow(x, y float64) float64 { return math.Pow(x, y) }
func (Delegate64) Exp(x float64) float64 { return math.Exp(x) }
func (Delegate64) Exp2(x float64) float64 { return math.Exp2(x) }
func (Delegate64) Log(x float64) float64 { return math.Log(x) }
func (Delegate64) LogBase(x, base float64) float64 { return math.Log(x) / math.Log(base) }
func (Delegate64) Log2(x float64) float64 { return math.Log2(x) }
func (Delegate64) Log10(x float64) float64 { return math.Log10(x) }
func (Delegate64) Cbrt(x float64) float64 { return math.Cbrt(x) }
func (Delegate64) Hypot(x, y float64) float64 { return math.Hypot(x, y) }
func (Delegate64) Expm1(x float64) float64 { return math.Expm1(x) }
func (Delegate64) Log1p(x float64) float64 { return math.Log1p(x) }

func (Delegate64) IntegerDecode(x float64) Decomposition {
	m, e, s := ieee.Binary64.Decode(math.Float64bits(x))
	return Decomposition{Mantissa: m, Exponent: e, Sign: s}
}

// Delegate32 implements Ops[float32] by forwarding to math32, the
// single-precision counterpart of the math package.
// IntegerDecode is the one exception: it widens to float64 and decodes the
// binary64 layout. The widening conversion is exact for every float32, so
// the round-trip law still holds; the raw triple just differs from a
// native binary32 decode (Direct32 does that one).
type Delegate32 struct{}

func (Delegate32) NaN() float32 { return math32.NaN() }
func (Delegate32) Inf() float32 { return math32.Inf(1) }
func (Delegate32) NegInf() float32 { return math32.Inf(-1) }
func (Delegate32) NegZero() float32 { return math32.Copysign(0, -1) }
func (Delegate32) Epsilon() float32 { return 0x1p-23 }

func (Delegate32) Classify(x float32) Class {
	switch {
	case math32.IsNaN(x):
		return ClassNaN
	case math32.IsInf(x, 0):
		return ClassInfinite
	case x == 0:
		return ClassZero
	case math32.Abs(x) < minNormal32:
		return ClassSubnormal
	default:
		return ClassNormal
	}
}

func (Delegate32) IsNaN(x float32) bool { return math32.IsNaN(x) }
func (Delegate32) IsInf(x float32) bool { return math32.IsInf(x, 0) }
func (Delegate32) IsFinite(x float32) bool { return !math32.IsNaN(x) && !math32.IsInf(x, 0) }

func (d Delegate32) IsNormal(x float32) bool { return d.Classify(x) == ClassNormal }

func (Delegate32) IsSignPositive(x float32) bool { return !math32.Signbit(x) }
func (Delegate32) IsSignNegative(x float32) bool { return math32.Signbit(x) }

func (Delegate32) Trunc(x float32) float32 { return math32.Trunc(x) }

func (Delegate32) Fract(x float32) float32 {
	_, frac := math32.Modf(x)
	return frac
}

func (Delegate32) Recip(x float32) float32 { return 1 / x }

func (Delegate32) Powi(x float32, n int) float32 { return math32.Pow(x, float32(n)) }
func (Delegate32) Pow(x, y float32) float32 { return math32.Pow(x, y) }
func (Delegate32) Exp(x float32) float32 { return math32.Exp(x) }
func (Delegate32) Exp2(x float32) float32 { return math32.Exp2(x) }
func (Delegate32) Log(x float32) float32 { return math32.Log(x) }
func (Delegate32) LogBase(x, base float32) float32 { return math32.Log(x) / math32.Log(base) }
func (Delegate32) Log2(x float32) float32 { return math32.Log2(x) }
func (Delegate32) Log10(x float32) float32 { return math32.Log10(x) }
func (Delegate32) Cbrt(x float32) float32 { return math32.Cbrt(x) }
func (Delegate32) Hypot(x, y float32) float32 { return math32.Hypot(x, y) }
func (Delegate32) Expm1(x float32) float32 { return math32.Expm1(x) }
func (Delegate32) Log1p(x float32) float32 { return math32.Log1p(x) }

func (Delegate32) IntegerDecode(x float32) Decomposition {
	m, e, s := ieee.Binary64.Decode(math.Float64bits(float64(x)))
	return Decomposition{Mantissa: m, Exponent: e, Sign: s}
}
