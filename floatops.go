// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floatops gives the builtin float types a uniform, introspectable
// operation catalog: IEEE-754 classification, sign and bit-level
// decomposition, and the usual exponential/logarithmic/power/root functions.
//
// The catalog is the Ops interface; it has two interchangeable
// implementations per width. Delegate32/Delegate64 forward to the math
// facilities that already exist for the type. Direct32/Direct64 work from
// first principles: bit masks for classification, sign and truncation,
// arithmetic identities for the trivial operations, and per-precision math
// entry points for the transcendental ones, with build-tag overrides on
// platforms whose default float32 kernels are unreliable.
//
// Every backend is an empty struct: all operations are pure functions of
// their arguments and safe to call concurrently. No operation returns an
// error; invalid inputs produce the IEEE sentinels (NaN, ±Inf) exactly as
// the underlying routines define them.
package floatops

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/avdva/floatops/internal/ieee"
)

// Class is the IEEE-754 class of a value, as returned by Classify.
// Exactly one class applies to every bit pattern.
type Class uint8

const (
	ClassNaN Class = iota
	ClassInfinite
	ClassZero
	ClassSubnormal
	ClassNormal
)

var classNames = [...]string{"NaN", "Infinite", "Zero", "Subnormal", "Normal"}

// String returns the class name.
func (c Class) String() string {
	if int(c) >= len(classNames) {
		return "Unknown"
	}
	return classNames[c]
}

// Decomposition is the exact power-of-two breakdown of a float:
// Sign * Mantissa * 2^Exponent reproduces the original value bit for bit.
// For normal values the mantissa carries the implicit leading bit, for
// zeros and subnormals it does not.
// The triple is the canonical form for reproducible hashing and
// serialization of float values; see MarshalBinary.
type Decomposition struct {
	Mantissa uint64 `json:"m" cbor:"m"`
	Exponent int16  `json:"e" cbor:"e"`
	Sign     int8   `json:"s" cbor:"s"`
}

// Float64 reconstructs the decomposed value. The reconstruction is exact:
// mantissas never exceed 53 bits, so no rounding happens on the way back.
func (d Decomposition) Float64() float64 {
	f := math.Ldexp(float64(d.Mantissa), int(d.Exponent))
	if d.Sign < 0 {
		f = -f
	}
	return f
}

// Float32 reconstructs the decomposed value, narrowed to float32.
// Exact whenever the decomposition came from a float32.
func (d Decomposition) Float32() float32 {
	return float32(d.Float64())
}

// Ops is the full operation catalog for a float width.
// Implementations are stateless; a zero value is ready to use.
type Ops[T constraints.Float] interface {
	// Edge-value accessors.
	NaN() T
	Inf() T
	NegInf() T
	NegZero() T
	Epsilon() T

	// Classification and sign. The boolean predicates agree with
	// Classify for every bit pattern: IsNaN matches ClassNaN, IsInf
	// matches ClassInfinite, IsNormal matches ClassNormal, and
	// IsFinite holds for everything but ClassNaN and ClassInfinite.
	// The sign predicates read the sign bit, so they distinguish
	// -0.0 from +0.0 even though the two compare equal.
	Classify(x T) Class
	IsNaN(x T) bool
	IsInf(x T) bool
	IsFinite(x T) bool
	IsNormal(x T) bool
	IsSignPositive(x T) bool
	IsSignNegative(x T) bool

	// Trivial derived operations. Fract keeps the sign of x.
	Trunc(x T) T
	Fract(x T) T
	Recip(x T) T

	// Transcendental operations. NaN inputs propagate; out-of-domain
	// inputs follow the IEEE conventions of the resolved routine
	// (Log(0) == -Inf, Log(-1) is NaN, and so on).
	Powi(x T, n int) T
	Pow(x, y T) T
	Exp(x T) T
	Exp2(x T) T
	Log(x T) T
	LogBase(x, base T) T
	Log2(x T) T
	Log10(x T) T
	Cbrt(x T) T
	Hypot(x, y T) T
	Expm1(x T) T
	Log1p(x T) T

	// IntegerDecode returns the exact power-of-two decomposition of x.
	IntegerDecode(x T) Decomposition
}

// classify maps raw exponent/mantissa fields to a Class.
// Two field comparisons, no branching on magnitude.
func classify(l ieee.Layout, bits uint64) Class {
	_, exp, mant := l.Split(bits)
	switch {
	case exp == l.MaxExp():
		if mant != 0 {
			return ClassNaN
		}
		return ClassInfinite
	case exp == 0:
		if mant == 0 {
			return ClassZero
		}
		return ClassSubnormal
	default:
		return ClassNormal
	}
}

// signNegative reports the sign of a non-NaN value.
// -0.0 == 0.0 under IEEE comparison, but the reciprocal of a signed zero
// is an infinity of the same sign, which compares fine.
func signNegative[T constraints.Float](x T) bool {
	if x == 0 {
		return 1/x < 0
	}
	return x < 0
}

// powi raises x to an integer power by binary exponentiation.
// Negative exponents go through the reciprocal first; the unsigned
// negation keeps n == MinInt from overflowing.
func powi[T constraints.Float](x T, n int) T {
	m := uint64(n)
	if n < 0 {
		x = 1 / x
		m = -m
	}
	r := T(1)
	for ; m > 0; m >>= 1 {
		if m&1 == 1 {
			r *= x
		}
		x *= x
	}
	return r
}
