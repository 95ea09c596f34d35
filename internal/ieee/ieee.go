// Package ieee knows the bit layout of the IEEE-754 binary interchange
// formats. It works on raw patterns only; converting a float to its pattern
// and back is the caller's job (math.Float64bits and friends are the only
// defined way to do that).
package ieee

// Layout describes a binary floating-point format.
// The sign bit sits above the exponent field, which sits above the
// significand field.
type Layout struct {
	MantBits uint  // significand field width, without the implicit bit
	ExpBits  uint  // exponent field width
	Bias     int32 // exponent bias
}

var (
	// Binary32 is the single-precision (float32) layout.
	Binary32 = Layout{MantBits: 23, ExpBits: 8, Bias: 127}
	// Binary64 is the double-precision (float64) layout.
	Binary64 = Layout{MantBits: 52, ExpBits: 11, Bias: 1023}
)

func (l Layout) mantMask() uint64 {
	return 1<<l.MantBits - 1
}

func (l Layout) signMask() uint64 {
	return 1 << (l.MantBits + l.ExpBits)
}

// MaxExp returns the all-ones exponent field value, which marks
// infinities and NaNs.
func (l Layout) MaxExp() uint64 {
	return 1<<l.ExpBits - 1
}

// Split breaks a raw pattern into its three fields.
// For Binary32 the pattern occupies the low 32 bits.
func (l Layout) Split(bits uint64) (neg bool, exp, mant uint64) {
	return bits&l.signMask() != 0, bits >> l.MantBits & l.MaxExp(), bits & l.mantMask()
}

// SignBit reports whether the sign bit is set.
func (l Layout) SignBit(bits uint64) bool {
	return bits&l.signMask() != 0
}

// Decode splits a pattern into (mantissa, exponent, sign) such that
// sign * mantissa * 2^exponent equals the original value.
// Normal values get the implicit leading bit ORed into the mantissa;
// zeros and subnormals have no implicit bit and the raw mantissa is
// shifted left once instead, so the same rebias applies to both kinds.
func (l Layout) Decode(bits uint64) (mant uint64, exp int16, sign int8) {
	sign = 1
	if l.SignBit(bits) {
		sign = -1
	}
	rawExp := int16(bits >> l.MantBits & l.MaxExp())
	mant = bits & l.mantMask()
	if rawExp == 0 {
		mant <<= 1
	} else {
		mant |= 1 << l.MantBits
	}
	return mant, rawExp - int16(l.Bias) - int16(l.MantBits), sign
}

// TruncBits rounds the pattern toward zero by clearing fraction bits.
// Infinities and NaNs come back unchanged, values below one in magnitude
// collapse to a zero of the same sign.
func (l Layout) TruncBits(bits uint64) uint64 {
	exp := int32(bits>>l.MantBits&l.MaxExp()) - l.Bias
	switch {
	case exp < 0:
		return bits & l.signMask()
	case exp >= int32(l.MantBits):
		return bits
	default:
		return bits &^ (l.mantMask() >> uint(exp))
	}
}
