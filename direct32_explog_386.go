//go:build 386

package floatops

import "math"

// On 386 the float32 kernels run through the x87 stack and suffer double
// rounding in the last bit. Compute in float64 and narrow once instead.

func (Direct32) Exp(x float32) float32   { return float32(math.Exp(float64(x))) }
func (Direct32) Log(x float32) float32   { return float32(math.Log(float64(x))) }
func (Direct32) Log10(x float32) float32 { return float32(math.Log10(float64(x))) }
