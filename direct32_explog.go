//go:build !386

package floatops

import "github.com/chewxy/math32"

func (Direct32) Exp(x float32) float32   { return math32.Exp(x) }
func (Direct32) Log(x float32) float32   { return math32.Log(x) }
func (Direct32) Log10(x float32) float32 { return math32.Log10(x) }
