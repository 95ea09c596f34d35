//go:build !android

package floatops

import "github.com/chewxy/math32"

func (Direct32) Log2(x float32) float32 { return math32.Log2(x) }
