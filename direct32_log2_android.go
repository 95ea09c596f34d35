//go:build android

package floatops

import "github.com/chewxy/math32"

// invLn2 is 1/ln(2), so Log2 can ride on Log where the native log2f
// is not trustworthy.
const invLn2 = 1.44269504088896340736

func (Direct32) Log2(x float32) float32 { return math32.Log(x) * invLn2 }
