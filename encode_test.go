// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatops

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompositionMarshalBinary(t *testing.T) {
	a, r := assert.New(t), require.New(t)
	values := []float64{0, 1, -2, 0.5, math.Pi, math.SmallestNonzeroFloat64, math.MaxFloat64}
	for i, x := range values {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d := Direct64{}.IntegerDecode(x)
			data, err := d.MarshalBinary()
			r.NoError(err)

			// deterministic mode: same triple, same bytes
			again, err := d.MarshalBinary()
			r.NoError(err)
			a.Equal(data, again)

			var dec Decomposition
			r.NoError(dec.UnmarshalBinary(data))
			a.Equal(d, dec)
			a.Equal(math.Float64bits(x), math.Float64bits(dec.Float64()))
		})
	}
}

func TestDecompositionUnmarshalBinaryBadSign(t *testing.T) {
	a, r := assert.New(t), require.New(t)
	data, err := Decomposition{Mantissa: 1, Exponent: 0, Sign: 0}.MarshalBinary()
	r.NoError(err)
	var dec Decomposition
	a.Error(dec.UnmarshalBinary(data))
	a.Error(dec.UnmarshalBinary([]byte{0xff}))
}

func TestDecompositionJSON(t *testing.T) {
	a, r := assert.New(t), require.New(t)
	d := Delegate64{}.IntegerDecode(-2)
	data, err := json.Marshal(d)
	r.NoError(err)
	a.Equal(`{"m":4503599627370496,"e":-51,"s":-1}`, string(data))

	var dec Decomposition
	r.NoError(json.Unmarshal(data, &dec))
	a.Equal(d, dec)
}
