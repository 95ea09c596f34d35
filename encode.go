package floatops

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// The decomposition triple is what the ecosystem hashes and ships, so its
// binary form has to be byte-reproducible: core-deterministic CBOR, one
// encoding per value.
var decompEncMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// decomposition mirrors Decomposition without its BinaryMarshaler methods,
// so cbor encodes the fields instead of recursing into MarshalBinary.
type decomposition Decomposition

// MarshalBinary encodes the decomposition as deterministic CBOR.
func (d Decomposition) MarshalBinary() ([]byte, error) {
	return decompEncMode.Marshal(decomposition(d))
}

// UnmarshalBinary decodes a decomposition produced by MarshalBinary.
func (d *Decomposition) UnmarshalBinary(data []byte) error {
	var dec decomposition
	if err := cbor.Unmarshal(data, &dec); err != nil {
		return fmt.Errorf("decoding failed: %w", err)
	}
	if dec.Sign != 1 && dec.Sign != -1 {
		return fmt.Errorf("bad sign %d", dec.Sign)
	}
	*d = Decomposition(dec)
	return nil
}
