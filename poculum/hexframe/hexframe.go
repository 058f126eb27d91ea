// Package hexframe transcodes Poculum values to and from hex-string form,
// for transport through text-only channels (log lines, JSON fields, URLs).
// This is a caller concern, not part of the core wire format
// (SPEC_FULL.md §6.3) — hexframe is a thin collaborator over
// poculum.Encode/poculum.Decode, grounded on the teacher's stream package
// hex helpers (stream/hash.go's HashToHex/HexToHash), generalized from a
// fixed 32-byte hash to an arbitrary-length Poculum encoding.
package hexframe

import (
	"encoding/hex"
	"fmt"

	"github.com/poculum/poculum/poculum"
)

// Encode encodes v to Poculum bytes, then to a lowercase hex string.
func Encode(v poculum.Value) (string, error) {
	b, err := poculum.Encode(v)
	if err != nil {
		return "", fmt.Errorf("hexframe: encode: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Decode parses a hex string produced by Encode (or any hex-encoded
// Poculum byte sequence) back into a Value.
func Decode(s string) (poculum.Value, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return poculum.Value{}, fmt.Errorf("hexframe: invalid hex: %w", err)
	}
	v, err := poculum.Decode(b)
	if err != nil {
		return poculum.Value{}, fmt.Errorf("hexframe: decode: %w", err)
	}
	return v, nil
}
