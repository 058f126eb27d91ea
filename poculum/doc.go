// Package poculum implements the Poculum binary serialization format: a
// self-describing, MessagePack/CBOR-family codec for a closed set of
// dynamically-typed values.
//
// # Data Model
//
// Scalars: null, bool (encoded as UInt8), uint, int, float64
// Containers: string, bytes, list, map (ordered string-keyed entries)
//
// # Wire Format
//
// Every encoding is a single tag byte, an optional big-endian length/width
// field, and a payload. There is no framing, magic number, version prefix,
// or checksum — a Poculum encoding is exactly one root value.
//
// # Canonicality
//
// Encode always picks the narrowest size class that can hold a value's
// magnitude or length. Decode accepts any a priori valid size class for a
// tag, so round-tripping a non-canonical encoding through Encode again
// yields the canonical form.
package poculum
