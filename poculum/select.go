package poculum

// ============================================================
// Size-class selector (SPEC_FULL.md §4.2)
// ============================================================
//
// Deterministic rules applied by the encoder to pick the narrowest legal
// tag for a value's magnitude or length. Encode is therefore a function,
// not a relation, of the value: two encoders given the same input produce
// identical bytes.

// selectUIntTag picks the narrowest unsigned integer tag for v. It has no
// out-of-range case: uint64 already bounds the format's ceiling, so every
// v fits UInt64 at worst.
func selectUIntTag(v uint64) byte {
	switch {
	case v <= maxUint8Range:
		return tagUInt8
	case v <= maxUint16Range:
		return tagUInt16
	case v <= maxUint32Range:
		return tagUInt32
	default:
		return tagUInt64
	}
}

// selectIntTag picks the narrowest signed integer tag for a negative v.
func selectIntTag(v int64) byte {
	switch {
	case v >= minInt8Range:
		return tagInt8
	case v >= minInt16Range:
		return tagInt16
	case v >= minInt32Range:
		return tagInt32
	default:
		return tagInt64
	}
}

// selectStringTag picks the narrowest string tag for a UTF-8 byte length
// n, or reports ErrOutOfRange if n exceeds what String32 can carry.
func selectStringTag(n int) (tag byte, ok bool) {
	switch {
	case n <= maxFixLen:
		return tagFixStringLow, true
	case n <= maxUint16Range:
		return tagString16, true
	case uint64(n) <= maxUint32Range:
		return tagString32, true
	default:
		return 0, false
	}
}

// selectBytesTag picks the narrowest bytes tag for a length n.
func selectBytesTag(n int) (tag byte, ok bool) {
	switch {
	case n <= maxBytes8Range:
		return tagBytes8, true
	case n <= maxBytes16Range:
		return tagBytes16, true
	default:
		return 0, false
	}
}
