package poculum

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// DefaultMaxDepth is the recursion-depth guard Decode applies unless
// overridden via DecodeOptions (SPEC_FULL.md §5). It defends against
// stack exhaustion on adversarial or corrupted input; it is not part of
// the wire contract.
const DefaultMaxDepth = 1024

// DecodeOptions configures Decode, following the teacher's
// Default*Options/*WithOptions pairing (DefaultEmitOptions/EmitWithOptions).
type DecodeOptions struct {
	// MaxDepth bounds composite-value nesting depth. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// DefaultDecodeOptions returns Decode's default configuration.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{MaxDepth: DefaultMaxDepth}
}

// Decode parses b back into the Value it encodes (SPEC_FULL.md §4.4). It
// is strict: every byte of b must belong to the single root value, or
// Decode fails with ErrTrailingBytes.
func Decode(b []byte) (Value, error) {
	return DecodeWithOptions(b, DefaultDecodeOptions())
}

// DecodeWithOptions parses b with a custom MaxDepth.
func DecodeWithOptions(b []byte, opts DecodeOptions) (Value, error) {
	maxDepth := opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}

	d := &decoder{buf: b, maxDepth: maxDepth}
	v, pos, err := d.decodeValue(0, 0)
	if err != nil {
		return Value{}, err
	}
	if pos != len(b) {
		return Value{}, decodeErr(ErrTrailingBytes, pos, b[pos])
	}
	return v, nil
}

type decoder struct {
	buf      []byte
	maxDepth int
}

// decodeValue reads one value starting at pos, returning the value and
// the cursor position immediately after it. depth counts composite
// nesting for the stack-exhaustion guard (SPEC_FULL.md §5).
func (d *decoder) decodeValue(pos int, depth int) (Value, int, error) {
	if depth > d.maxDepth {
		return Value{}, pos, decodeErr(ErrDepthExceeded, pos, 0)
	}
	if pos >= len(d.buf) {
		return Value{}, pos, decodeErr(ErrTruncated, pos, 0)
	}

	tag := d.buf[pos]
	pos++

	switch {
	case tag == tagNull:
		return Null(), pos, nil

	case tag == tagUInt8:
		b, next, err := d.readN(pos, 1, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return UInt(uint64(b[0])), next, nil

	case tag == tagUInt16:
		b, next, err := d.readN(pos, 2, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return UInt(uint64(binary.BigEndian.Uint16(b))), next, nil

	case tag == tagUInt32:
		b, next, err := d.readN(pos, 4, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return UInt(uint64(binary.BigEndian.Uint32(b))), next, nil

	case tag == tagUInt64:
		b, next, err := d.readN(pos, 8, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return UInt(binary.BigEndian.Uint64(b)), next, nil

	case tag == tagInt8:
		b, next, err := d.readN(pos, 1, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return Int(int64(int8(b[0]))), next, nil

	case tag == tagInt16:
		b, next, err := d.readN(pos, 2, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return Int(int64(int16(binary.BigEndian.Uint16(b)))), next, nil

	case tag == tagInt32:
		b, next, err := d.readN(pos, 4, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return Int(int64(int32(binary.BigEndian.Uint32(b)))), next, nil

	case tag == tagInt64:
		b, next, err := d.readN(pos, 8, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return Int(int64(binary.BigEndian.Uint64(b))), next, nil

	case tag == tagFloat64:
		b, next, err := d.readN(pos, 8, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return Float(math.Float64frombits(binary.BigEndian.Uint64(b))), next, nil

	case tag >= tagFixStringLow && tag <= tagFixStringHigh:
		return d.decodeString(pos, int(tag&tagFixStringMask), tag)

	case tag == tagString16:
		n, next, err := d.readLen16(pos, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return d.decodeString(next, n, tag)

	case tag == tagString32:
		n, next, err := d.readLen32(pos, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return d.decodeString(next, n, tag)

	case tag >= tagFixListLow && tag <= tagFixListHigh:
		return d.decodeList(pos, int(tag&tagFixListMask), depth)

	case tag == tagList16:
		n, next, err := d.readLen16(pos, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return d.decodeList(next, n, depth)

	case tag >= tagFixMapLow && tag <= tagFixMapHigh:
		return d.decodeMap(pos, int(tag&tagFixMapMask), depth)

	case tag == tagMap16:
		n, next, err := d.readLen16(pos, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return d.decodeMap(next, n, depth)

	case tag == tagBytes8:
		n, next, err := d.readLen8(pos, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return d.decodeBytes(next, n, tag)

	case tag == tagBytes16:
		n, next, err := d.readLen16(pos, tag)
		if err != nil {
			return Value{}, pos, err
		}
		return d.decodeBytes(next, n, tag)

	default:
		return Value{}, pos, decodeErr(ErrUnknownTag, pos-1, tag)
	}
}

// readN reads exactly n bytes starting at pos, returning the slice and
// the cursor position after it.
func (d *decoder) readN(pos, n int, tag byte) ([]byte, int, error) {
	if pos+n > len(d.buf) {
		return nil, pos, decodeErr(ErrTruncated, pos, tag)
	}
	return d.buf[pos : pos+n], pos + n, nil
}

func (d *decoder) readLen8(pos int, tag byte) (int, int, error) {
	b, next, err := d.readN(pos, 1, tag)
	if err != nil {
		return 0, pos, err
	}
	return int(b[0]), next, nil
}

func (d *decoder) readLen16(pos int, tag byte) (int, int, error) {
	b, next, err := d.readN(pos, 2, tag)
	if err != nil {
		return 0, pos, err
	}
	return int(binary.BigEndian.Uint16(b)), next, nil
}

func (d *decoder) readLen32(pos int, tag byte) (int, int, error) {
	b, next, err := d.readN(pos, 4, tag)
	if err != nil {
		return 0, pos, err
	}
	return int(binary.BigEndian.Uint32(b)), next, nil
}

func (d *decoder) decodeString(pos, n int, tag byte) (Value, int, error) {
	b, next, err := d.readN(pos, n, tag)
	if err != nil {
		return Value{}, pos, err
	}
	if !utf8.Valid(b) {
		return Value{}, pos, decodeErr(ErrInvalidUTF8, pos, tag)
	}
	// Copy out of the input buffer so the returned Value does not alias
	// caller-owned memory past the lifetime of b.
	s := string(b)
	return String(s), next, nil
}

func (d *decoder) decodeBytes(pos, n int, tag byte) (Value, int, error) {
	b, next, err := d.readN(pos, n, tag)
	if err != nil {
		return Value{}, pos, err
	}
	cp := make([]byte, n)
	copy(cp, b)
	return Bytes(cp), next, nil
}

func (d *decoder) decodeList(pos, n int, depth int) (Value, int, error) {
	elems := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		v, next, err := d.decodeValue(pos, depth+1)
		if err != nil {
			return Value{}, pos, err
		}
		elems = append(elems, v)
		pos = next
	}
	return List(elems...), pos, nil
}

func (d *decoder) decodeMap(pos, n int, depth int) (Value, int, error) {
	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		if pos >= len(d.buf) {
			return Value{}, pos, decodeErr(ErrTruncated, pos, 0)
		}
		keyTag := d.buf[pos]
		if !isStringTag(keyTag) {
			return Value{}, pos, decodeErr(ErrInvalidKey, pos, keyTag)
		}
		key, next, err := d.decodeValue(pos, depth+1)
		if err != nil {
			return Value{}, pos, err
		}
		keyStr, _ := key.AsString()
		val, next2, err := d.decodeValue(next, depth+1)
		if err != nil {
			return Value{}, pos, err
		}
		entries = append(entries, Entry{Key: keyStr, Value: val})
		pos = next2
	}
	return Map(entries...), pos, nil
}

func isStringTag(tag byte) bool {
	if tag >= tagFixStringLow && tag <= tagFixStringHigh {
		return true
	}
	return tag == tagString16 || tag == tagString32
}
