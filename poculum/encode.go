package poculum

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Encode maps v to its canonical Poculum byte sequence (SPEC_FULL.md §4.3).
// Encode is deterministic and total on legal values: encoding v twice
// always yields identical bytes, and the only way to fail is a value
// outside the nine supported variants or a magnitude/length outside what
// any size class in its family can hold.
func Encode(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v, ""); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(out *bytes.Buffer, v Value, path string) error {
	switch v.kind {
	case KindNull:
		out.WriteByte(tagNull)
		return nil

	case KindBool:
		out.WriteByte(tagUInt8)
		if v.boolVal {
			out.WriteByte(1)
		} else {
			out.WriteByte(0)
		}
		return nil

	case KindUInt:
		return encodeUInt(out, v.uintVal)

	case KindInt:
		return encodeInt(out, v.intVal, path)

	case KindFloat:
		out.WriteByte(tagFloat64)
		var width [8]byte
		binary.BigEndian.PutUint64(width[:], math.Float64bits(v.floatVal))
		out.Write(width[:])
		return nil

	case KindString:
		return encodeString(out, v.stringVal, path)

	case KindBytes:
		return encodeBytes(out, v.bytesVal, path)

	case KindList:
		return encodeList(out, v.listVal, path)

	case KindMap:
		return encodeMap(out, v.mapVal, path)

	default:
		return encodeErr(ErrUnsupportedType, path)
	}
}

func encodeUInt(out *bytes.Buffer, v uint64) error {
	tag := selectUIntTag(v)
	out.WriteByte(tag)
	switch tag {
	case tagUInt8:
		out.WriteByte(byte(v))
	case tagUInt16:
		var w [2]byte
		binary.BigEndian.PutUint16(w[:], uint16(v))
		out.Write(w[:])
	case tagUInt32:
		var w [4]byte
		binary.BigEndian.PutUint32(w[:], uint32(v))
		out.Write(w[:])
	default: // tagUInt64
		var w [8]byte
		binary.BigEndian.PutUint64(w[:], v)
		out.Write(w[:])
	}
	return nil
}

func encodeInt(out *bytes.Buffer, v int64, path string) error {
	if v >= 0 {
		return encodeErr(fmt.Errorf("%w: non-negative Int %d must be constructed with UInt", ErrOutOfRange, v), path)
	}
	tag := selectIntTag(v)
	out.WriteByte(tag)
	switch tag {
	case tagInt8:
		out.WriteByte(byte(int8(v)))
	case tagInt16:
		var w [2]byte
		binary.BigEndian.PutUint16(w[:], uint16(int16(v)))
		out.Write(w[:])
	case tagInt32:
		var w [4]byte
		binary.BigEndian.PutUint32(w[:], uint32(int32(v)))
		out.Write(w[:])
	default: // tagInt64
		var w [8]byte
		binary.BigEndian.PutUint64(w[:], uint64(v))
		out.Write(w[:])
	}
	return nil
}

func encodeString(out *bytes.Buffer, s string, path string) error {
	n := len(s)
	tag, ok := selectStringTag(n)
	if !ok {
		return encodeErr(ErrOutOfRange, path)
	}
	switch tag {
	case tagFixStringLow:
		out.WriteByte(tagFixStringLow | byte(n))
	case tagString16:
		out.WriteByte(tagString16)
		var w [2]byte
		binary.BigEndian.PutUint16(w[:], uint16(n))
		out.Write(w[:])
	default: // tagString32
		out.WriteByte(tagString32)
		var w [4]byte
		binary.BigEndian.PutUint32(w[:], uint32(n))
		out.Write(w[:])
	}
	out.WriteString(s)
	return nil
}

func encodeBytes(out *bytes.Buffer, b []byte, path string) error {
	n := len(b)
	tag, ok := selectBytesTag(n)
	if !ok {
		return encodeErr(ErrOutOfRange, path)
	}
	out.WriteByte(tag)
	if tag == tagBytes8 {
		out.WriteByte(byte(n))
	} else {
		var w [2]byte
		binary.BigEndian.PutUint16(w[:], uint16(n))
		out.Write(w[:])
	}
	out.Write(b)
	return nil
}

func encodeList(out *bytes.Buffer, elems []Value, path string) error {
	n := len(elems)
	if n > maxUint16Range {
		return encodeErr(ErrOutOfRange, path)
	}
	if n <= maxFixLen {
		out.WriteByte(tagFixListLow | byte(n))
	} else {
		out.WriteByte(tagList16)
		var w [2]byte
		binary.BigEndian.PutUint16(w[:], uint16(n))
		out.Write(w[:])
	}
	for i, elem := range elems {
		if err := encodeValue(out, elem, fmt.Sprintf("%slist[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func encodeMap(out *bytes.Buffer, entries []Entry, path string) error {
	n := len(entries)
	if n > maxUint16Range {
		return encodeErr(ErrOutOfRange, path)
	}
	if n <= maxFixLen {
		out.WriteByte(tagFixMapLow | byte(n))
	} else {
		out.WriteByte(tagMap16)
		var w [2]byte
		binary.BigEndian.PutUint16(w[:], uint16(n))
		out.Write(w[:])
	}
	for _, entry := range entries {
		if err := encodeString(out, entry.Key, fmt.Sprintf("%smap[%q](key)", path, entry.Key)); err != nil {
			return err
		}
		if err := encodeValue(out, entry.Value, fmt.Sprintf("%smap[%q]", path, entry.Key)); err != nil {
			return err
		}
	}
	return nil
}
