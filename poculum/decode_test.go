package poculum

import (
	"errors"
	"testing"
)

func TestDecode_BoolSharesUInt8Tag(t *testing.T) {
	encoded, err := Encode(Bool(true))
	if err != nil {
		t.Fatal(err)
	}
	if encoded[0] != tagUInt8 {
		t.Fatalf("Bool encoding tag = 0x%02x, want 0x%02x (shared with UInt8)", encoded[0], tagUInt8)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	// Per SPEC_FULL.md §9, tag 0x01 always decodes as UInt, never Bool.
	n, ok := decoded.AsUInt()
	if !ok || n != 1 {
		t.Errorf("Decode(encoded true) = %v, want UInt(1)", decoded)
	}
}

func TestDecode_ZeroLengthFixContainers(t *testing.T) {
	tests := []struct {
		name string
		tag  byte
	}{
		{"empty_fixstring", tagFixStringLow},
		{"empty_fixlist", tagFixListLow},
		{"empty_fixmap", tagFixMapLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode([]byte{tt.tag})
			if err != nil {
				t.Fatalf("Decode error: %v", err)
			}
			switch tt.tag {
			case tagFixStringLow:
				s, ok := v.AsString()
				if !ok || s != "" {
					t.Errorf("got %v, want empty String", v)
				}
			case tagFixListLow:
				l, ok := v.AsList()
				if !ok || len(l) != 0 {
					t.Errorf("got %v, want empty List", v)
				}
			case tagFixMapLow:
				m, ok := v.AsMap()
				if !ok || len(m) != 0 {
					t.Errorf("got %v, want empty Map", v)
				}
			}
		})
	}
}

func TestDecode_DuplicateMapKeysPreservedInOrder(t *testing.T) {
	// Hand-built: FixMap count=2, ["a"=1, "a"=2] — duplicate key "a".
	encoded := []byte{
		tagFixMapLow | 2,
		tagFixStringLow | 1, 'a', tagUInt8, 1,
		tagFixStringLow | 1, 'a', tagUInt8, 2,
	}
	v, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	entries, ok := v.AsMap()
	if !ok || len(entries) != 2 {
		t.Fatalf("got %v, want 2 entries", v)
	}
	if entries[0].Key != "a" || entries[1].Key != "a" {
		t.Fatalf("keys = %q, %q, want both \"a\"", entries[0].Key, entries[1].Key)
	}
	v0, _ := entries[0].Value.AsUInt()
	v1, _ := entries[1].Value.AsUInt()
	if v0 != 1 || v1 != 2 {
		t.Errorf("values = %d, %d, want 1, 2 in encounter order", v0, v1)
	}
}

func TestDecode_InvalidKey(t *testing.T) {
	// FixMap count=1, key is UInt8 (tag 0x01) instead of a string variant.
	encoded := []byte{tagFixMapLow | 1, tagUInt8, 0x01, tagUInt8, 0x02}
	_, err := Decode(encoded)
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Decode error = %v, want ErrInvalidKey", err)
	}
}

// TestDecode_TruncationRobustness covers SPEC_FULL.md §8 property 5: every
// proper prefix of a legal encoding fails cleanly, never panics, never
// returns a value.
func TestDecode_TruncationRobustness(t *testing.T) {
	full, err := Encode(Map(
		Field("name", String("poculum")),
		Field("tags", List(String("codec"), String("binary"), UInt(64))),
		Field("blob", Bytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})),
	))
	if err != nil {
		t.Fatal(err)
	}

	for k := 0; k < len(full); k++ {
		prefix := full[:k]
		v, err := Decode(prefix)
		if err == nil {
			t.Fatalf("Decode(prefix of length %d) succeeded with %v, want Truncated or UnknownTag", k, v)
		}
		if !errors.Is(err, ErrTruncated) && !errors.Is(err, ErrUnknownTag) {
			t.Errorf("Decode(prefix of length %d) error = %v, want Truncated or UnknownTag", k, err)
		}
	}
}

func TestDecode_MaxDepthExceeded(t *testing.T) {
	// Build a deeply nested singleton list: [[[...]]] past the default guard.
	v := Null()
	for i := 0; i < DefaultMaxDepth+10; i++ {
		v = List(v)
	}
	encoded, err := Encode(v)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Decode(encoded)
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("Decode(over-deep list) error = %v, want ErrDepthExceeded", err)
	}
}
