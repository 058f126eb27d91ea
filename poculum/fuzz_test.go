package poculum

import (
	"math/rand"
	"testing"
)

// randValue generates a random legal Value bounded by depth and a size
// budget, grounded on the teacher's loose_bench_test.go practice of
// generating synthetic inputs for benchmark/property coverage. Bool is
// deliberately excluded: it shares tag 0x01 with UInt8 and always decodes
// back as UInt (value.go's Bool doc comment, DESIGN.md open-question 2),
// so a generated Bool could never satisfy this fuzz target's
// decoded.Equal(v) assertion — that lossy contract is covered separately
// by TestDecode_BoolSharesUInt8Tag.
func randValue(r *rand.Rand, depth int) Value {
	const maxDepth = 4

	kind := r.Intn(8)
	if depth >= maxDepth {
		kind = r.Intn(6) // only scalars once deep
	}

	switch kind {
	case 0:
		return Null()
	case 1:
		return UInt(r.Uint64())
	case 2:
		return Int(-r.Int63() - 1)
	case 3:
		return Float(r.NormFloat64())
	case 4:
		return String(randString(r, r.Intn(40)))
	case 5:
		return Bytes(randBytes(r, r.Intn(40)))
	case 6:
		n := r.Intn(5)
		elems := make([]Value, n)
		for i := range elems {
			elems[i] = randValue(r, depth+1)
		}
		return List(elems...)
	default:
		n := r.Intn(5)
		entries := make([]Entry, n)
		for i := range entries {
			entries[i] = Field(randString(r, r.Intn(10)+1), randValue(r, depth+1))
		}
		return Map(entries...)
	}
}

func randString(r *rand.Rand, n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

func randBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	r.Read(b)
	return b
}

// FuzzRoundTrip checks SPEC_FULL.md §8 properties 1 and 2 over randomly
// generated value trees, supplementing the fixed golden scenarios.
func FuzzRoundTrip(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(42))
	f.Add(int64(12345))

	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		v := randValue(r, 0)

		encoded, err := Encode(v)
		if err != nil {
			t.Fatalf("Encode error: %v", err)
		}

		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		if !decoded.Equal(v) {
			t.Fatalf("round trip mismatch for seed %d: got %v, want %v", seed, decoded, v)
		}

		reencoded, err := Encode(decoded)
		if err != nil {
			t.Fatalf("re-Encode error: %v", err)
		}
		if string(reencoded) != string(encoded) {
			t.Fatalf("not canonical for seed %d: %x != %x", seed, reencoded, encoded)
		}
	})
}

// FuzzDecodeNeverPanics checks SPEC_FULL.md §8 property 5, generalized to
// arbitrary byte input rather than only truncated prefixes of legal
// encodings: Decode must fail cleanly or succeed, never panic.
func FuzzDecodeNeverPanics(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0xff})
	f.Add([]byte{tagString16, 0xff, 0xff})
	f.Add([]byte{tagFixMapLow | 1})

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = Decode(data)
	})
}
