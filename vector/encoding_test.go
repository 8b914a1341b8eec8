package vector

import (
	"math"
	"testing"
)

func TestEncodeDecodeEmbedding_RoundTrip(t *testing.T) {
	orig := []float32{0.0, 1.5, -2.25, 3.75, float32(math.SmallestNonzeroFloat32)}

	decoded, err := DecodeEmbedding(EncodeEmbedding(orig))
	if err != nil {
		t.Fatalf("DecodeEmbedding failed: %v", err)
	}
	if len(decoded) != len(orig) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(orig))
	}
	for i := range orig {
		if math.Float32bits(decoded[i]) != math.Float32bits(orig[i]) {
			t.Fatalf("decoded[%d] = %v, want bit-exact %v", i, decoded[i], orig[i])
		}
	}
}

func TestEncodeDecodeEmbedding_Empty(t *testing.T) {
	if b := EncodeEmbedding(nil); len(b) != 0 {
		t.Fatalf("expected empty blob for nil slice, got len=%d", len(b))
	}
	vec, err := DecodeEmbedding(nil)
	if err != nil {
		t.Fatalf("DecodeEmbedding(nil) failed: %v", err)
	}
	if len(vec) != 0 {
		t.Fatalf("expected empty slice for nil blob, got len=%d", len(vec))
	}
}

func TestDecodeEmbedding_BadLength(t *testing.T) {
	if _, err := DecodeEmbedding([]byte{1, 2, 3}); err == nil {
		t.Fatal("DecodeEmbedding on a 3-byte blob succeeded, want error")
	}
}

func TestEncodeEmbedding_ByteLength(t *testing.T) {
	for n := 1; n <= 8; n++ {
		vec := make([]float32, n)
		if got := len(EncodeEmbedding(vec)); got != 4*n {
			t.Fatalf("blob length for %d floats = %d, want %d", n, got, 4*n)
		}
	}
}
