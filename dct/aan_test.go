package dct

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAANIDCTGolden(t *testing.T) {
	tests := []struct {
		name string
		fn   InverseFunc
	}{
		{"float32", AANIDCT},
		{"float64", AANIDCT64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Samples
			tt.fn(&got, &zzBlock)
			if diff := cmp.Diff(zzSamples, got); diff != "" {
				t.Errorf("IDCT(zz) mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAANPrecisions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		src := naturalCoefficients(rng)
		var a, b, ref Samples
		AANIDCT(&a, &src)
		AANIDCT64(&b, &src)
		ReferenceIDCT64(&ref, &src)
		if d := MaxAbsDiff(&ref, &b); d > 1 {
			t.Fatalf("block %d: AANIDCT64 deviation %d", i, d)
		}
		if d := MaxAbsDiff(&a, &b); d > 1 {
			t.Fatalf("block %d: float32 and float64 differ by %d", i, d)
		}
	}
}
