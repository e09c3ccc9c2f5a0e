package dct

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStrategyNames(t *testing.T) {
	want := []string{
		"reference", "reference64", "separable", "symmetric", "quadsymmetric",
		"evenodd", "fixedpoint", "llm", "aan", "aan64", "ap922",
	}
	var got []string
	for _, s := range Strategies() {
		got = append(got, s.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Strategies() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range Strategies() {
		got, err := ParseStrategy(s.String())
		if err != nil {
			t.Fatalf("ParseStrategy(%q): %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseStrategy(%q) = %v, want %v", s.String(), got, s)
		}
	}

	if got, err := ParseStrategy("AP922"); err != nil || got != AP922 {
		t.Errorf("ParseStrategy(\"AP922\") = %v, %v; want ap922", got, err)
	}

	_, err := ParseStrategy("wavelet")
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("ParseStrategy(\"wavelet\") error = %v, want ErrUnknownStrategy", err)
	}
}

func TestStrategyValid(t *testing.T) {
	for _, s := range Strategies() {
		if !s.Valid() {
			t.Errorf("%v.Valid() = false", s)
		}
	}
	for _, s := range []Strategy{-1, numStrategies, 100} {
		if s.Valid() {
			t.Errorf("Strategy(%d).Valid() = true", int(s))
		}
		if s.HasForward() {
			t.Errorf("Strategy(%d).HasForward() = true", int(s))
		}
		if s.Tolerance() != 0 {
			t.Errorf("Strategy(%d).Tolerance() = %d, want 0", int(s), s.Tolerance())
		}
	}
	if got := Strategy(42).String(); got != "Strategy(42)" {
		t.Errorf("String() = %q, want Strategy(42)", got)
	}
}

func TestStrategyForwardSupport(t *testing.T) {
	native := map[Strategy]bool{Reference: true, Reference64: true, LLM: true}
	for _, s := range Strategies() {
		if s.HasForward() != native[s] {
			t.Errorf("%v.HasForward() = %v, want %v", s, s.HasForward(), native[s])
		}
		if s.ForwardFunc() == nil {
			t.Errorf("%v.ForwardFunc() = nil", s)
		}
	}
}

func TestStrategyTolerance(t *testing.T) {
	for _, s := range Strategies() {
		want := 1
		if s == FixedPoint {
			want = 2
		}
		if got := s.Tolerance(); got != want {
			t.Errorf("%v.Tolerance() = %d, want %d", s, got, want)
		}
	}
}

// checkAgainstReference runs every strategy on src and compares the result
// with ReferenceIDCT.
func checkAgainstReference(t *testing.T, label string, src *Coefficients) {
	t.Helper()
	want := Reference.Inverse(src)
	for _, s := range Strategies() {
		got := s.Inverse(src)
		if d := MaxAbsDiff(&want, &got); d > s.Tolerance() {
			t.Errorf("%s: %v deviates by %d (tolerance %d)", label, s, d, s.Tolerance())
		}
	}
}

func TestStrategiesAgree(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		checkAgainstReference(t, "zero", &Coefficients{})
	})

	t.Run("impulses", func(t *testing.T) {
		for i := 0; i < BlockSize; i++ {
			for _, amp := range []int32{1, 100, -100, 1016} {
				var src Coefficients
				src[i] = amp
				checkAgainstReference(t, "impulse", &src)
			}
		}
	})

	t.Run("random", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 100; i++ {
			src := randomCoefficients(rng, 255)
			checkAgainstReference(t, "uniform", &src)
			src = naturalCoefficients(rng)
			checkAgainstReference(t, "natural", &src)
		}
	})

	t.Run("golden", func(t *testing.T) {
		for _, s := range Strategies() {
			got := s.Inverse(&zzBlock)
			if d := MaxAbsDiff(&zzSamples, &got); d > s.Tolerance()-1 {
				t.Errorf("%v: zz deviates by %d", s, d)
			}
		}
	})
}

func TestStrategiesDCOnly(t *testing.T) {
	for _, s := range Strategies() {
		for c := int32(-128); c <= 127; c++ {
			src := Coefficients{8 * c}
			got := s.Inverse(&src)
			want := uint8(c + levelShift)
			for i, v := range got {
				if v != want {
					t.Fatalf("%v: DC %d sample %d = %d, want %d", s, 8*c, i, v, want)
				}
			}
		}
	}
}

func TestStrategiesClamp(t *testing.T) {
	tests := []struct {
		name string
		src  Coefficients
		want uint8
	}{
		{"bright", Coefficients{8 * 300}, 255},
		{"dark", Coefficients{-8 * 300}, 0},
		{"just above", Coefficients{8 * 128}, 255},
		{"just below", Coefficients{-8 * 129}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range Strategies() {
				got := s.Inverse(&tt.src)
				for i, v := range got {
					if v != tt.want {
						t.Fatalf("%v: sample %d = %d, want %d", s, i, v, tt.want)
					}
				}
			}
		})
	}

	// A strong horizontal ramp saturates at both ends.
	src := Coefficients{0, 2000}
	for _, s := range Strategies() {
		got := s.Inverse(&src)
		if got[0] != 255 || got[7] != 0 {
			t.Errorf("%v: ramp ends = %d, %d; want 255, 0", s, got[0], got[7])
		}
	}
}

func TestStrategiesForward(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, s := range Strategies() {
		for i := 0; i < 10; i++ {
			block := randomSamples(rng)
			var want FloatCoefficients64
			ReferenceFDCT64(&want, &block)
			got := s.Forward(&block)
			for k := range got {
				if d := math.Abs(float64(got[k]) - want[k]); d > 1e-2 {
					t.Fatalf("%v: coefficient %d = %v, want %v", s, k, got[k], want[k])
				}
			}
		}
	}
}

func TestStrategiesRoundTrip(t *testing.T) {
	blocks := []Samples{edgeBlock, checkerboard()}
	for _, s := range Strategies() {
		for _, b := range blocks {
			f := s.Forward(&b)
			c := f.Round()
			got := s.Inverse(&c)
			if d := MaxAbsDiff(&b, &got); d > s.Tolerance() {
				t.Errorf("%v: round trip deviation %d", s, d)
			}
		}
	}
}
