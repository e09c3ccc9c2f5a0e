package dct

import (
	"encoding/binary"
	"math"
	"testing"
)

// coefficientRange bounds fuzzed coefficients to what 8-bit baseline
// streams can carry after dequantization.
const coefficientRange = 1024

func coefficientsFromBytes(data []byte) Coefficients {
	var c Coefficients
	for i := 0; i < BlockSize && 2*i+1 < len(data); i++ {
		v := int32(int16(binary.LittleEndian.Uint16(data[2*i:])))
		c[i] = v % (coefficientRange + 1)
	}
	return c
}

// FuzzInverse checks that no strategy panics and that every strategy stays
// within tolerance of the double precision reference.
func FuzzInverse(f *testing.F) {
	seed := make([]byte, 2*BlockSize)
	for i, v := range zzBlock {
		binary.LittleEndian.PutUint16(seed[2*i:], uint16(int16(v)))
	}
	f.Add(seed)
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x04})
	f.Add([]byte{0xff, 0x7f, 0x00, 0x80, 0xff, 0x7f})

	f.Fuzz(func(t *testing.T, data []byte) {
		src := coefficientsFromBytes(data)
		want := Reference64.Inverse(&src)
		for _, s := range Strategies() {
			got := s.Inverse(&src)
			if d := MaxAbsDiff(&want, &got); d > s.Tolerance()+1 {
				t.Errorf("%v deviates by %d from reference64", s, d)
			}
		}
	})
}

// FuzzForward checks every forward kernel against the double precision
// reference, and the DC term against the block mean.
func FuzzForward(f *testing.F) {
	f.Add(edgeBlock[:])
	f.Add(make([]byte, BlockSize))
	cb := checkerboard()
	f.Add(cb[:])

	f.Fuzz(func(t *testing.T, data []byte) {
		var s Samples
		copy(s[:], data)

		var want FloatCoefficients64
		ReferenceFDCT64(&want, &s)
		var sum int
		for _, v := range s {
			sum += int(v) - levelShift
		}
		if dc := float64(sum) / 8; math.Abs(want[0]-dc) > 1e-9 {
			t.Fatalf("DC = %v, want %v", want[0], dc)
		}

		for _, st := range Strategies() {
			got := st.Forward(&s)
			for k := range got {
				if d := math.Abs(float64(got[k]) - want[k]); d > 1e-2 {
					t.Fatalf("%v: coefficient %d = %v, want %v", st, k, got[k], want[k])
				}
			}
		}
	})
}
