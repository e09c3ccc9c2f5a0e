// Package dct provides interchangeable 8x8 forward and inverse Discrete
// Cosine Transform kernels for block-based image and video codecs.
//
// Every kernel maps one 64-element block to another and keeps all scratch
// state on the stack, so kernels may be called concurrently on different
// blocks without synchronization. The available algorithms are:
//   - Reference: direct evaluation of the CCITT T.81 A.3.3 double sum
//     (float32 and float64)
//   - Separable: two 1D matrix passes, plus symmetry-exploiting and
//     fixed-point forms
//   - LLM: Loeffler-Ligtenberg-Moschytz butterfly network (inverse and forward)
//   - AAN: Arai-Agui-Nakajima scaled butterfly network (float32 and float64)
//   - AP922: permutation and butterfly network from Intel AP-922
//
// Coefficient blocks are row-major with index v*8+u and hold already
// dequantized values in natural (not zigzag) order. Spatial blocks are
// row-major with index y*8+x.
package dct

import (
	"fmt"
	"math"
	"strings"
)

// BlockSize is the number of elements in an 8x8 block.
const BlockSize = 64

// Coefficients is a block of dequantized DCT coefficients.
// Index 0 is the DC term.
type Coefficients [BlockSize]int32

// Samples is a block of 8-bit spatial samples.
type Samples [BlockSize]uint8

// FloatCoefficients is a block of unquantized forward transform output.
type FloatCoefficients [BlockSize]float32

// FloatCoefficients64 is the double precision form of FloatCoefficients.
type FloatCoefficients64 [BlockSize]float64

// InverseFunc transforms one coefficient block into spatial samples.
type InverseFunc func(dst *Samples, src *Coefficients)

// ForwardFunc transforms one spatial block into coefficients.
// The output is centered (level shifted by -128) and not rounded.
type ForwardFunc func(dst *FloatCoefficients, src *Samples)

// levelShift is the offset between centered values and unsigned samples.
const levelShift = 128

// sampleFromFloat applies the reconstruction policy shared by every inverse
// kernel: round half away from zero, add the level shift, clamp to [0, 255].
func sampleFromFloat(v float64) uint8 {
	// Large or NaN inputs would make the integer conversion undefined.
	switch {
	case math.IsNaN(v):
		return levelShift
	case v <= -levelShift-1:
		return 0
	case v >= 255-levelShift+1:
		return 255
	}
	return clampSample(int32(math.Round(v)) + levelShift)
}

// clampSample clamps a level shifted value to the 8-bit sample range.
func clampSample(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Round converts forward transform output to integer coefficients using
// round half away from zero, the same policy the inverse kernels use.
func (c *FloatCoefficients) Round() Coefficients {
	var out Coefficients
	for i, v := range c {
		out[i] = int32(math.Round(float64(v)))
	}
	return out
}

// Round converts forward transform output to integer coefficients.
func (c *FloatCoefficients64) Round() Coefficients {
	var out Coefficients
	for i, v := range c {
		out[i] = int32(math.Round(v))
	}
	return out
}

// MaxAbsDiff returns the largest per-sample difference between two blocks.
func MaxAbsDiff(a, b *Samples) int {
	peak := 0
	for i := range a {
		d := int(a[i]) - int(b[i])
		if d < 0 {
			d = -d
		}
		if d > peak {
			peak = d
		}
	}
	return peak
}

// String formats the block as eight rows of right-aligned samples.
func (s *Samples) String() string {
	var b strings.Builder
	for y := 0; y < 8; y++ {
		for x, v := range s[y*8 : y*8+8] {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%3d", v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String formats the block as eight rows of right-aligned coefficients.
func (c *Coefficients) String() string {
	var b strings.Builder
	for v := 0; v < 8; v++ {
		for u, f := range c[v*8 : v*8+8] {
			if u > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%5d", f)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
