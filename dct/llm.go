package dct

// Loeffler-Ligtenberg-Moschytz butterfly constants.
//
// Reference: C. Loeffler, A. Ligtenberg, G. Moschytz, "Practical fast 1-D
// DCT algorithms with 11 multiplications", ICASSP 1989.
const (
	llmR2   = 1.4142135623730951 // √2
	llmR2C6 = 0.5411961001461971 // √2·cos(3π/8) = √2·sin(π/8)
	llmR2C2 = 1.3065629648763766 // √2·cos(π/8)
	llmC3   = 0.8314696123025452 // cos(3π/16)
	llmS3   = 0.5555702330196022 // sin(3π/16)
	llmC1   = 0.9807852804032304 // cos(π/16)
	llmS1   = 0.1950903220161283 // sin(π/16)

	llmR2C1  = 1.3870398453221475 // √2·cos(π/16)
	llmR2S1  = 0.2758993792829430 // √2·sin(π/16)
	llmR2C3  = 1.1758756024193588 // √2·cos(3π/16)
	llmR2S3  = 0.7856949583871021 // √2·sin(3π/16)
	llmInvR2 = 0.7071067811865475 // 1/√2

	// Each 1D pass scales its output by √8; two passes need 1/8.
	llmScale = 0.125
)

// LLMIDCT computes the inverse transform with the LLM butterfly network,
// first over rows and then over columns.
func LLMIDCT(dst *Samples, src *Coefficients) {
	var ws [BlockSize]float32
	for i, c := range src {
		ws[i] = float32(c)
	}
	for y := 0; y < 8; y++ {
		llmInverse8(ws[y*8:], 1)
	}
	for x := 0; x < 8; x++ {
		llmInverse8(ws[x:], 8)
	}
	for i, v := range ws {
		dst[i] = sampleFromFloat(float64(v * llmScale))
	}
}

// llmInverse8 transforms the 8 values s[0], s[stride], ..., s[7*stride]
// in place.
func llmInverse8(s []float32, stride int) {
	_ = s[7*stride]
	f0, f1, f2, f3 := s[0], s[stride], s[2*stride], s[3*stride]
	f4, f5, f6, f7 := s[4*stride], s[5*stride], s[6*stride], s[7*stride]

	// Even part.
	y0 := f0 + f4
	y1 := f0 - f4
	y2 := llmR2C6*f2 - llmR2C2*f6
	y3 := llmR2C6*f6 + llmR2C2*f2

	e0 := y0 + y3
	e1 := y1 + y2
	e2 := y1 - y2
	e3 := y0 - y3

	// Odd part.
	z4 := f1 - f7
	z5 := f3 * llmR2
	z6 := f5 * llmR2
	z7 := f1 + f7

	y4 := z4 + z6
	y5 := z7 - z5
	y6 := z4 - z6
	y7 := z7 + z5

	o4 := y4*llmC3 - y7*llmS3
	o5 := y5*llmC1 - y6*llmS1
	o6 := y6*llmC1 + y5*llmS1
	o7 := y7*llmC3 + y4*llmS3

	s[0] = e0 + o7
	s[stride] = e1 + o6
	s[2*stride] = e2 + o5
	s[3*stride] = e3 + o4
	s[4*stride] = e3 - o4
	s[5*stride] = e2 - o5
	s[6*stride] = e1 - o6
	s[7*stride] = e0 - o7
}

// LLMFDCT computes the forward transform of a level shifted block with the
// LLM butterfly network, first over rows and then over columns. Its output
// matches ReferenceFDCT.
func LLMFDCT(dst *FloatCoefficients, src *Samples) {
	ws := (*[BlockSize]float32)(dst)
	for i, s := range src {
		ws[i] = float32(s) - levelShift
	}
	for y := 0; y < 8; y++ {
		llmForward8(ws[y*8:], 1)
	}
	for x := 0; x < 8; x++ {
		llmForward8(ws[x:], 8)
	}
	for i := range ws {
		ws[i] *= llmScale
	}
}

func llmForward8(s []float32, stride int) {
	_ = s[7*stride]
	f0, f1, f2, f3 := s[0], s[stride], s[2*stride], s[3*stride]
	f4, f5, f6, f7 := s[4*stride], s[5*stride], s[6*stride], s[7*stride]

	a0, a7 := f0+f7, f0-f7
	a1, a6 := f1+f6, f1-f6
	a2, a5 := f2+f5, f2-f5
	a3, a4 := f3+f4, f3-f4

	// Even part.
	c0 := a0 + a3
	c3 := a0 - a3
	c1 := a1 + a2
	c2 := a1 - a2

	s[0] = c0 + c1
	s[4*stride] = c0 - c1
	s[2*stride] = c2*llmR2C6 + c3*llmR2C2
	s[6*stride] = c3*llmR2C6 - c2*llmR2C2

	// Odd part.
	r3 := a4*llmR2C3 + a7*llmR2S3
	r0 := a7*llmR2C3 - a4*llmR2S3
	r2 := a5*llmR2C1 + a6*llmR2S1
	r1 := a6*llmR2C1 - a5*llmR2S1

	s[5*stride] = r3 - r1
	s[3*stride] = r0 - r2

	d0 := (r0 + r2) * llmInvR2
	d3 := (r3 + r1) * llmInvR2
	s[stride] = d0 + d3
	s[7*stride] = d0 - d3
}
