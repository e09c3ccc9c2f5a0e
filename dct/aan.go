package dct

// Arai-Agui-Nakajima rotation constants. aanR2 serves both √2 multipliers
// of the flow graph.
const (
	aanC2x2 = 1.8477590650225735 // 2·cos(π/8)
	aanS2x2 = 0.7653668647301796 // 2·sin(π/8)
	aanR2   = 1.4142135623730951 // √2
	aanDiff = aanC2x2 - aanS2x2  // 2·(cos(π/8) - sin(π/8))
	aanSum  = aanC2x2 + aanS2x2  // 2·(cos(π/8) + sin(π/8))
)

// aanScale[k] = C(k)·cos(kπ/16)/2 is folded into the inputs of each 1D
// pass, leaving no global divide at the end.
var (
	aanScale = [8]float32{
		0.35355339059327373, 0.4903926402016152, 0.46193976625564337, 0.4157348061512726,
		0.35355339059327373, 0.27778511650980114, 0.19134171618254492, 0.09754516100806417,
	}
	aanScale64 = [8]float64{
		0.35355339059327373, 0.4903926402016152, 0.46193976625564337, 0.4157348061512726,
		0.35355339059327373, 0.27778511650980114, 0.19134171618254492, 0.09754516100806417,
	}
)

// AANIDCT computes the inverse transform with the scaled AAN butterfly
// network in float32, first over columns and then over rows.
func AANIDCT(dst *Samples, src *Coefficients) {
	aanInverse(dst, src, &aanScale)
}

// AANIDCT64 is AANIDCT in float64.
func AANIDCT64(dst *Samples, src *Coefficients) {
	aanInverse(dst, src, &aanScale64)
}

func aanInverse[F float32 | float64](dst *Samples, src *Coefficients, scale *[8]F) {
	var ws [BlockSize]F
	for i, c := range src {
		ws[i] = F(c)
	}
	for x := 0; x < 8; x++ {
		aanInverse8(ws[x:], 8, scale)
	}
	for y := 0; y < 8; y++ {
		aanInverse8(ws[y*8:], 1, scale)
	}
	for i, v := range ws {
		dst[i] = sampleFromFloat(float64(v))
	}
}

// aanInverse8 transforms s[0], s[stride], ..., s[7*stride] in place.
func aanInverse8[F float32 | float64](s []F, stride int, scale *[8]F) {
	_ = s[7*stride]
	g0 := s[0] * scale[0]
	g1 := s[4*stride] * scale[4]
	g2 := s[2*stride] * scale[2]
	g3 := s[6*stride] * scale[6]
	g4 := s[5*stride] * scale[5]
	g5 := s[stride] * scale[1]
	g6 := s[7*stride] * scale[7]
	g7 := s[3*stride] * scale[3]

	f4 := g4 - g7
	f5 := g5 + g6
	f6 := g5 - g6
	f7 := g4 + g7

	e2 := g2 - g3
	e3 := g2 + g3
	e5 := f5 - f7
	e7 := f5 + f7
	e8 := f4 + f6

	d2 := e2 * F(aanR2)
	d4 := f4 * F(aanDiff)
	d5 := e5 * F(aanR2)
	d6 := f6 * F(aanSum)
	d8 := e8 * F(aanS2x2)

	c0 := g0 + g1
	c1 := g0 - g1
	c2 := d2 - e3
	c4 := d4 + d8
	c5 := d5 + e7
	c6 := d6 - d8
	c8 := c5 - c6

	b0 := c0 + e3
	b1 := c1 + c2
	b2 := c1 - c2
	b3 := c0 - e3
	b4 := c4 - c8
	b6 := c6 - e7

	s[0] = b0 + e7
	s[stride] = b1 + b6
	s[2*stride] = b2 + c8
	s[3*stride] = b3 + b4
	s[4*stride] = b3 - b4
	s[5*stride] = b2 - c8
	s[6*stride] = b1 - b6
	s[7*stride] = b0 - e7
}
