package dct

// AP-922 constants, with g(k) = cos(kπ/16).
//
// Reference: Intel application note AP-922, "A Fast Precise Implementation
// of 8x8 Discrete Cosine Transform Using the Streaming SIMD Extensions and
// MMX Instructions", 1999.
const (
	ap922T1 = 0.41421356237309503 // g6/g2 = tan(π/8)
	ap922T2 = 0.19891236737965800 // g7/g1 = tan(π/16)
	ap922T3 = 0.66817863791929890 // g5/g3 = tan(3π/16)
	ap922G4 = 0.70710678118654752 // g4 = cos(π/4)
)

// ap922Table[i][k-1] = g(r)·g(k)/4 for r = 4, 1, 2, 3 and k = 1..7.
var ap922Table = [4][7]float32{
	{0.1733799806652680, 0.1633203706095470, 0.1469844503024200, 0.1250000000000000, 0.0982118697983878, 0.0676495125182746, 0.0344874224103679},
	{0.2404849415639110, 0.2265318615882220, 0.2038732892122290, 0.1733799806652680, 0.1362237766939550, 0.0938325693794663, 0.0478354290456362},
	{0.2265318615882220, 0.2133883476483180, 0.1920444391778540, 0.1633203706095470, 0.1283199917898340, 0.0883883476483185, 0.0450599888754343},
	{0.2038732892122290, 0.1920444391778540, 0.1728354290456360, 0.1469844503024200, 0.1154849415639110, 0.0795474112858021, 0.0405529186026822},
}

// ap922Row selects the ap922Table row used for each column.
var ap922Row = [8]int{0, 1, 2, 3, 0, 3, 2, 1}

// AP922IDCT computes the inverse transform with the AP-922 permutation and
// butterfly network: a table driven pass per column followed by a
// butterfly pass per row.
func AP922IDCT(dst *Samples, src *Coefficients) {
	var ws [BlockSize]float32
	for i := 0; i < 8; i++ {
		g := &ap922Table[ap922Row[i]]

		// Even rows first, then odd rows.
		p0 := float32(src[i])
		p1 := float32(src[16+i])
		p2 := float32(src[32+i])
		p3 := float32(src[48+i])
		p4 := float32(src[8+i])
		p5 := float32(src[24+i])
		p6 := float32(src[40+i])
		p7 := float32(src[56+i])

		t0 := p0 * g[3]
		t1 := p1 * g[1]
		t2 := p1 * g[5]
		t3 := p2 * g[3]
		t4 := p3 * g[5]
		t5 := p3 * g[1]

		m0 := t0 + t1 + t3 + t4
		m1 := t0 + t2 - t3 - t5
		m2 := t0 - t2 - t3 + t5
		m3 := t0 - t1 + t3 - t4
		m4 := p4*g[0] + p5*g[2] + p6*g[4] + p7*g[6]
		m5 := p4*g[2] - p5*g[6] - p6*g[0] - p7*g[4]
		m6 := p4*g[4] - p5*g[0] + p6*g[6] + p7*g[2]
		m7 := p4*g[6] - p5*g[4] + p6*g[2] - p7*g[0]

		ws[i] = m0 + m4
		ws[8+i] = m1 + m5
		ws[16+i] = m2 + m6
		ws[24+i] = m3 + m7
		ws[32+i] = m3 - m7
		ws[40+i] = m2 - m6
		ws[48+i] = m1 - m5
		ws[56+i] = m0 - m4
	}

	for y := 0; y < 8; y++ {
		r := ws[y*8 : y*8+8]
		out := dst[y*8 : y*8+8]

		d0, d1, d2, d3 := r[0], r[4], r[2], r[6]
		d4, d5, d6, d7 := r[1], r[7], r[3], r[5]

		b0 := d0 + d1
		b1 := d0 - d1
		b2 := d2 + ap922T1*d3
		b3 := ap922T1*d2 - d3
		b4 := d4 + ap922T2*d5
		b5 := ap922T2*d4 - d5
		b6 := d6 + ap922T3*d7
		b7 := ap922T3*d6 - d7

		e0 := b0 + b2
		e1 := b1 + b3
		e2 := b1 - b3
		e3 := b0 - b2
		e4 := b4 + b6
		e5 := b4 - b6
		e6 := b5 + b7
		e7 := b5 - b7

		f5 := ap922G4 * (e5 + e6)
		f6 := ap922G4 * (e5 - e6)

		out[0] = sampleFromFloat(float64(e0 + e4))
		out[1] = sampleFromFloat(float64(e1 + f5))
		out[2] = sampleFromFloat(float64(e2 + f6))
		out[3] = sampleFromFloat(float64(e3 + e7))
		out[4] = sampleFromFloat(float64(e3 - e7))
		out[5] = sampleFromFloat(float64(e2 - f6))
		out[6] = sampleFromFloat(float64(e1 - f5))
		out[7] = sampleFromFloat(float64(e0 - e4))
	}
}
