package dct

// The separable kernels factor the 2D inverse transform into a column
// pass along v followed by a row pass along u, both using normBasis.
// The symmetric variants rely on
//
//	normBasis[7-n][k] = (-1)^k · normBasis[n][k]
//
// to produce mirrored outputs from a single accumulation.

// columnPass returns tmp[y*8+u] = Σv F(u,v)·normBasis[y][v].
func columnPass(src *Coefficients) [BlockSize]float32 {
	var tmp [BlockSize]float32
	for y := 0; y < 8; y++ {
		basis := &normBasis[y]
		for u := 0; u < 8; u++ {
			var sum float32
			for v := 0; v < 8; v++ {
				sum += float32(src[v*8+u]) * basis[v]
			}
			tmp[y*8+u] = sum
		}
	}
	return tmp
}

// SeparableIDCT computes the inverse transform as two 1D matrix passes,
// 1024 multiply-adds per block.
func SeparableIDCT(dst *Samples, src *Coefficients) {
	tmp := columnPass(src)
	for y := 0; y < 8; y++ {
		row := tmp[y*8 : y*8+8]
		for x := 0; x < 8; x++ {
			basis := &normBasis[x]
			var sum float32
			for u, t := range row {
				sum += t * basis[u]
			}
			dst[y*8+x] = sampleFromFloat(float64(sum / 4))
		}
	}
}

// SymmetricIDCT is SeparableIDCT with the row pass computing outputs x
// and 7-x together: even-u terms are shared, odd-u terms change sign.
func SymmetricIDCT(dst *Samples, src *Coefficients) {
	tmp := columnPass(src)
	for y := 0; y < 8; y++ {
		row := tmp[y*8 : y*8+8]
		for x := 0; x < 4; x++ {
			basis := &normBasis[x]
			var even, odd float32
			for u := 0; u < 8; u += 2 {
				even += row[u] * basis[u]
				odd += row[u+1] * basis[u+1]
			}
			dst[y*8+x] = sampleFromFloat(float64((even + odd) / 4))
			dst[y*8+7-x] = sampleFromFloat(float64((even - odd) / 4))
		}
	}
}

// QuadSymmetricIDCT computes the four outputs (x,y), (7-x,y), (x,7-y) and
// (7-x,7-y) from one accumulation per quadrant position, using the parity
// of both u and v.
func QuadSymmetricIDCT(dst *Samples, src *Coefficients) {
	for y := 0; y < 4; y++ {
		by := &normBasis[y]
		for x := 0; x < 4; x++ {
			bx := &normBasis[x]
			// top and bottom are the column sums for rows y and 7-y.
			var tl, tr, bl, br float32
			for u := 0; u < 8; u++ {
				var top, bottom float32
				for v := 0; v < 8; v++ {
					t := float32(src[v*8+u]) * by[v]
					top += t
					if v&1 == 0 {
						bottom += t
					} else {
						bottom -= t
					}
				}
				w := bx[u]
				tl += top * w
				bl += bottom * w
				if u&1 == 0 {
					tr += top * w
					br += bottom * w
				} else {
					tr -= top * w
					br -= bottom * w
				}
			}
			dst[y*8+x] = sampleFromFloat(float64(tl / 4))
			dst[y*8+7-x] = sampleFromFloat(float64(tr / 4))
			dst[(7-y)*8+x] = sampleFromFloat(float64(bl / 4))
			dst[(7-y)*8+7-x] = sampleFromFloat(float64(br / 4))
		}
	}
}

// EvenOddIDCT splits the column pass into even-v and odd-v partial sums.
// Their sum feeds row y and their difference feeds row 7-y, so only four
// column passes are computed; the row pass then mirrors x as in
// SymmetricIDCT.
func EvenOddIDCT(dst *Samples, src *Coefficients) {
	for y := 0; y < 4; y++ {
		by := &normBasis[y]
		var top, bottom [8]float32
		for u := 0; u < 8; u++ {
			var even, odd float32
			for v := 0; v < 8; v += 2 {
				even += float32(src[v*8+u]) * by[v]
				odd += float32(src[(v+1)*8+u]) * by[v+1]
			}
			top[u] = even + odd
			bottom[u] = even - odd
		}
		for x := 0; x < 4; x++ {
			bx := &normBasis[x]
			var te, to, be, bo float32
			for u := 0; u < 8; u += 2 {
				te += top[u] * bx[u]
				to += top[u+1] * bx[u+1]
				be += bottom[u] * bx[u]
				bo += bottom[u+1] * bx[u+1]
			}
			dst[y*8+x] = sampleFromFloat(float64((te + to) / 4))
			dst[y*8+7-x] = sampleFromFloat(float64((te - to) / 4))
			dst[(7-y)*8+x] = sampleFromFloat(float64((be + bo) / 4))
			dst[(7-y)*8+7-x] = sampleFromFloat(float64((be - bo) / 4))
		}
	}
}

// fixedShift removes the two fixedScale factors and the 1/4 normalization.
const fixedShift = 2*fixedBits + 2

// FixedPointIDCT is SeparableIDCT in integer arithmetic using fixedBasis.
// The column pass accumulates in int32 and the row pass in int64, which
// cannot overflow for coefficients in the int16 range. Results stay within
// 2 of ReferenceIDCT for coefficients in [-2048, 2048]; basis rounding
// error grows with coefficient magnitude beyond that.
func FixedPointIDCT(dst *Samples, src *Coefficients) {
	var tmp [BlockSize]int32
	for y := 0; y < 8; y++ {
		basis := &fixedBasis[y]
		for u := 0; u < 8; u++ {
			var sum int32
			for v := 0; v < 8; v++ {
				sum += src[v*8+u] * basis[v]
			}
			tmp[y*8+u] = sum
		}
	}
	for y := 0; y < 8; y++ {
		row := tmp[y*8 : y*8+8]
		for x := 0; x < 8; x++ {
			basis := &fixedBasis[x]
			var sum int64
			for u, t := range row {
				sum += int64(t) * int64(basis[u])
			}
			dst[y*8+x] = clampFixed(sum)
		}
	}
}

// clampFixed is the integer form of sampleFromFloat for fixedShift-scaled
// sums. The right shift rounds half toward positive infinity.
func clampFixed(sum int64) uint8 {
	v := (sum + 1<<(fixedShift-1)) >> fixedShift
	switch {
	case v < -levelShift:
		return 0
	case v > 255-levelShift:
		return 255
	}
	return uint8(v + levelShift)
}
