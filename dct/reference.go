package dct

// ReferenceIDCT computes the inverse transform by direct evaluation of
//
//	f(x,y) = 1/4 Σu Σv C(u)C(v) F(u,v) cos((2x+1)uπ/16) cos((2y+1)vπ/16)
//
// accumulating in float32. It performs 4096 multiply-adds per block and
// is the accuracy baseline every other kernel is measured against.
func ReferenceIDCT(dst *Samples, src *Coefficients) {
	referenceInverse(dst, src, &cosTable, &alpha32)
}

// ReferenceIDCT64 is ReferenceIDCT with float64 accumulation.
func ReferenceIDCT64(dst *Samples, src *Coefficients) {
	referenceInverse(dst, src, &cosTable64, &alpha64)
}

// ReferenceFDCT computes the forward transform of a level shifted block
// by direct evaluation of
//
//	F(u,v) = 1/4 C(u)C(v) Σx Σy (f(x,y)-128) cos((2x+1)uπ/16) cos((2y+1)vπ/16)
//
// The result is not rounded.
func ReferenceFDCT(dst *FloatCoefficients, src *Samples) {
	referenceForward((*[BlockSize]float32)(dst), src, &cosTable, &alpha32)
}

// ReferenceFDCT64 is ReferenceFDCT with float64 accumulation.
func ReferenceFDCT64(dst *FloatCoefficients64, src *Samples) {
	referenceForward((*[BlockSize]float64)(dst), src, &cosTable64, &alpha64)
}

func referenceInverse[F float32 | float64](dst *Samples, src *Coefficients, cos *[8][8]F, alpha *[8]F) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			var sum F
			for v := 0; v < 8; v++ {
				cy := alpha[v] * cos[v][y]
				for u := 0; u < 8; u++ {
					sum += alpha[u] * cy * F(src[v*8+u]) * cos[u][x]
				}
			}
			dst[y*8+x] = sampleFromFloat(float64(sum / 4))
		}
	}
}

func referenceForward[F float32 | float64](dst *[BlockSize]F, src *Samples, cos *[8][8]F, alpha *[8]F) {
	var centered [BlockSize]F
	for i, s := range src {
		centered[i] = F(s) - levelShift
	}
	for v := 0; v < 8; v++ {
		for u := 0; u < 8; u++ {
			var sum F
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					sum += centered[y*8+x] * cos[u][x] * cos[v][y]
				}
			}
			dst[v*8+u] = alpha[u] * alpha[v] * sum / 4
		}
	}
}
