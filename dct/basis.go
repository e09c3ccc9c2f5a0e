package dct

import "math"

// fixedBits is the number of fraction bits in fixedBasis. A row of
// fixedBasis sums to at most 43284 in magnitude, so the column pass of
// FixedPointIDCT stays inside int32 for int16 coefficients.
const fixedBits = 13

// fixedScale is the scale applied to the normalized basis for the
// fixed-point kernel.
const fixedScale = 1 << fixedBits

// alpha32 and alpha64 hold C(k): 1/sqrt(2) for k == 0, otherwise 1.
var (
	alpha32 = [8]float32{math.Sqrt2 / 2, 1, 1, 1, 1, 1, 1, 1}
	alpha64 = [8]float64{math.Sqrt2 / 2, 1, 1, 1, 1, 1, 1, 1}
)

// Basis tables, built once in init and never modified afterwards.
var (
	// cosTable[k][n] = cos((2n+1)kπ/16).
	cosTable   [8][8]float32
	cosTable64 [8][8]float64

	// normBasis[n][k] = C(k)·cos((2n+1)kπ/16), indexed spatial position
	// first so the separable passes walk one row at a time.
	normBasis [8][8]float32
)

// fixedBasis is normBasis scaled by fixedScale and rounded to nearest.
// Row n holds the weights for spatial position n.
var fixedBasis = [8][8]int32{
	{5793, 8035, 7568, 6811, 5793, 4551, 3135, 1598},
	{5793, 6811, 3135, -1598, -5793, -8035, -7568, -4551},
	{5793, 4551, -3135, -8035, -5793, 1598, 7568, 6811},
	{5793, 1598, -7568, -4551, 5793, 6811, -3135, -8035},
	{5793, -1598, -7568, 4551, 5793, -6811, -3135, 8035},
	{5793, -4551, -3135, 8035, -5793, -1598, 7568, -6811},
	{5793, -6811, 3135, 1598, -5793, 8035, -7568, 4551},
	{5793, -8035, 7568, -6811, 5793, -4551, 3135, -1598},
}

func init() {
	for k := 0; k < 8; k++ {
		for n := 0; n < 8; n++ {
			c := math.Cos(float64((2*n+1)*k) * math.Pi / 16)
			cosTable64[k][n] = c
			cosTable[k][n] = float32(c)
			normBasis[n][k] = float32(alpha64[k] * c)
		}
	}
}
