package dct

import (
	"math"
	"testing"
)

const constantTolerance = 1e-6

func checkConstant(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > constantTolerance {
		t.Errorf("%s = %.10f, want %.10f", name, got, want)
	}
}

func TestLLMConstants(t *testing.T) {
	tests := []struct {
		name      string
		got, want float64
	}{
		{"llmR2", llmR2, math.Sqrt2},
		{"llmR2C6", llmR2C6, math.Sqrt2 * math.Cos(3*math.Pi/8)},
		{"llmR2C6 (sin)", llmR2C6, math.Sqrt2 * math.Sin(math.Pi/8)},
		{"llmR2C2", llmR2C2, math.Sqrt2 * math.Cos(math.Pi/8)},
		{"llmC3", llmC3, math.Cos(3 * math.Pi / 16)},
		{"llmS3", llmS3, math.Sin(3 * math.Pi / 16)},
		{"llmC1", llmC1, math.Cos(math.Pi / 16)},
		{"llmS1", llmS1, math.Sin(math.Pi / 16)},
		{"llmR2C1", llmR2C1, math.Sqrt2 * math.Cos(math.Pi/16)},
		{"llmR2S1", llmR2S1, math.Sqrt2 * math.Sin(math.Pi/16)},
		{"llmR2C3", llmR2C3, math.Sqrt2 * math.Cos(3*math.Pi/16)},
		{"llmR2S3", llmR2S3, math.Sqrt2 * math.Sin(3*math.Pi/16)},
		{"llmInvR2", llmInvR2, 1 / math.Sqrt2},
		{"llmScale", llmScale, 1 / (2 * math.Sqrt2) / (2 * math.Sqrt2)},
	}
	for _, tt := range tests {
		checkConstant(t, tt.name, tt.got, tt.want)
	}
}

func TestAANConstants(t *testing.T) {
	checkConstant(t, "aanC2x2", aanC2x2, 2*math.Cos(math.Pi/8))
	checkConstant(t, "aanS2x2", aanS2x2, 2*math.Sin(math.Pi/8))
	checkConstant(t, "aanR2", aanR2, math.Sqrt2)
	checkConstant(t, "aanDiff", aanDiff, 2*(math.Cos(math.Pi/8)-math.Sin(math.Pi/8)))
	checkConstant(t, "aanSum", aanSum, 2*(math.Cos(math.Pi/8)+math.Sin(math.Pi/8)))

	for k := 0; k < 8; k++ {
		want := alpha64[k] * math.Cos(float64(k)*math.Pi/16) / 2
		checkConstant(t, "aanScale", float64(aanScale[k]), want)
		checkConstant(t, "aanScale64", aanScale64[k], want)
	}
}

func TestAP922Constants(t *testing.T) {
	g := func(k int) float64 { return math.Cos(float64(k) * math.Pi / 16) }

	checkConstant(t, "ap922T1", ap922T1, g(6)/g(2))
	checkConstant(t, "ap922T2", ap922T2, g(7)/g(1))
	checkConstant(t, "ap922T3", ap922T3, g(5)/g(3))
	checkConstant(t, "ap922G4", ap922G4, g(4))

	for i, r := range []int{4, 1, 2, 3} {
		for k := 1; k <= 7; k++ {
			checkConstant(t, "ap922Table", float64(ap922Table[i][k-1]), g(r)*g(k)/4)
		}
	}
}

func TestBasisTables(t *testing.T) {
	for k := 0; k < 8; k++ {
		for n := 0; n < 8; n++ {
			c := math.Cos(float64((2*n+1)*k) * math.Pi / 16)
			checkConstant(t, "cosTable", float64(cosTable[k][n]), c)
			checkConstant(t, "cosTable64", cosTable64[k][n], c)
			checkConstant(t, "normBasis", float64(normBasis[n][k]), alpha64[k]*c)
		}
	}
	checkConstant(t, "alpha32[0]", float64(alpha32[0]), 1/math.Sqrt2)
}
