package vecfile

import (
	"math"
	"math/rand"

	"github.com/mrjoshuak/go-dct/dct"
)

// Generate builds a vector file of n random blocks seeded by seed. Expected
// outputs come from the double precision reference transforms.
//
// Inverse inputs are the rounded forward transform of random samples, so
// they span the coefficient range real encoders produce.
func Generate(kind Kind, n int, seed int64) *File {
	rng := rand.New(rand.NewSource(seed))
	f := &File{Kind: kind}
	switch kind {
	case KindInverse:
		f.Inverse = make([]InverseRecord, n)
		for i := range f.Inverse {
			s := randomSamples(rng)
			var wide dct.FloatCoefficients64
			dct.ReferenceFDCT64(&wide, &s)
			rec := &f.Inverse[i]
			rec.Coefficients = wide.Round()
			dct.ReferenceIDCT64(&rec.Samples, &rec.Coefficients)
		}
	case KindForward:
		f.Forward = make([]ForwardRecord, n)
		for i := range f.Forward {
			rec := &f.Forward[i]
			rec.Samples = randomSamples(rng)
			var wide dct.FloatCoefficients64
			dct.ReferenceFDCT64(&wide, &rec.Samples)
			for j, v := range wide {
				rec.Coefficients[j] = float32(v)
			}
		}
	}
	return f
}

func randomSamples(rng *rand.Rand) dct.Samples {
	var s dct.Samples
	for i := range s {
		s[i] = uint8(rng.Intn(256))
	}
	return s
}

// ForwardTolerance is the largest coefficient error Check accepts from a
// forward kernel.
const ForwardTolerance = 1e-2

// Result summarizes a strategy's agreement with a vector file.
type Result struct {
	Records    int
	Failures   int     // records outside tolerance
	MaxSample  int     // worst sample deviation (inverse files)
	MaxCoeff   float64 // worst coefficient deviation (forward files)
	FirstIndex int     // index of the first failing record, or -1
}

// OK reports whether every record was within tolerance.
func (r Result) OK() bool {
	return r.Failures == 0
}

// Check runs strategy s over every record of f. Inverse records must be
// reproduced within s.Tolerance() samples, forward records within
// ForwardTolerance.
func Check(f *File, s dct.Strategy) Result {
	res := Result{Records: f.Len(), FirstIndex: -1}
	fail := func(i int) {
		res.Failures++
		if res.FirstIndex < 0 {
			res.FirstIndex = i
		}
	}

	switch f.Kind {
	case KindInverse:
		idct := s.InverseFunc()
		for i := range f.Inverse {
			rec := &f.Inverse[i]
			var got dct.Samples
			idct(&got, &rec.Coefficients)
			d := dct.MaxAbsDiff(&rec.Samples, &got)
			res.MaxSample = max(res.MaxSample, d)
			if d > s.Tolerance() {
				fail(i)
			}
		}
	case KindForward:
		fdct := s.ForwardFunc()
		for i := range f.Forward {
			rec := &f.Forward[i]
			var got dct.FloatCoefficients
			fdct(&got, &rec.Samples)
			var worst float64
			for j := range got {
				worst = max(worst, math.Abs(float64(got[j])-float64(rec.Coefficients[j])))
			}
			res.MaxCoeff = max(res.MaxCoeff, worst)
			if worst > ForwardTolerance || math.IsNaN(worst) {
				fail(i)
			}
		}
	}
	return res
}
