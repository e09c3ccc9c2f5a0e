package dct

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("dct: unknown strategy")

// Strategy identifies one transform algorithm.
type Strategy int

// The strategies, one per kernel family. Each comment names the kernels
// the strategy dispatches to.
const (
	Reference     Strategy = iota // ReferenceIDCT and ReferenceFDCT
	Reference64                   // ReferenceIDCT64 and ReferenceFDCT64
	Separable                     // SeparableIDCT
	Symmetric                     // SymmetricIDCT
	QuadSymmetric                 // QuadSymmetricIDCT
	EvenOdd                       // EvenOddIDCT
	FixedPoint                    // FixedPointIDCT
	LLM                           // LLMIDCT and LLMFDCT
	AAN                           // AANIDCT
	AAN64                         // AANIDCT64
	AP922                         // AP922IDCT

	numStrategies
)

var strategyInfo = [numStrategies]struct {
	name      string
	inverse   InverseFunc
	forward   ForwardFunc
	tolerance int
}{
	Reference:     {"reference", ReferenceIDCT, ReferenceFDCT, 1},
	Reference64:   {"reference64", ReferenceIDCT64, referenceFDCT64To32, 1},
	Separable:     {"separable", SeparableIDCT, nil, 1},
	Symmetric:     {"symmetric", SymmetricIDCT, nil, 1},
	QuadSymmetric: {"quadsymmetric", QuadSymmetricIDCT, nil, 1},
	EvenOdd:       {"evenodd", EvenOddIDCT, nil, 1},
	FixedPoint:    {"fixedpoint", FixedPointIDCT, nil, 2},
	LLM:           {"llm", LLMIDCT, LLMFDCT, 1},
	AAN:           {"aan", AANIDCT, nil, 1},
	AAN64:         {"aan64", AANIDCT64, nil, 1},
	AP922:         {"ap922", AP922IDCT, nil, 1},
}

// referenceFDCT64To32 runs ReferenceFDCT64 and narrows the result.
func referenceFDCT64To32(dst *FloatCoefficients, src *Samples) {
	var wide FloatCoefficients64
	ReferenceFDCT64(&wide, src)
	for i, v := range wide {
		dst[i] = float32(v)
	}
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	all := make([]Strategy, numStrategies)
	for i := range all {
		all[i] = Strategy(i)
	}
	return all
}

// ParseStrategy returns the strategy with the given name, ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	for i, info := range strategyInfo {
		if strings.EqualFold(name, info.name) {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool {
	return s >= 0 && s < numStrategies
}

// String returns the name accepted by ParseStrategy, or "Strategy(n)" for
// an invalid s.
func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyInfo[s].name
}

// InverseFunc returns the inverse kernel for s.
// It panics if s is not valid.
func (s Strategy) InverseFunc() InverseFunc {
	return strategyInfo[s].inverse
}

// ForwardFunc returns the forward kernel for s. Strategies without a
// forward kernel of their own use ReferenceFDCT.
// It panics if s is not valid.
func (s Strategy) ForwardFunc() ForwardFunc {
	if f := strategyInfo[s].forward; f != nil {
		return f
	}
	return ReferenceFDCT
}

// HasForward reports whether s has a forward kernel of its own.
func (s Strategy) HasForward() bool {
	return s.Valid() && strategyInfo[s].forward != nil
}

// Tolerance returns the largest per-sample difference from ReferenceIDCT
// that the inverse kernel of s may produce.
func (s Strategy) Tolerance() int {
	if !s.Valid() {
		return 0
	}
	return strategyInfo[s].tolerance
}

// Inverse transforms src and returns the samples.
func (s Strategy) Inverse(src *Coefficients) Samples {
	var dst Samples
	s.InverseFunc()(&dst, src)
	return dst
}

// Forward transforms src and returns the coefficients.
func (s Strategy) Forward(src *Samples) FloatCoefficients {
	var dst FloatCoefficients
	s.ForwardFunc()(&dst, src)
	return dst
}
