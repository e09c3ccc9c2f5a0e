// dctcheck verifies that every DCT strategy agrees with the reference
// transform, and optionally checks or writes conformance vector files.
//
// Usage:
//
//	dctcheck [options]
//
// Options:
//
//	-q, --quiet            Only output failures. Exit code indicates pass/fail.
//	-n <count>             Number of random blocks per check (default 1000).
//	-seed <s>              Random seed (default 42).
//	-strategy <name>       Check a single strategy instead of all of them.
//	-vectors <file>        Check strategies against a vector file.
//	-write-vectors <file>  Write a vector file generated from the reference.
//	-kind <k>              Vector kind to write: inverse or forward (default inverse).
//	-z <c>                 Vector compression: none, zlib or zstd (default zstd).
//	-h, --help             Show this help message.
//	--version              Show version information.
//
// Exit codes:
//
//	0: All strategies within tolerance
//	1: A strategy exceeded its tolerance or failed a vector file
//	2: Error (bad arguments, unreadable file, etc.)
package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/mrjoshuak/go-dct/dct"
	"github.com/mrjoshuak/go-dct/internal/vecfile"
)

const version = "1.0.0"

// errUsage marks argument errors, which print the usage text.
var errUsage = errors.New("usage")

type options struct {
	quiet      bool
	count      int
	seed       int64
	strategies []dct.Strategy
	vectors    string
	writePath  string
	kind       vecfile.Kind
	comp       vecfile.Compression
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	switch {
	case errors.Is(err, errHelp):
		printUsage(stdout)
		return 0
	case errors.Is(err, errVersion):
		fmt.Fprintf(stdout, "dctcheck version %s\n", version)
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "dctcheck: %v\n", err)
		printUsage(stderr)
		return 2
	case err != nil:
		fmt.Fprintf(stderr, "dctcheck: %v\n", err)
		return 2
	}

	if opts.writePath != "" {
		if err := writeVectors(opts); err != nil {
			fmt.Fprintf(stderr, "dctcheck: %v\n", err)
			return 2
		}
		if !opts.quiet {
			fmt.Fprintf(stdout, "wrote %d %v vectors to %s (%v)\n", opts.count, opts.kind, opts.writePath, opts.comp)
		}
	}

	failed := false
	for _, s := range opts.strategies {
		r := selfCheck(s, opts.count, opts.seed)
		if !r.ok() {
			failed = true
			fmt.Fprintf(stderr, "%v: FAIL: %s\n", s, r)
		} else if !opts.quiet {
			fmt.Fprintf(stdout, "%v: OK (%s)\n", s, r)
		}
	}

	if opts.vectors != "" {
		f, err := readVectors(opts.vectors)
		if err != nil {
			fmt.Fprintf(stderr, "dctcheck: %v\n", err)
			return 2
		}
		for _, s := range opts.strategies {
			res := vecfile.Check(f, s)
			if !res.OK() {
				failed = true
				fmt.Fprintf(stderr, "%s: %v: FAIL: %d of %d records outside tolerance (first %d)\n",
					opts.vectors, s, res.Failures, res.Records, res.FirstIndex)
				if !opts.quiet && f.Kind == vecfile.KindInverse {
					rec := &f.Inverse[res.FirstIndex]
					got := s.Inverse(&rec.Coefficients)
					fmt.Fprintf(stderr, "coefficients:\n%swant:\n%sgot:\n%s", &rec.Coefficients, &rec.Samples, &got)
				}
			} else if !opts.quiet {
				fmt.Fprintf(stdout, "%s: %v: OK (%d %v records)\n", opts.vectors, s, res.Records, f.Kind)
			}
		}
	}

	if failed {
		return 1
	}
	return 0
}

var (
	errHelp    = errors.New("help requested")
	errVersion = errors.New("version requested")
)

func parseArgs(args []string) (*options, error) {
	opts := &options{
		count:      1000,
		seed:       42,
		strategies: dct.Strategies(),
		kind:       vecfile.KindInverse,
		comp:       vecfile.Zstd,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		// value returns the argument following an option.
		value := func() (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("%w: %s requires a value", errUsage, arg)
			}
			i++
			return args[i], nil
		}

		switch arg {
		case "-q", "--quiet":
			opts.quiet = true
		case "-h", "--help":
			return nil, errHelp
		case "--version":
			return nil, errVersion
		case "-n", "-seed", "-strategy", "-vectors", "-write-vectors", "-kind", "-z":
			v, err := value()
			if err != nil {
				return nil, err
			}
			if err := opts.set(arg, v); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: unknown option %s", errUsage, arg)
		}
	}
	return opts, nil
}

func (o *options) set(name, v string) error {
	switch name {
	case "-n":
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > vecfile.MaxRecords {
			return fmt.Errorf("%w: invalid count %q", errUsage, v)
		}
		o.count = n
	case "-seed":
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: invalid seed %q", errUsage, v)
		}
		o.seed = s
	case "-strategy":
		s, err := dct.ParseStrategy(v)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		o.strategies = []dct.Strategy{s}
	case "-vectors":
		o.vectors = v
	case "-write-vectors":
		o.writePath = v
	case "-kind":
		switch strings.ToLower(v) {
		case "inverse":
			o.kind = vecfile.KindInverse
		case "forward":
			o.kind = vecfile.KindForward
		default:
			return fmt.Errorf("%w: invalid kind %q", errUsage, v)
		}
	case "-z":
		c, err := vecfile.ParseCompression(v)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		o.comp = c
	}
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: dctcheck [options]

Verify DCT strategies against the reference transform.

Options:
  -q, --quiet            Only output failures. Exit code indicates pass/fail.
  -n <count>             Number of random blocks per check (default 1000).
  -seed <s>              Random seed (default 42).
  -strategy <name>       Check a single strategy instead of all of them.
  -vectors <file>        Check strategies against a vector file.
  -write-vectors <file>  Write a vector file generated from the reference.
  -kind <k>              Vector kind to write: inverse or forward (default inverse).
  -z <c>                 Vector compression: none, zlib or zstd (default zstd).
  -h, --help             Show this help message.
  --version              Show version information.

Strategies:
  `+strategyNames()+`

Exit codes:
  0: All strategies within tolerance
  1: A strategy exceeded its tolerance or failed a vector file
  2: Error (bad arguments, unreadable file, etc.)
`)
}

func strategyNames() string {
	var names []string
	for _, s := range dct.Strategies() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

// checkResult summarizes one strategy's self check.
type checkResult struct {
	blocks     int
	tolerance  int
	maxInverse int // worst deviation from ReferenceIDCT
	maxRound   int // worst forward/inverse round trip deviation
	failures   int
}

func (r checkResult) ok() bool {
	return r.failures == 0
}

func (r checkResult) String() string {
	return fmt.Sprintf("%d blocks, max deviation %d, round trip %d, tolerance %d, %d failures",
		r.blocks, r.maxInverse, r.maxRound, r.tolerance, r.failures)
}

// selfCheck compares s with the reference on random blocks, and checks
// that its forward and inverse kernels round trip random samples.
func selfCheck(s dct.Strategy, n int, seed int64) checkResult {
	rng := rand.New(rand.NewSource(seed))
	r := checkResult{blocks: n, tolerance: s.Tolerance()}
	idct := s.InverseFunc()
	fdct := s.ForwardFunc()

	for i := 0; i < n; i++ {
		var samples dct.Samples
		for j := range samples {
			samples[j] = uint8(rng.Intn(256))
		}

		var f dct.FloatCoefficients
		fdct(&f, &samples)
		coeffs := f.Round()

		var want, got dct.Samples
		dct.ReferenceIDCT(&want, &coeffs)
		idct(&got, &coeffs)

		d := dct.MaxAbsDiff(&want, &got)
		rt := dct.MaxAbsDiff(&samples, &got)
		r.maxInverse = max(r.maxInverse, d)
		r.maxRound = max(r.maxRound, rt)
		if d > r.tolerance || rt > r.tolerance+1 {
			r.failures++
		}
	}
	return r
}

func writeVectors(opts *options) error {
	f := vecfile.Generate(opts.kind, opts.count, opts.seed)
	out, err := os.Create(opts.writePath)
	if err != nil {
		return err
	}
	if err := vecfile.Encode(out, f, opts.comp); err != nil {
		out.Close()
		return fmt.Errorf("%s: %w", opts.writePath, err)
	}
	return out.Close()
}

func readVectors(path string) (*vecfile.File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	f, err := vecfile.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
