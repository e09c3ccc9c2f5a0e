// dctbench times every DCT strategy on fixed test blocks.
//
// Usage:
//
//	dctbench [options]
//
// Options:
//
//	-n <iterations>    transforms per measurement (default 200000)
//	-strategy <name>   time a single strategy
//	-batch <blocks>    also time InverseBatch over this many blocks (default 0)
//	-version           show version information
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mrjoshuak/go-dct/dct"
	"golang.org/x/sys/cpu"
)

const version = "1.0.0"

// coefficientBlock is a dequantized block from a real JPEG stream.
var coefficientBlock = dct.Coefficients{
	568, 0, 0, -4, -4, 0, 4, 0,
	-27, 9, -4, -4, 0, -5, 5, -5,
	-49, -4, 4, 4, 0, 0, 0, 0,
	-12, -4, 0, 0, 5, 0, 0, 0,
	-14, -5, 0, 0, 0, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 1,
}

// sampleBlock has a flat top row and a hard edge at both sample extremes.
var sampleBlock = dct.Samples{
	128, 128, 128, 128, 128, 128, 128, 128,
	128, 255, 255, 255, 255, 255, 255, 255,
	128, 255, 255, 255, 255, 255, 255, 255,
	128, 255, 255, 255, 255, 255, 255, 255,
	128, 255, 128, 128, 128, 128, 128, 128,
	128, 255, 128, 0, 0, 0, 0, 0,
	128, 255, 128, 0, 0, 0, 0, 0,
	128, 255, 128, 0, 0, 0, 0, 0,
}

func main() {
	iterations := flag.Int("n", 200000, "transforms per measurement")
	strategyName := flag.String("strategy", "", "time a single strategy")
	batch := flag.Int("batch", 0, "also time InverseBatch over this many blocks")
	showVersion := flag.Bool("version", false, "show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dctbench [options]\n\n")
		fmt.Fprintf(os.Stderr, "Time DCT strategies on fixed test blocks.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("dctbench version %s\n", version)
		os.Exit(0)
	}
	if *iterations <= 0 || *batch < 0 || flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	strategies := dct.Strategies()
	if *strategyName != "" {
		s, err := dct.ParseStrategy(*strategyName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dctbench: %v\n", err)
			os.Exit(2)
		}
		strategies = []dct.Strategy{s}
	}

	fmt.Println(cpuLine())
	report(os.Stdout, strategies, *iterations)
	if *batch > 0 {
		reportBatch(os.Stdout, strategies, *batch)
	}
}

// cpuLine describes the SIMD features of the host.
func cpuLine() string {
	var features []string
	switch runtime.GOARCH {
	case "amd64", "386":
		for _, f := range []struct {
			name string
			has  bool
		}{
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		} {
			if f.has {
				features = append(features, f.name)
			}
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			features = append(features, "asimd")
		}
		if cpu.ARM64.HasFPHP {
			features = append(features, "fphp")
		}
		if cpu.ARM64.HasSVE {
			features = append(features, "sve")
		}
	}
	if len(features) == 0 {
		features = append(features, "none")
	}
	return fmt.Sprintf("cpu: %s/%s, %d procs, features: %s",
		runtime.GOOS, runtime.GOARCH, runtime.GOMAXPROCS(0), strings.Join(features, " "))
}

type timing struct {
	strategy dct.Strategy
	inverse  time.Duration
	forward  time.Duration // zero when the strategy has no forward kernel
}

// measure times n inverse transforms of coefficientBlock and, for
// strategies with their own forward kernel, n forward transforms of
// sampleBlock.
func measure(s dct.Strategy, n int) timing {
	t := timing{strategy: s}

	idct := s.InverseFunc()
	var out dct.Samples
	start := time.Now()
	for i := 0; i < n; i++ {
		idct(&out, &coefficientBlock)
	}
	t.inverse = time.Since(start) / time.Duration(n)

	if s.HasForward() {
		fdct := s.ForwardFunc()
		var f dct.FloatCoefficients
		start = time.Now()
		for i := 0; i < n; i++ {
			fdct(&f, &sampleBlock)
		}
		t.forward = time.Since(start) / time.Duration(n)
	}
	return t
}

func report(w io.Writer, strategies []dct.Strategy, n int) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "strategy\tinverse ns/op\tforward ns/op\t")
	for _, s := range strategies {
		t := measure(s, n)
		fwd := "-"
		if t.forward > 0 {
			fwd = fmt.Sprint(t.forward.Nanoseconds())
		}
		fmt.Fprintf(tw, "%v\t%d\t%s\t\n", s, t.inverse.Nanoseconds(), fwd)
	}
	tw.Flush()
}

// reportBatch times InverseBatch over n copies of coefficientBlock and
// prints the throughput in blocks per second.
func reportBatch(w io.Writer, strategies []dct.Strategy, n int) {
	src := make([]dct.Coefficients, n)
	for i := range src {
		src[i] = coefficientBlock
	}
	dst := make([]dct.Samples, n)
	workers := dct.GetParallelConfig().NumWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	fmt.Fprintf(w, "\nbatch of %d blocks, %d workers:\n", n, workers)
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "strategy\tms\tblocks/s\t")
	for _, s := range strategies {
		start := time.Now()
		dct.InverseBatch(s, dst, src)
		elapsed := time.Since(start)
		fmt.Fprintf(tw, "%v\t%.2f\t%.0f\t\n", s,
			float64(elapsed.Microseconds())/1000, float64(n)/elapsed.Seconds())
	}
	tw.Flush()
}
