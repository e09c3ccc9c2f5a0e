package dct

import (
	"runtime"
	"sync"
)

// ParallelConfig configures how batch transforms are spread over goroutines.
type ParallelConfig struct {
	// NumWorkers is the number of worker goroutines. 0 means runtime.GOMAXPROCS(0).
	NumWorkers int

	// GrainSize is the minimum number of blocks per worker before
	// parallelization. If the batch holds fewer than GrainSize * NumWorkers
	// blocks, it runs sequentially.
	GrainSize int
}

// DefaultParallelConfig returns the default parallel configuration.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		NumWorkers: 0,  // Use all available CPUs
		GrainSize:  64, // One block is well under a microsecond
	}
}

var (
	parallelConfig   = DefaultParallelConfig()
	parallelConfigMu sync.RWMutex
)

// SetParallelConfig sets the global parallel configuration.
func SetParallelConfig(config ParallelConfig) {
	parallelConfigMu.Lock()
	defer parallelConfigMu.Unlock()
	parallelConfig = config
}

// GetParallelConfig returns the current parallel configuration.
func GetParallelConfig() ParallelConfig {
	parallelConfigMu.RLock()
	defer parallelConfigMu.RUnlock()
	return parallelConfig
}

func effectiveWorkers(config ParallelConfig) int {
	if config.NumWorkers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return config.NumWorkers
}

// parallelFor calls fn over contiguous ranges covering [0, n), one range
// per worker.
func parallelFor(n int, fn func(start, end int)) {
	config := GetParallelConfig()
	numWorkers := effectiveWorkers(config)

	if n <= config.GrainSize*numWorkers || numWorkers == 1 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := (n + numWorkers - 1) / numWorkers
	for start := 0; start < n; start += chunkSize {
		start := start
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(start, end)
		}()
	}
	wg.Wait()
}

// InverseBatch applies the inverse kernel of s to every block of src,
// writing dst[i] from src[i]. It panics if dst is shorter than src.
func InverseBatch(s Strategy, dst []Samples, src []Coefficients) {
	if len(dst) < len(src) {
		panic("dct: destination slice too small")
	}
	idct := s.InverseFunc()
	parallelFor(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			idct(&dst[i], &src[i])
		}
	})
}

// ForwardBatch applies the forward kernel of s to every block of src,
// writing dst[i] from src[i]. It panics if dst is shorter than src.
func ForwardBatch(s Strategy, dst []FloatCoefficients, src []Samples) {
	if len(dst) < len(src) {
		panic("dct: destination slice too small")
	}
	fdct := s.ForwardFunc()
	parallelFor(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			fdct(&dst[i], &src[i])
		}
	})
}
