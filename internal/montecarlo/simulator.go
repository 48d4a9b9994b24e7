// Package montecarlo samples the quality model under risk-conditioned noise.
package montecarlo

import (
	"context"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/quality"
)

const (
	defaultWorkers = 4
	// Runs smaller than this are sampled on a single goroutine.
	parallelThreshold = 100
	// Samples drawn between context checks.
	cancelCheckEvery = 1024
)

// Result carries the raw sample set of one simulation.
type Result struct {
	Samples []float64
	StdDev  float64
	// Quality is the noise-free model value for the baseline.
	Quality float64
	// NoiseStd is the standard deviation of the injected noise.
	NoiseStd float64
	// Deterministic is set when aggregate risk was zero and no noise was drawn.
	Deterministic bool
	Seed          uint64
}

// Simulator is safe for concurrent use; it holds no mutable state.
type Simulator struct {
	coef    domain.Coefficients
	seed    uint64
	seeded  bool
	workers int
}

type Option func(*Simulator)

// WithSeed fixes the root seed. Chunk seeds derive from it, so a seeded run
// is reproducible regardless of goroutine scheduling.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.seed = seed
		s.seeded = true
	}
}

// WithWorkers sets how many goroutines share a large run.
func WithWorkers(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.workers = n
		}
	}
}

func NewSimulator(coef domain.Coefficients, opts ...Option) *Simulator {
	s := &Simulator{coef: coef, workers: defaultWorkers}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NoiseStd is the noise scale for an aggregate risk value: zero at no risk
// and NoiseScale at the maximum.
func NoiseStd(coef domain.Coefficients, sumRisks float64) float64 {
	return coef.NoiseScale * sumRisks / coef.RiskDivisor
}

// Run evaluates the baseline and, unless aggregate risk is zero, draws
// iterations noisy samples around it. With zero risk exactly one sample is
// returned whatever iterations says.
func (s *Simulator) Run(ctx context.Context, baseline domain.Completion, iterations int, sumRisks float64) (*Result, error) {
	if err := baseline.Validate(); err != nil {
		return nil, err
	}
	if err := domain.ValidateSumRisks(sumRisks); err != nil {
		return nil, err
	}

	q := quality.Compute(s.coef, baseline)

	if sumRisks == 0 {
		return &Result{
			Samples:       []float64{q},
			Quality:       q,
			Deterministic: true,
		}, nil
	}

	if iterations < 1 {
		return nil, domain.InvalidInputf("iterations must be positive, got %d", iterations)
	}

	seed := s.seed
	if !s.seeded {
		seed = rand.Uint64()
	}
	noise := NoiseStd(s.coef, sumRisks)

	samples, err := s.sample(ctx, q, noise, iterations, seed)
	if err != nil {
		return nil, err
	}

	var std float64
	if len(samples) > 1 {
		std = stat.StdDev(samples, nil)
	}

	return &Result{
		Samples:  samples,
		StdDev:   std,
		Quality:  q,
		NoiseStd: noise,
		Seed:     seed,
	}, nil
}

// sample fills a preallocated slice in contiguous chunks, one goroutine per
// chunk, each with its own PCG stream keyed by the chunk index.
func (s *Simulator) sample(ctx context.Context, q, noise float64, iterations int, seed uint64) ([]float64, error) {
	workers := s.workers
	if iterations < parallelThreshold {
		workers = 1
	}
	samples := make([]float64, iterations)
	per := iterations / workers

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for g := 0; g < workers; g++ {
		lo := g * per
		hi := lo + per
		if g == workers-1 {
			hi = iterations
		}
		wg.Add(1)
		go func(g int, chunk []float64) {
			defer wg.Done()
			dist := distuv.Normal{
				Mu:    q,
				Sigma: noise,
				Src:   rand.NewPCG(seed, uint64(g)),
			}
			for i := range chunk {
				if i%cancelCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						errs[g] = err
						return
					}
				}
				chunk[i] = quality.Clamp(dist.Rand())
			}
		}(g, samples[lo:hi])
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return samples, nil
}
