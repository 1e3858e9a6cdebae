package analyzer

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RunResult pairs one target with its report, or with the input error that
// prevented analysis.
type RunResult struct {
	Target   string  `json:"target"`
	Report   *Report `json:"report,omitempty"`
	Error    string  `json:"error,omitempty"`
	Duration float64 `json:"duration_seconds"`
}

// Runner fans analyses out over a bounded worker pool with a global rate
// limit. Each target still gets exactly one pass; the runner adds no
// retries.
type Runner struct {
	Concurrency int // maximum in-flight analyses
	RateLimit   int // analyses started per second (global)
}

// Run analyzes every target and returns results in input order.
func (r *Runner) Run(ctx context.Context, a *Analyzer, targets []string) []RunResult {
	concurrency := r.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	limiter := rate.NewLimiter(rate.Limit(r.RateLimit), r.RateLimit)
	if r.RateLimit <= 0 {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}

	sem := make(chan struct{}, concurrency)
	results := make([]RunResult, len(targets))
	var wg sync.WaitGroup

	for i, target := range targets {
		wg.Add(1)
		go func(idx int, t string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			_ = limiter.Wait(ctx)

			start := time.Now()
			report, err := a.Analyze(ctx, t)
			out := RunResult{
				Target:   t,
				Report:   report,
				Duration: time.Since(start).Seconds(),
			}
			if err != nil {
				out.Error = err.Error()
			}
			results[idx] = out
		}(i, target)
	}

	wg.Wait()
	return results
}
