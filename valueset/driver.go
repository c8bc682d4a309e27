package valueset

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Job identifies one (p, a) sweep.
type Job struct {
	P uint64
	A uint64
}

// JobResult couples a job with its classification table.
type JobResult struct {
	Job     Job
	Records []Record
}

// SweepConfig drives sweeps over a set of primes.
type SweepConfig struct {
	Primes []uint64
	// AllA sweeps every parameter a in [0, p); otherwise only A is used.
	AllA bool
	A    uint64
	// NMax overrides the per-prime index bound; nil means the full period
	// p²−1.
	NMax func(p uint64) int
	// Workers bounds the number of concurrent (p, a) sweeps; 0 means
	// runtime.NumCPU().
	Workers int
}

// Jobs expands the configuration into its (p, a) pairs in deterministic
// order: primes as given, a ascending.
func (c SweepConfig) Jobs() []Job {
	var jobs []Job
	for _, p := range c.Primes {
		if c.AllA {
			for a := uint64(0); a < p; a++ {
				jobs = append(jobs, Job{P: p, A: a})
			}
		} else {
			jobs = append(jobs, Job{P: p, A: c.A})
		}
	}
	return jobs
}

// Run executes every configured sweep. Jobs are independent and run
// concurrently; results come back in job order regardless of completion
// order, so a repeated run yields an identical stream.
func Run(ctx context.Context, cfg SweepConfig) ([]JobResult, error) {
	jobs := cfg.Jobs()
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no sweep jobs configured")
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	out := make([]JobResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, jb := range jobs {
		i, jb := i, jb
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			nMax := Period(jb.P)
			if cfg.NMax != nil {
				nMax = cfg.NMax(jb.P)
			}
			records := make([]Record, 0, nMax)
			err := SweepN(jb.P, jb.A, nMax, func(r Record) error {
				records = append(records, r)
				return nil
			})
			if err != nil {
				return fmt.Errorf("sweep p=%d a=%d: %w", jb.P, jb.A, err)
			}
			out[i] = JobResult{Job: jb, Records: records}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
