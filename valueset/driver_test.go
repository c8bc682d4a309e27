package valueset

import (
	"context"
	"testing"
)

func TestRunJobOrder(t *testing.T) {
	cfg := SweepConfig{Primes: []uint64{5, 7}, AllA: true, Workers: 4}
	jobs := cfg.Jobs()
	if len(jobs) != 12 {
		t.Fatalf("job count %d want 12", len(jobs))
	}
	if jobs[0] != (Job{P: 5, A: 0}) || jobs[5] != (Job{P: 7, A: 0}) || jobs[11] != (Job{P: 7, A: 6}) {
		t.Fatalf("unexpected job ordering: %v", jobs)
	}
}

func TestRunMatchesSequentialSweep(t *testing.T) {
	cfg := SweepConfig{Primes: []uint64{5, 7}, AllA: true, Workers: 3}
	results, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	jobs := cfg.Jobs()
	if len(results) != len(jobs) {
		t.Fatalf("result count %d want %d", len(results), len(jobs))
	}
	for i, res := range results {
		if res.Job != jobs[i] {
			t.Fatalf("result %d carries job %v want %v", i, res.Job, jobs[i])
		}
		direct, err := Sweep(res.Job.P, res.Job.A)
		if err != nil {
			t.Fatalf("Sweep: %v", err)
		}
		if Digest(res.Records) != Digest(direct) {
			t.Fatalf("job %v: concurrent records differ from sequential sweep", res.Job)
		}
	}
}

func TestRunSingleParameter(t *testing.T) {
	cfg := SweepConfig{Primes: []uint64{11}, A: 1, Workers: 1}
	results, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("result count %d want 1", len(results))
	}
	if got := len(results[0].Records); got != Period(11) {
		t.Fatalf("record count %d want %d", got, Period(11))
	}
}

func TestRunEmptyConfig(t *testing.T) {
	if _, err := Run(context.Background(), SweepConfig{}); err == nil {
		t.Fatal("empty config must fail")
	}
}

func TestRunHonorsNMaxOverride(t *testing.T) {
	cfg := SweepConfig{
		Primes: []uint64{5},
		A:      1,
		NMax:   func(p uint64) int { return 10 },
	}
	results, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := len(results[0].Records); got != 10 {
		t.Fatalf("record count %d want 10", got)
	}
}
