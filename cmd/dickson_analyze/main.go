// Command dickson_analyze loads a swept records table and prints the
// cardinality-coverage, permutation-index, and parameter-variation
// summaries for every prime it contains.
package main

import (
	"flag"
	"fmt"
	"log"

	"dickson-valuesets/analysis"
	"dickson-valuesets/results"
)

func main() {
	inPath := flag.String("in", "reversed_dickson_values.csv", "records table (.csv or .jsonl)")
	flag.Parse()

	records, err := results.Load(*inPath)
	if err != nil {
		log.Fatalf("load records: %v", err)
	}
	ps := analysis.Primes(records)
	fmt.Printf("Loaded %d records covering %d primes from %s\n\n", len(records), len(ps), *inPath)

	fmt.Println("Cardinality coverage (does every cardinality 1..p-1 appear?)")
	for _, p := range ps {
		cov := analysis.CoverageFor(records, p)
		fmt.Printf("  p = %-3d observed %v", p, cov.Observed)
		if len(cov.Missing) > 0 {
			fmt.Printf("  MISSING %v", cov.Missing)
		}
		fmt.Printf("  permutations: %v\n", cov.HasPermutation)
	}
	fmt.Println()

	fmt.Println("Permutation indices vs gcd(n, p^2-1) = 1")
	for _, p := range ps {
		rep := analysis.PermutationIndicesFor(records, p)
		fmt.Printf("  p = %-3d observed %d predicted %d criterion holds: %v  p^2-1 = %v\n",
			p, len(rep.Observed), rep.ExpectedCount, rep.CriterionHolds, rep.PeriodFactors)
	}
	fmt.Println()

	fmt.Println("Parameter a variation (cardinality distribution per a)")
	for _, p := range ps {
		rep := analysis.ParameterInvariance(records, p)
		if rep.Reference == nil {
			fmt.Printf("  p = %-3d no nonzero-a records\n", p)
			continue
		}
		fmt.Printf("  p = %-3d nonzero-a invariant: %v", p, rep.NonzeroInvariant)
		if len(rep.Deviating) > 0 {
			fmt.Printf("  deviating a: %v", rep.Deviating)
		}
		if rep.ZeroHistogram != nil {
			fmt.Printf("  a=0 matches: %v", rep.ZeroMatches)
		}
		fmt.Println()
	}
}
