// Package harness drives batteries of wildcard comparison cases through
// the matcher realizations and aggregates pass/fail counts.
//
// A Case pairs a subject and a pattern with the expected outcome. The
// shipped batteries (WildCases, TameCases, EmptyCases, UnicodeCases)
// cover wildcard-heavy, wildcard-free, and empty-input comparisons; a
// case passes only when every realization it is run through agrees with
// the expectation, so the batteries double as a cross-check that the
// realizations stay behaviorally identical.
package harness

import (
	"runtime"
	"sync"

	wildmatch "github.com/armn3t/go-wildmatch"
)

// Names of the matcher realizations, as reported in Failure records.
const (
	RealizationCursor  = "cursor"  // wildmatch.Match
	RealizationIndexed = "indexed" // wildmatch.MatchPortable
	RealizationRunes   = "runes"   // wildmatch.MatchRunes
)

// Case is a single comparison: a subject string, a pattern, and the
// expected outcome.
type Case struct {
	Subject string
	Pattern string
	Want    bool
}

// Failure records one realization disagreeing with a case's expected
// outcome. A case where several realizations disagree produces one
// Failure per realization, but still counts as a single failed case.
type Failure struct {
	Realization string
	Case        Case
	Got         bool
}

// Result aggregates a battery run.
type Result struct {
	Passed   int
	Failed   int
	Failures []Failure
}

// OK reports whether every case in the run passed.
func (r Result) OK() bool { return r.Failed == 0 }

// Merge combines two results, appending failures in order.
func (r Result) Merge(o Result) Result {
	return Result{
		Passed:   r.Passed + o.Passed,
		Failed:   r.Failed + o.Failed,
		Failures: append(r.Failures, o.Failures...),
	}
}

// Run evaluates every case through both byte-wise realizations. A case
// passes only when both agree with the expected outcome.
func Run(cases []Case) Result {
	var res Result
	for _, c := range cases {
		cursor := wildmatch.Match(c.Pattern, c.Subject)
		indexed := wildmatch.MatchPortable(c.Pattern, c.Subject)
		if cursor == c.Want && indexed == c.Want {
			res.Passed++
			continue
		}
		res.Failed++
		if cursor != c.Want {
			res.Failures = append(res.Failures, Failure{RealizationCursor, c, cursor})
		}
		if indexed != c.Want {
			res.Failures = append(res.Failures, Failure{RealizationIndexed, c, indexed})
		}
	}
	return res
}

// RunRunes evaluates every case through the rune realization, for
// batteries whose '?' wildcards must consume whole code points.
func RunRunes(cases []Case) Result {
	var res Result
	for _, c := range cases {
		got := wildmatch.MatchRunes([]rune(c.Pattern), []rune(c.Subject))
		if got == c.Want {
			res.Passed++
			continue
		}
		res.Failed++
		res.Failures = append(res.Failures, Failure{RealizationRunes, c, got})
	}
	return res
}

// RunRepeat runs the battery reps times and sums the results. The
// matcher has no per-call setup cost, so this doubles as a coarse
// throughput measurement when timed by the caller.
func RunRepeat(cases []Case, reps int) Result {
	var res Result
	for r := 0; r < reps; r++ {
		res = res.Merge(Run(cases))
	}
	return res
}

// RunParallel splits the battery into chunks and evaluates them on
// separate goroutines, merging results in order. The matcher is pure, so
// concurrent calls need no coordination beyond collecting the counts.
//
// workers < 1 selects runtime.NumCPU(). For small batteries the spawn
// overhead exceeds the savings; RunParallel exists mainly to exercise
// concurrent callers.
func RunParallel(cases []Case, workers int) Result {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(cases) {
		workers = len(cases)
	}
	if workers <= 1 {
		return Run(cases)
	}

	chunkSize := (len(cases) + workers - 1) / workers
	chunks := make([][]Case, 0, workers)
	for i := 0; i < len(cases); i += chunkSize {
		end := i + chunkSize
		if end > len(cases) {
			end = len(cases)
		}
		chunks = append(chunks, cases[i:end])
	}

	results := make([]Result, len(chunks))
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for i := range chunks {
		go func(idx int) {
			defer wg.Done()
			results[idx] = Run(chunks[idx])
		}(i)
	}
	wg.Wait()

	var merged Result
	for _, r := range results {
		merged = merged.Merge(r)
	}
	return merged
}
