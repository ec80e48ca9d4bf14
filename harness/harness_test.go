package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ---------------------------------------------------------------------------
// Shipped batteries
// ---------------------------------------------------------------------------

func TestWildBattery(t *testing.T) {
	res := Run(WildCases())
	assert.True(t, res.OK(), "failures: %+v", res.Failures)
	assert.Equal(t, len(WildCases()), res.Passed)
}

func TestTameBattery(t *testing.T) {
	res := Run(TameCases())
	assert.True(t, res.OK(), "failures: %+v", res.Failures)
	assert.Equal(t, len(TameCases()), res.Passed)
}

func TestEmptyBattery(t *testing.T) {
	res := Run(EmptyCases())
	assert.True(t, res.OK(), "failures: %+v", res.Failures)
	assert.Equal(t, len(EmptyCases()), res.Passed)
}

func TestUnicodeBattery(t *testing.T) {
	res := RunRunes(UnicodeCases())
	assert.True(t, res.OK(), "failures: %+v", res.Failures)
	assert.Equal(t, len(UnicodeCases()), res.Passed)
}

// ---------------------------------------------------------------------------
// Result accounting
// ---------------------------------------------------------------------------

func TestRunCountsDisagreements(t *testing.T) {
	cases := []Case{
		{Subject: "abc", Pattern: "abc", Want: true},
		{Subject: "abc", Pattern: "abc", Want: false}, // deliberately wrong
		{Subject: "abc", Pattern: "ab*", Want: true},
	}

	res := Run(cases)
	assert.Equal(t, 2, res.Passed)
	assert.Equal(t, 1, res.Failed)
	assert.False(t, res.OK())

	// Both byte-wise realizations disagree with the bogus expectation, so
	// the single failed case yields one Failure per realization.
	require.Len(t, res.Failures, 2)
	assert.Equal(t, RealizationCursor, res.Failures[0].Realization)
	assert.Equal(t, RealizationIndexed, res.Failures[1].Realization)
	for _, f := range res.Failures {
		assert.Equal(t, cases[1], f.Case)
		assert.True(t, f.Got)
	}
}

func TestRunRunesCountsDisagreements(t *testing.T) {
	cases := []Case{
		{Subject: "日本語", Pattern: "日?語", Want: false}, // deliberately wrong
	}

	res := RunRunes(cases)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, RealizationRunes, res.Failures[0].Realization)
}

func TestRunEmptySlice(t *testing.T) {
	res := Run(nil)
	assert.Equal(t, Result{}, res)
	assert.True(t, res.OK())
}

func TestMerge(t *testing.T) {
	a := Result{Passed: 2, Failed: 1, Failures: []Failure{{Realization: RealizationCursor}}}
	b := Result{Passed: 3, Failed: 1, Failures: []Failure{{Realization: RealizationIndexed}}}

	m := a.Merge(b)
	assert.Equal(t, 5, m.Passed)
	assert.Equal(t, 2, m.Failed)
	require.Len(t, m.Failures, 2)
	assert.Equal(t, RealizationCursor, m.Failures[0].Realization)
	assert.Equal(t, RealizationIndexed, m.Failures[1].Realization)
}

// ---------------------------------------------------------------------------
// Repetition
// ---------------------------------------------------------------------------

func TestRunRepeat(t *testing.T) {
	cases := WildCases()

	res := RunRepeat(cases, 3)
	assert.Equal(t, 3*len(cases), res.Passed)
	assert.Equal(t, 0, res.Failed)
}

func TestRunRepeatZeroReps(t *testing.T) {
	assert.Equal(t, Result{}, RunRepeat(WildCases(), 0))
}

// ---------------------------------------------------------------------------
// Parallel execution
// ---------------------------------------------------------------------------

func TestRunParallelMatchesRun(t *testing.T) {
	var all []Case
	all = append(all, TameCases()...)
	all = append(all, EmptyCases()...)
	all = append(all, WildCases()...)

	want := Run(all)
	for _, workers := range []int{0, 1, 2, 3, 7, 64} {
		got := RunParallel(all, workers)
		assert.Equal(t, want.Passed, got.Passed, "workers=%d", workers)
		assert.Equal(t, want.Failed, got.Failed, "workers=%d", workers)
	}
}

func TestRunParallelPreservesFailureOrder(t *testing.T) {
	cases := []Case{
		{Subject: "a", Pattern: "a", Want: false}, // wrong on purpose
		{Subject: "b", Pattern: "b", Want: true},
		{Subject: "c", Pattern: "x", Want: true}, // wrong on purpose
		{Subject: "d", Pattern: "d", Want: true},
	}

	res := RunParallel(cases, 2)
	assert.Equal(t, 2, res.Failed)
	require.Len(t, res.Failures, 4) // two realizations per failed case
	assert.Equal(t, "a", res.Failures[0].Case.Subject)
	assert.Equal(t, "c", res.Failures[2].Case.Subject)
}

func TestRunParallelEmptySlice(t *testing.T) {
	assert.Equal(t, Result{}, RunParallel(nil, 4))
}
