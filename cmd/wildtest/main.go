// Command wildtest runs the shipped comparison batteries and reports
// aggregate pass/fail per battery to stdout. The outcome is communicated
// through the printed report only; the process always exits 0.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/armn3t/go-wildmatch/harness"
)

func main() {
	reps := flag.Int("reps", 1, "times to repeat each battery (coarse throughput measurement)")
	parallel := flag.Bool("parallel", false, "split the byte-wise batteries across worker goroutines")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stdout)

	if *reps < 1 {
		*reps = 1
	}

	batteries := []struct {
		name  string
		cases []harness.Case
		runes bool
	}{
		{"tame", harness.TameCases(), false},
		{"empty", harness.EmptyCases(), false},
		{"wild", harness.WildCases(), false},
		{"unicode", harness.UnicodeCases(), true},
	}

	allPassed := true
	for _, b := range batteries {
		start := time.Now()
		var res harness.Result
		switch {
		case b.runes:
			for r := 0; r < *reps; r++ {
				res = res.Merge(harness.RunRunes(b.cases))
			}
		case *parallel:
			for r := 0; r < *reps; r++ {
				res = res.Merge(harness.RunParallel(b.cases, 0))
			}
		default:
			res = harness.RunRepeat(b.cases, *reps)
		}

		entry := log.WithFields(logrus.Fields{
			"battery":  b.name,
			"passed":   res.Passed,
			"failed":   res.Failed,
			"duration": time.Since(start),
		})
		if res.OK() {
			entry.Info("battery passed")
			continue
		}

		allPassed = false
		entry.Error("battery failed")
		for _, f := range res.Failures {
			log.WithFields(logrus.Fields{
				"battery":     b.name,
				"realization": f.Realization,
				"subject":     f.Case.Subject,
				"pattern":     f.Case.Pattern,
				"want":        f.Case.Want,
				"got":         f.Got,
			}).Error("case failed")
		}
	}

	if allPassed {
		log.Info("all batteries passed")
	} else {
		log.Error("some batteries failed")
	}
	// Pass/fail is reported above; the exit status stays 0 either way.
}
