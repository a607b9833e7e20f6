package Bench

import (
	"fmt"
	"math"
	"time"

	Go_Succ "github.com/g-m-twostay/go-succ"
	"github.com/g-m-twostay/go-succ/Workloads"
)

// Options control a measurement: a trial is repeated, doubling the run
// count, until it lasts at least MinTime, and the best of BestOf trials
// is kept.
type Options struct {
	MinTime    time.Duration // minimum measured duration of one trial
	MinRepeats int           // starting run count per trial
	BestOf     int           // number of trials, best one reported
}

func DefaultOptions() Options {
	return Options{MinTime: time.Second, MinRepeats: 5, BestOf: 3}
}

// Result is one CSV row: the per-run time of one algorithm on one
// workload.
type Result struct {
	Algorithm string
	Workload  string
	N         int
	Seconds   float64
}

// Measure times s replaying lg. It first checks s against the log's
// recorded answers and refuses to time a structure that disagrees. Each
// of BestOf trials runs the full sequence (fresh Init each run) repeats
// times, doubling repeats until the trial exceeds MinTime; the reported
// value is the smallest observed per-run time.
func Measure(s Go_Succ.Set[int], lg *Workloads.Log[int], o Options) (float64, error) {
	if k := lg.Replay(s); k >= 0 {
		return 0, fmt.Errorf("wrong answer at operation %d of %q, n=%d", k, lg.Name, lg.N)
	}
	var trash int
	best := math.Inf(1)
	for trial := 0; trial < o.BestOf; trial++ {
		for repeats := o.MinRepeats; ; repeats *= 2 {
			start := time.Now()
			for r := 0; r < repeats; r++ {
				trash ^= lg.Run(s)
			}
			if elapsed := time.Since(start); elapsed >= o.MinTime {
				if per := elapsed.Seconds() / float64(repeats); per < best {
					best = per
				}
				break
			}
		}
	}
	_ = trash // keeps the replay results observable
	return best, nil
}
