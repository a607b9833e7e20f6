package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/g-m-twostay/go-succ/Bench"
	"github.com/g-m-twostay/go-succ/Workloads"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run benchmark suites and append timings to the CSV file",
	RunE:  runSuites,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringSlice("suites", []string{"random", "queryone", "worstcase"}, "suites to run")
	runCmd.Flags().Int("min-n", 2, "smallest set size")
	runCmd.Flags().Int("max-n", 1<<22, "largest set size, reached by doubling")
	runCmd.Flags().Float64("min-alpha", 1.0/8, "smallest queries-per-deletion ratio")
	runCmd.Flags().Float64("max-alpha", 8, "largest queries-per-deletion ratio, reached by doubling")
	runCmd.Flags().Duration("min-time", time.Second, "minimum measured duration of one trial")
	runCmd.Flags().Int("best-of", 3, "trials per timing, best one kept")
	runCmd.Flags().Int("min-repeats", 5, "starting run count per trial")
	runCmd.Flags().Int64("seed", 0, "seed for the random suite")
	for _, name := range []string{"suites", "min-n", "max-n", "min-alpha", "max-alpha", "min-time", "best-of", "min-repeats", "seed"} {
		_ = viper.BindPFlag(name, runCmd.Flags().Lookup(name))
	}
}

func runSuites(cmd *cobra.Command, _ []string) error {
	o := Bench.Options{
		MinTime:    viper.GetDuration("min-time"),
		MinRepeats: viper.GetInt("min-repeats"),
		BestOf:     viper.GetInt("best-of"),
	}
	out := viper.GetString("out")
	minN, maxN := viper.GetInt("min-n"), viper.GetInt("max-n")
	if minN < 2 {
		return fmt.Errorf("min-n must be at least 2, got %d", minN)
	}
	minA, maxA := viper.GetFloat64("min-alpha"), viper.GetFloat64("max-alpha")
	seed := viper.GetInt64("seed")

	for _, suite := range viper.GetStringSlice("suites") {
		switch suite {
		case "queryone":
			for n := minN; n <= maxN; n *= 2 {
				cmd.Printf("creating query-one input: n=%d\n", n)
				if err := timeAll(cmd, Workloads.QueryOne(n), o, out); err != nil {
					return err
				}
			}
		case "worstcase":
			for n := minN; n <= maxN; n *= 2 {
				for alpha := minA; alpha <= maxA; alpha *= 2 {
					cmd.Printf("creating worst-case input: n=%d alpha=%.3f\n", n, alpha)
					if err := timeAll(cmd, Workloads.WorstCase(n, alpha), o, out); err != nil {
						return err
					}
				}
			}
		case "random":
			for n := minN; n <= maxN; n *= 2 {
				for alpha := minA; alpha <= maxA; alpha *= 2 {
					cmd.Printf("creating random input: n=%d alpha=%.3f\n", n, alpha)
					if err := timeAll(cmd, Workloads.Random(n, alpha, seed), o, out); err != nil {
						return err
					}
				}
			}
		default:
			return fmt.Errorf("unknown suite %q", suite)
		}
	}
	return nil
}

// timeAll measures every registered algorithm on lg, printing each row
// and appending it to the CSV file as soon as it is known, so an
// interrupted suite loses at most one timing.
func timeAll(cmd *cobra.Command, lg *Workloads.Log[int], o Bench.Options, out string) error {
	for _, alg := range Bench.Algorithms() {
		if alg.MaxN != 0 && lg.N > alg.MaxN {
			continue
		}
		sec, err := Bench.Measure(alg.New(lg.N), lg, o)
		if err != nil {
			return fmt.Errorf("%s: %w", alg.Name, err)
		}
		r := Bench.Result{Algorithm: alg.Name, Workload: lg.Name, N: lg.N, Seconds: sec}
		cmd.Printf("%q, %q, %d, %.10e\n", r.Algorithm, r.Workload, r.N, r.Seconds)
		if err := Bench.Append(out, r); err != nil {
			return err
		}
	}
	return nil
}
