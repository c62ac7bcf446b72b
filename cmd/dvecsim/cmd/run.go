package cmd

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lucasgdosr/dvec/internal/workload"
)

var (
	flagScript     string
	flagRandom     int
	flagSeed       uint64
	flagPushRatio  float64
	flagFrontRatio float64
	flagCapacity   int
	flagVerify     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "apply a scripted or random workload to a dvec",
	Example: `  dvecsim run --script "front:3,back:2,popfront"
  dvecsim run --random 100000 --seed 7 --front-ratio 0.3 --verify`,
	Run: run,
}

func init() {
	runCmd.Flags().StringVar(&flagScript, "script", "",
		"comma separated operations: front, back, popfront, popback, each with an optional :count")
	runCmd.Flags().IntVar(&flagRandom, "random", 0, "number of random operations to generate")
	runCmd.Flags().Uint64Var(&flagSeed, "seed", 1, "seed for random workloads")
	runCmd.Flags().Float64Var(&flagPushRatio, "push-ratio", 0.75, "share of pushes in random workloads")
	runCmd.Flags().Float64Var(&flagFrontRatio, "front-ratio", 0.5, "share of front operations in random workloads")
	runCmd.Flags().IntVar(&flagCapacity, "capacity", 0, "initial capacity of the dvec")
	runCmd.Flags().BoolVar(&flagVerify, "verify", false, "check every step against a reference deque")
}

func run(*cobra.Command, []string) {
	ops, err := buildOps()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build workload")
	}

	rep, err := runWorkload(log.Logger, ops)
	if err != nil {
		log.Fatal().Err(err).EmbedObject(rep).Msg("workload failed")
	}
	log.Info().EmbedObject(rep).Msg("workload complete")
}

var errNoWorkload = errors.New("one of --script or --random is required")

func buildOps() ([]workload.Op, error) {
	switch {
	case flagScript != "" && flagRandom > 0:
		return nil, errors.New("--script and --random are mutually exclusive")
	case flagScript != "":
		ops, err := workload.Parse(flagScript)
		if err != nil {
			return nil, fmt.Errorf("cannot parse --script: %w", err)
		}
		return ops, nil
	case flagRandom > 0:
		if !validRatio(flagPushRatio) || !validRatio(flagFrontRatio) {
			return nil, fmt.Errorf("ratios must be within [0, 1], got push %v front %v", flagPushRatio, flagFrontRatio)
		}
		r := rand.New(rand.NewPCG(flagSeed, flagSeed))
		return workload.Random(r, flagRandom, flagPushRatio, flagFrontRatio), nil
	default:
		return nil, errNoWorkload
	}
}

func runWorkload(logger zerolog.Logger, ops []workload.Op) (workload.Report, error) {
	r := workload.NewRunner(logger, workload.Config{
		Capacity: flagCapacity,
		Verify:   flagVerify,
	})
	return r.Run(ops)
}

func validRatio(f float64) bool { return f >= 0 && f <= 1 }
