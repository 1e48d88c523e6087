// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"storeload/fence"
	"storeload/litmus"
	"storeload/logger"
	"storeload/memory"
	"storeload/tools"
)

var runFlags = struct {
	fence    string
	model    string
	drain    float64
	seed     int64
	spin     int
	progress int
	csvFile  string
	strict   bool
	timeout  time.Duration
}{}

var runCmd = cobra.Command{
	Use:   "run [flags] <iterations> [fence]",
	Short: "Runs the StoreLoad litmus test",
	Long: `Runs the StoreLoad litmus test for the given number of iterations.

The fence mode may be given as second argument or with --fence.
Valid fence modes: ` + fence.ModeNames() + `
(aliases: MemoryBarrier for FullFence, CompareExchange for OpaqueAtomicRMW)`,
	Args: IsRunArgs,
	RunE: runRun,

	DisableFlagsInUseLine: true,
}

func init() {
	flags := runCmd.PersistentFlags()
	flags.StringVar(&runFlags.csvFile, "csv-log", "", "CSV file to append the final result to")
	flags.DurationVar(&runFlags.timeout, "timeout", 0, "Run timeout, e.g., 1s for 1 second, 1m for 1 minute.\nThe run stops after the current iteration and reports the completed ones.\ntimeout 0 is equivalent to no timeout")
	flags.BoolVar(&runFlags.strict, "strict", false, "exit with status 2 if reordering is observed with active fences")
	flags.IntVar(&runFlags.progress, "progress", 0, "report progress every n iterations (0 disables)")
	addRunFlags(flags)
	rootCmd.AddCommand(&runCmd)
}

func addRunFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&runFlags.fence, "fence", "f", tools.GetEnv("STORELOAD_DEFAULT_FENCE"), "fence mode ("+fence.ModeNames()+")")
	flags.StringVarP(&runFlags.model, "model", "m", tools.GetEnv("STORELOAD_DEFAULT_MODEL"), "memory model ("+memory.IDNames+")")
	flags.Float64Var(&runFlags.drain, "drain", 0.5, "store buffer drain probability of the tso model")
	flags.Int64Var(&runFlags.seed, "seed", 1, "random seed of the tso model")
	flags.IntVar(&runFlags.spin, "spin", envInt("STORELOAD_SPIN"), "barrier spin count (0 = default, negative = no spinning)")
	flags.SetInterspersed(false)
}

func envInt(name string) int {
	v, err := strconv.Atoi(tools.GetEnv(name))
	if err != nil {
		logger.Warnf("ignoring %s: %v", name, err)
		return 0
	}
	return v
}

// runConfig builds the litmus configuration from arguments and flags.
func runConfig(args []string) (litmus.Config, error) {
	var cfg litmus.Config

	n, err := parseIterations(args[0])
	if err != nil {
		return cfg, err
	}
	fenceName := runFlags.fence
	if len(args) > 1 {
		fenceName = args[1]
	}
	mode, err := fence.ParseMode(fenceName)
	if err != nil {
		return cfg, err
	}
	m, err := memory.New(memory.ParseID(runFlags.model), runFlags.drain, runFlags.seed)
	if err != nil {
		return cfg, err
	}

	return litmus.Config{
		Iterations:    n,
		Fence:         mode,
		Machine:       m,
		Spin:          runFlags.spin,
		ProgressEvery: runFlags.progress,
	}, nil
}

func runRun(_ *cobra.Command, args []string) (err error) {
	var (
		sum   litmus.Summary
		model = runFlags.model
	)
	defer func() {
		newCSVReport(model, sum, err).save(runFlags.csvFile)
	}()

	cfg, err := runConfig(args)
	if err != nil {
		return verror(configError, err)
	}
	model = cfg.Machine.String()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if runFlags.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, runFlags.timeout)
		defer cancel()
	}

	out := newPrinter()
	ctl, err := litmus.NewController(cfg, out)
	if err != nil {
		return verror(configError, err)
	}

	logger.Infof("Running %d iterations on %v with fence %v", cfg.Iterations, cfg.Machine, cfg.Fence)
	sum, err = ctl.Run(ctx)

	var serr *litmus.SelfTestError
	switch {
	case errors.As(err, &serr):
		return verror(selfTestFail, err)
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warnf("timeout reached after %d iterations", sum.Iterations)
		out.Emit(sum)
	case errors.Is(err, context.Canceled):
		out.Emit(sum)
		return verror(internalError, fmt.Errorf("interrupted after %d iterations", sum.Iterations))
	case err != nil:
		return verror(internalError, err)
	}

	if fn := rootFlags.outputFn; fn != "" {
		if lerr := tools.Dump(report(sum), fn); lerr != nil {
			logger.Warnf("could not write report: %v", lerr)
		}
	}
	if runFlags.strict && sum.Remark.Unexpected() {
		return vfail(sum.Remark, fmt.Errorf("%d reorderings %s", sum.Reordered, sum.Remark))
	}
	return nil
}
