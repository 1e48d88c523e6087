// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package litmus

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"storeload/barrier"
	"storeload/fence"
	"storeload/logger"
	"storeload/memory"
)

// parties of each rendezvous: both workers and the controller.
const parties = 3

// Config represents the configuration of a run.
type Config struct {
	// Iterations is the number of experiments to run; it must be positive.
	Iterations int
	// Fence is the strategy applied between store and load.
	Fence fence.Mode
	// Machine performs the racing accesses. Nil selects the hardware.
	Machine memory.Machine
	// Spin is the number of polls a barrier waiter spins before parking.
	// Zero selects barrier.DefaultSpin and a negative value disables
	// spinning.
	Spin int
	// ProgressEvery emits a Progress event every that many iterations.
	// Zero disables progress events.
	ProgressEvery int
}

// Controller owns the shared state, drives the iterations and classifies
// their outcome. A Controller runs once.
type Controller struct {
	cfg      Config
	sink     Sink
	machine  memory.Machine
	strategy fence.Strategy

	state State
	start *barrier.Barrier
	join  *barrier.Barrier
	stop  atomic.Bool
	used  atomic.Bool
}

// NewController validates cfg and returns a controller emitting its events
// to sink. A nil sink discards the events.
func NewController(cfg Config, sink Sink) (*Controller, error) {
	if cfg.Iterations <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, cfg.Iterations)
	}
	if cfg.Fence < fence.None || cfg.Fence > fence.OpaqueAtomicRMW {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFence, cfg.Fence)
	}
	if cfg.Machine == nil {
		cfg.Machine = memory.NewHardware()
	}
	if sink == nil {
		sink = discard{}
	}

	var opts []barrier.Option
	switch {
	case cfg.Spin < 0:
		opts = append(opts, barrier.WithSpin(0))
	case cfg.Spin > 0:
		opts = append(opts, barrier.WithSpin(cfg.Spin))
	}

	return &Controller{
		cfg:      cfg,
		sink:     sink,
		machine:  cfg.Machine,
		strategy: fence.New(cfg.Fence),
		start:    barrier.New(parties, opts...),
		join:     barrier.New(parties, opts...),
	}, nil
}

// State returns the shared state of the experiment.
func (c *Controller) State() *State {
	return &c.state
}

// Run executes the configured number of iterations and returns the summary,
// which is also emitted to the sink. A self-test failure halts the run with
// a *SelfTestError. Cancelling ctx stops the run between iterations; the
// summary of the completed iterations is returned along with ctx.Err().
// The worker goroutines have exited when Run returns.
func (c *Controller) Run(ctx context.Context) (sum Summary, err error) {
	if c.used.Swap(true) {
		return Summary{}, ErrControllerUsed
	}
	logger.Debugf("running %d iterations, fence %v, machine %v",
		c.cfg.Iterations, c.cfg.Fence, c.machine)

	var g errgroup.Group
	for _, r := range roles {
		r := r
		g.Go(func() error {
			c.work(r)
			return nil
		})
	}
	defer func() {
		c.shutdown()
		if werr := g.Wait(); err == nil {
			err = werr
		}
	}()

	tally := NewTally()
	for i := 1; i <= c.cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			logger.Warnf("run cancelled after %d iterations", tally.Iterations)
			return tally.Summary(c.cfg.Fence, c.state.runs()), err
		}
		ts := time.Now()
		reordered, err := c.iterate(i, tally.Reordered)
		if err != nil {
			return Summary{}, err
		}
		tally.Add(reordered, time.Since(ts))

		if n := c.cfg.ProgressEvery; n > 0 && i%n == 0 {
			c.sink.Emit(Progress{
				Iteration:  i,
				Iterations: c.cfg.Iterations,
				Reordered:  tally.Reordered,
			})
		}
	}

	sum = tally.Summary(c.cfg.Fence, c.state.runs())
	logger.Debugf("summary: %v", sum)
	c.sink.Emit(sum)
	return sum, nil
}

// iterate runs iteration i (1-based); before it, reordered iterations had
// been observed.
func (c *Controller) iterate(i, reordered int) (bool, error) {
	var (
		m = c.machine
		s = &c.state
	)

	m.Store(controllerCPU, &s.X[A], 0)
	m.Store(controllerCPU, &s.X[B], 0)
	m.Store(controllerCPU, &s.R[A], 0)
	m.Store(controllerCPU, &s.R[B], 0)
	m.Drain(controllerCPU)

	// start
	c.start.SignalAndWait()
	// join
	c.join.SignalAndWait()
	for _, r := range roles {
		m.Drain(int(r))
	}

	runs := s.runs()
	if runs[A] != runs[B] {
		return false, c.fail(&SelfTestError{
			Kind:      LockStep,
			Iteration: i,
			Runs:      runs,
		})
	}

	x := [2]int64{
		m.Load(controllerCPU, &s.X[A]),
		m.Load(controllerCPU, &s.X[B]),
	}
	if x[A] != 1 || x[B] != 1 {
		return false, c.fail(&SelfTestError{
			Kind:      PostJoin,
			Iteration: i,
			Runs:      runs,
			X:         x,
		})
	}

	if m.Load(controllerCPU, &s.R[A]) != 0 || m.Load(controllerCPU, &s.R[B]) != 0 {
		return false, nil
	}
	e := Reordering{
		Number:    reordered + 1,
		Iteration: i,
		Runs:      runs,
		X:         x,
	}
	logger.Info(e)
	c.sink.Emit(e)
	return true, nil
}

func (c *Controller) fail(e *SelfTestError) error {
	logger.Error(e)
	c.sink.Emit(SelfTestFailure{
		Kind:    e.Kind,
		Message: e.Error(),
		Runs:    e.Runs,
		X:       e.X,
	})
	return e
}

// shutdown releases the workers waiting for the next iteration and tells
// them to exit. Between iterations both workers always wait on the start
// barrier.
func (c *Controller) shutdown() {
	c.stop.Store(true)
	c.start.SignalAndWait()
}
