// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package litmus

import (
	"math"
	"time"

	"storeload/fence"
)

const u2 = 2

type timeStats struct {
	sum  float64
	sum2 float64
	cnt  int
}

func (ts *timeStats) add(d time.Duration) {
	ts.sum += float64(d)
	ts.sum2 += float64(d) * float64(d)
	ts.cnt++
}

func (ts timeStats) mean() time.Duration {
	if ts.cnt == 0 {
		return 0
	}
	return time.Duration(ts.sum / float64(ts.cnt))
}

func (ts timeStats) sd() time.Duration {
	if ts.cnt == 0 {
		return 0
	}
	cnt := float64(ts.cnt)
	v := ts.sum2/cnt - math.Pow(ts.sum/cnt, u2)
	if v < 0 {
		// rounding
		v = 0
	}
	return time.Duration(math.Sqrt(v))
}

// Tally accumulates the outcome of the iterations of one run.
type Tally struct {
	Iterations int
	Reordered  int

	start time.Time
	time  timeStats
}

// NewTally returns an empty tally whose clock starts now.
func NewTally() *Tally {
	return &Tally{start: time.Now()}
}

// Add records one iteration that took d.
func (t *Tally) Add(reordered bool, d time.Duration) {
	t.Iterations++
	if reordered {
		t.Reordered++
	}
	t.time.add(d)
}

// Summary finalizes the tally.
func (t *Tally) Summary(mode fence.Mode, runs [2]int64) Summary {
	s := Summarize(t.Iterations, t.Reordered, mode)
	s.Runs = runs
	s.Elapsed = time.Since(t.start)
	s.MeanIteration = t.time.mean()
	s.SDIteration = t.time.sd()
	return s
}
