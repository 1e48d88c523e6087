// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package litmus

import (
	"fmt"
	"time"

	"storeload/fence"
)

// Remark puts the number of reorderings in the context of the fence mode.
type Remark int

const (
	// RemarkCorrect means no reordering while fences were active
	RemarkCorrect Remark = iota
	// RemarkUnsurprising means no reordering while fences were inactive
	RemarkUnsurprising
	// RemarkExpected means reordering while fences were inactive
	RemarkExpected
	// RemarkUnexpected means reordering while fences were active
	RemarkUnexpected
)

func (r Remark) String() string {
	switch r {
	case RemarkCorrect:
		return "expected given active fences"
	case RemarkUnsurprising:
		return "unsurprising, though not guaranteed, given no fences"
	case RemarkExpected:
		return "expected given no fences"
	case RemarkUnexpected:
		return "unexpected given active fences"
	default:
		return fmt.Sprintf("Remark(%d)", int(r))
	}
}

// Unexpected reports whether the outcome contradicts the fence mode.
func (r Remark) Unexpected() bool {
	return r == RemarkUnexpected
}

// Summary is the final report of a run.
type Summary struct {
	Iterations int
	Reordered  int
	Runs       [2]int64
	Fence      fence.Mode
	// Ratio is Iterations / Reordered, the N of "1 in N". Zero without
	// reorderings.
	Ratio int
	// Percent is 100 * Reordered / Iterations. Zero without reorderings.
	Percent float64
	Remark  Remark

	Elapsed       time.Duration
	MeanIteration time.Duration
	SDIteration   time.Duration
}

// Summarize computes ratio, percentage and remark. The ratio and percentage
// are only computed when reordered is not zero.
func Summarize(total, reordered int, mode fence.Mode) Summary {
	s := Summary{
		Iterations: total,
		Reordered:  reordered,
		Fence:      mode,
	}
	switch {
	case reordered > 0 && mode.Active():
		s.Remark = RemarkUnexpected
	case reordered > 0:
		s.Remark = RemarkExpected
	case mode.Active():
		s.Remark = RemarkCorrect
	default:
		s.Remark = RemarkUnsurprising
	}
	if reordered > 0 && total > 0 {
		s.Ratio = total / reordered
		s.Percent = 100 * float64(reordered) / float64(total)
	}
	return s
}

// Lines renders the summary as report lines.
func (s Summary) Lines() []string {
	lines := []string{
		fmt.Sprintf("%d of %d (%d/%d) iterations were not sequentially consistent.",
			s.Reordered, s.Iterations, s.Runs[A], s.Runs[B]),
	}
	if s.Reordered > 0 {
		lines = append(lines,
			fmt.Sprintf("That's about 1 in every %d executions or %.3g%%.", s.Ratio, s.Percent))
	}
	if s.Fence.Active() {
		lines = append(lines, fmt.Sprintf("That is %s (%v).", s.Remark, s.Fence))
	} else {
		lines = append(lines, fmt.Sprintf("That is %s.", s.Remark))
	}
	return lines
}

func (s Summary) String() string {
	return fmt.Sprintf("%d of %d reordered, %s", s.Reordered, s.Iterations, s.Remark)
}
