// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package litmus

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"storeload/fence"
)

func TestSummarize(t *testing.T) {
	testCases := []struct {
		total, reordered int
		mode             fence.Mode
		ratio            int
		percent          float64
		remark           Remark
	}{
		{1000, 0, fence.None, 0, 0, RemarkUnsurprising},
		{1000, 0, fence.FullFence, 0, 0, RemarkCorrect},
		{1000, 3, fence.None, 333, 0.3, RemarkExpected},
		{1000, 3, fence.OpaqueAtomicRMW, 333, 0.3, RemarkUnexpected},
		{1000, 1000, fence.None, 1, 100, RemarkExpected},
		{7, 2, fence.None, 3, 100 * 2.0 / 7, RemarkExpected},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			s := Summarize(tc.total, tc.reordered, tc.mode)
			assert.Equal(t, tc.ratio, s.Ratio)
			assert.InDelta(t, tc.percent, s.Percent, 1e-9)
			assert.Equal(t, tc.remark, s.Remark)
			assert.Equal(t, tc.remark == RemarkUnexpected, s.Remark.Unexpected())
		})
	}
}

func TestSummaryLines(t *testing.T) {
	s := Summarize(500, 0, fence.None)
	s.Runs = [2]int64{500, 500}
	lines := s.Lines()
	assert.Equal(t, []string{
		"0 of 500 (500/500) iterations were not sequentially consistent.",
		"That is unsurprising, though not guaranteed, given no fences.",
	}, lines)

	s = Summarize(1000, 4, fence.FullFence)
	lines = s.Lines()
	assert.Len(t, lines, 3)
	assert.Equal(t, "That's about 1 in every 250 executions or 0.4%.", lines[1])
	assert.Equal(t, "That is unexpected given active fences (FullFence).", lines[2])
	assert.False(t, strings.Contains(lines[0], "NaN"))
}

func TestTally(t *testing.T) {
	tally := NewTally()
	tally.Add(false, 2*time.Microsecond)
	tally.Add(true, 4*time.Microsecond)
	tally.Add(false, 6*time.Microsecond)

	s := tally.Summary(fence.None, [2]int64{3, 3})
	assert.Equal(t, 3, s.Iterations)
	assert.Equal(t, 1, s.Reordered)
	assert.Equal(t, 3, s.Ratio)
	assert.Equal(t, 4*time.Microsecond, s.MeanIteration)
	assert.InDelta(t, float64(1633*time.Nanosecond), float64(s.SDIteration), float64(time.Nanosecond))
	assert.Equal(t, [2]int64{3, 3}, s.Runs)
}

func TestEmptyTimeStats(t *testing.T) {
	var ts timeStats
	assert.Equal(t, time.Duration(0), ts.mean())
	assert.Equal(t, time.Duration(0), ts.sd())
}

func TestEventStrings(t *testing.T) {
	r := Reordering{Number: 2, Iteration: 17, Runs: [2]int64{17, 17}, X: [2]int64{1, 1}}
	assert.Equal(t, "StoreLoad reordering #2 detected after 17 iterations (17/17): x0 = 1, x1 = 1", r.String())
	assert.Equal(t, "10/100 iterations, 1 reordered", Progress{10, 100, 1}.String())
	assert.Equal(t, "B", A.Other().String())
	assert.Equal(t, A, B.Other())
}

func TestSelfTestKindString(t *testing.T) {
	assert.Equal(t, "LockStep", LockStep.String())
	assert.Equal(t, "PostJoin", PostJoin.String())
	assert.Equal(t, "SelfTestKind(5)", SelfTestKind(5).String())
}
