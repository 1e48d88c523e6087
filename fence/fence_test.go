// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package fence

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	testCases := []struct {
		in  string
		out Mode
		err bool
	}{
		{in: "", out: None},
		{in: "None", out: None},
		{in: "FullFence", out: FullFence},
		{in: "memorybarrier", out: FullFence},
		{in: "MemoryBarrier", out: FullFence},
		{in: " mfence ", out: FullFence},
		{in: "OpaqueAtomicRMW", out: OpaqueAtomicRMW},
		{in: "CompareExchange", out: OpaqueAtomicRMW},
		{in: "cas", out: OpaqueAtomicRMW},
		{in: "lfence", err: true},
		{in: "1", err: true},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			m, err := ParseMode(tc.in)
			if tc.err {
				assert.True(t, errors.Is(err, ErrUnknownMode))
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.out, m)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "FullFence", FullFence.String())
	assert.Equal(t, "OpaqueAtomicRMW", OpaqueAtomicRMW.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
	assert.Equal(t, "None|FullFence|OpaqueAtomicRMW", ModeNames())
}

func TestRoundTrip(t *testing.T) {
	for _, m := range Modes {
		p, err := ParseMode(m.String())
		assert.Nil(t, err)
		assert.Equal(t, m, p)
	}
}

func TestStrategy(t *testing.T) {
	for _, m := range Modes {
		s := New(m)
		assert.Equal(t, m, s.Mode())
		assert.Equal(t, m != None, m.Active())
		s.Apply()
	}
	// the throwaway word is never modified
	assert.Equal(t, int32(0), dummy.v)
	assert.Panics(t, func() { New(Mode(42)) })
}
