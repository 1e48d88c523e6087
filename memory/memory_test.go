// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package memory

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeload/fence"
)

func TestCellSize(t *testing.T) {
	assert.Equal(t, uintptr(cacheLine), unsafe.Sizeof(Cell{}))
}

func TestParseID(t *testing.T) {
	testCases := []struct {
		in  string
		out ID
	}{
		{"hardware", HardwareID},
		{"HW", HardwareID},
		{"tso", StoreBufferID},
		{"StoreBuffer", StoreBufferID},
		{"tso-eager", EagerID},
		{"TSO-Lazy", LazyID},
		{"mock", MockID},
		{"arm8", InvalidID},
		{"", InvalidID},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc.out, ParseID(tc.in))
		})
	}
}

func TestNew(t *testing.T) {
	m, err := New(HardwareID, 0, 0)
	require.Nil(t, err)
	assert.IsType(t, &Hardware{}, m)

	m, err = New(StoreBufferID, 0.25, 1)
	require.Nil(t, err)
	assert.Equal(t, "tso (drain=0.25)", m.String())

	m, err = New(EagerID, 0.25, 1)
	require.Nil(t, err)
	assert.Equal(t, "tso (drain=1.00)", m.String())

	m, err = New(LazyID, 0.25, 1)
	require.Nil(t, err)
	assert.Equal(t, "tso (drain=0.00)", m.String())

	_, err = New(StoreBufferID, 1.5, 1)
	assert.NotNil(t, err)
	_, err = New(InvalidID, 0, 0)
	assert.NotNil(t, err)
}

func TestNewMock(t *testing.T) {
	_, err := New(MockID, 0, 0)
	assert.ErrorIs(t, err, ErrNoMockMachine)

	want := NewStoreBuffer(0, 3)
	GetMock().Machine = want
	t.Cleanup(func() { GetMock().Machine = nil })
	m, err := New(MockID, 0, 0)
	require.Nil(t, err)
	assert.Same(t, want, m)
}

func TestIDString(t *testing.T) {
	for _, id := range []ID{HardwareID, StoreBufferID, EagerID, LazyID, MockID} {
		assert.Equal(t, id, ParseID(id.String()))
	}
	assert.Equal(t, "invalid", InvalidID.String())
	assert.Equal(t, "ID(9)", ID(9).String())
}

func TestStoreBufferHoldsStoresUntilDrain(t *testing.T) {
	// with no spontaneous drain neither cpu observes the other's store,
	// whichever of them runs first
	testCases := []struct {
		name  string
		order []int
	}{
		{"A then B", []int{0, 0, 1, 1}},
		{"B then A", []int{1, 1, 0, 0}},
		{"interleaved", []int{0, 1, 0, 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				m    = NewStoreBuffer(0, 1)
				x    [2]Cell
				r    [2]int64
				step [2]int
			)
			for _, cpu := range tc.order {
				if step[cpu] == 0 {
					m.Store(cpu, &x[cpu], 1)
				} else {
					r[cpu] = m.Load(cpu, &x[1-cpu])
				}
				step[cpu]++
			}
			assert.Equal(t, [2]int64{0, 0}, r)

			m.Drain(0)
			m.Drain(1)
			assert.Equal(t, int64(1), m.Load(2, &x[0]))
			assert.Equal(t, int64(1), m.Load(2, &x[1]))
		})
	}
}

func TestHardware(t *testing.T) {
	var (
		m Machine = NewHardware()
		c Cell
	)
	m.Store(0, &c, 7)
	m.Fence(0, fence.New(fence.FullFence))
	m.Drain(0)
	assert.Equal(t, int64(7), m.Load(1, &c))
}

func TestStoreBufferForwarding(t *testing.T) {
	var (
		m = NewStoreBuffer(0, 1)
		c Cell
	)
	m.Store(0, &c, 1)
	m.Store(0, &c, 2)
	// the own buffer forwards the newest value, others see memory
	assert.Equal(t, int64(2), m.Load(0, &c))
	assert.Equal(t, int64(0), m.Load(1, &c))
	assert.Equal(t, 2, m.Pending(0))

	m.Drain(0)
	assert.Equal(t, 0, m.Pending(0))
	assert.Equal(t, int64(2), m.Load(1, &c))
}

func TestStoreBufferFence(t *testing.T) {
	testCases := []struct {
		mode    fence.Mode
		visible int64
	}{
		{fence.None, 0},
		{fence.FullFence, 1},
		{fence.OpaqueAtomicRMW, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			var (
				m = NewStoreBuffer(0, 1)
				c Cell
			)
			m.Store(0, &c, 1)
			m.Fence(0, fence.New(tc.mode))
			assert.Equal(t, tc.visible, m.Load(1, &c))
		})
	}
}

func TestStoreBufferDrainAlways(t *testing.T) {
	var (
		m = NewStoreBuffer(1, 1)
		c Cell
	)
	m.Store(0, &c, 3)
	assert.Equal(t, 0, m.Pending(0))
	assert.Equal(t, int64(3), m.Load(2, &c))
}

func TestStoreBufferDeterministic(t *testing.T) {
	drains := func(seed int64) []int {
		var (
			m   = NewStoreBuffer(0.5, seed)
			c   Cell
			out []int
		)
		for i := 0; i < 64; i++ {
			m.Store(1, &c, int64(i))
			out = append(out, m.Pending(1))
			m.Drain(1)
		}
		return out
	}
	assert.Equal(t, drains(42), drains(42))
}
