// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package memory

import (
	"fmt"
	"math/rand"
	"sync/atomic"

	"storeload/fence"
)

// StoreBuffer models total store order after the x86-TSO abstract machine:
// each cpu queues its stores in a private FIFO buffer, loads forward from the
// own buffer before reading shared memory, and the buffer drains to shared
// memory on an active fence or on Drain. Right after each store the buffer
// drains spontaneously with the configured probability. With a drain of 0 a
// store stays invisible to the other cpus until Drain, so two unfenced cpus
// always miss each other's store whatever their interleaving; a drain of 1 is
// sequentially consistent.
type StoreBuffer struct {
	drain float64
	cpus  [MaxCPUs]sbCPU
}

type pending struct {
	c *Cell
	v int64
}

// sbCPU is touched by the goroutine acting as that cpu, or by a Drain ordered
// after it.
type sbCPU struct {
	buf []pending
	rnd *rand.Rand
	_   [cacheLine]byte
}

// NewStoreBuffer returns a store buffer model. Each cpu draws from its own
// source derived from seed, so runs with the same seed drain identically.
func NewStoreBuffer(drain float64, seed int64) *StoreBuffer {
	m := &StoreBuffer{drain: drain}
	for i := range m.cpus {
		m.cpus[i].rnd = rand.New(rand.NewSource(seed + int64(i)))
	}
	return m
}

// Store queues v for c in the buffer of cpu.
func (m *StoreBuffer) Store(cpu int, c *Cell, v int64) {
	b := &m.cpus[cpu]
	b.buf = append(b.buf, pending{c: c, v: v})
	if m.drain > 0 && b.rnd.Float64() < m.drain {
		b.flush()
	}
}

// Load returns the newest buffered value of c for cpu, or the value in
// shared memory.
func (m *StoreBuffer) Load(cpu int, c *Cell) int64 {
	b := &m.cpus[cpu]
	for i := len(b.buf) - 1; i >= 0; i-- {
		if b.buf[i].c == c {
			return b.buf[i].v
		}
	}
	return atomic.LoadInt64(&c.v)
}

// Fence applies s and drains the buffer of cpu when s is an ordering fence.
func (m *StoreBuffer) Fence(cpu int, s fence.Strategy) {
	s.Apply()
	if s.Mode().Active() {
		m.cpus[cpu].flush()
	}
}

// Drain flushes the buffer of cpu to shared memory in FIFO order.
func (m *StoreBuffer) Drain(cpu int) {
	m.cpus[cpu].flush()
}

// Pending returns the number of stores buffered by cpu.
func (m *StoreBuffer) Pending(cpu int) int {
	return len(m.cpus[cpu].buf)
}

func (m *StoreBuffer) String() string {
	return fmt.Sprintf("tso (drain=%.2f)", m.drain)
}

func (b *sbCPU) flush() {
	for _, p := range b.buf {
		atomic.StoreInt64(&p.c.v, p.v)
	}
	b.buf = b.buf[:0]
}
