// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package barrier implements a reusable rendezvous point for a fixed party
// of goroutines.
package barrier

import (
	"runtime"
	"sync"

	"go.uber.org/atomic"
)

// DefaultSpin is the number of generation polls a waiter performs before
// parking.
const DefaultSpin = 1 << 12

// yieldEvery controls how often a spinning waiter yields its processor.
const yieldEvery = 64

// Barrier blocks each arriving party until all parties of the current
// generation have arrived, then releases them together. A Barrier is reused
// across generations; arrivals of generation g+1 cannot be confused with
// arrivals of generation g.
type Barrier struct {
	parties int
	spin    int

	mu      sync.Mutex
	cond    *sync.Cond
	arrived int
	gen     atomic.Uint64
}

// Option configures a Barrier.
type Option func(*Barrier)

// WithSpin sets how many times a waiter polls the generation before it
// parks on the condition variable. Zero disables spinning.
func WithSpin(n int) Option {
	return func(b *Barrier) {
		if n < 0 {
			n = 0
		}
		b.spin = n
	}
}

// New creates a barrier for the given number of parties.
// It panics if parties is not positive.
func New(parties int, opts ...Option) *Barrier {
	if parties <= 0 {
		panic("barrier: parties must be positive")
	}
	b := &Barrier{
		parties: parties,
		spin:    DefaultSpin,
	}
	b.cond = sync.NewCond(&b.mu)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Parties returns the number of parties the barrier waits for.
func (b *Barrier) Parties() int {
	return b.parties
}

// Generation returns the number of completed generations.
func (b *Barrier) Generation() uint64 {
	return b.gen.Load()
}

// SignalAndWait announces the arrival of the caller and blocks until all
// parties have arrived in the current generation. The last party to arrive
// advances the generation and releases the others.
func (b *Barrier) SignalAndWait() {
	b.mu.Lock()
	gen := b.gen.Load()
	b.arrived++
	if b.arrived == b.parties {
		b.arrived = 0
		b.gen.Store(gen + 1)
		b.mu.Unlock()
		b.cond.Broadcast()
		return
	}
	b.mu.Unlock()

	for i := 0; i < b.spin; i++ {
		if b.gen.Load() != gen {
			return
		}
		if i%yieldEvery == yieldEvery-1 {
			runtime.Gosched()
		}
	}

	b.mu.Lock()
	for b.gen.Load() == gen {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
