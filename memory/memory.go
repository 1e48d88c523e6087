// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package memory provides the access discipline for the cells the litmus
// workers race on. Every load and store of a racing cell goes through a
// Machine, either the real hardware or a model of a weaker memory system.
package memory

import (
	"storeload/fence"
)

// MaxCPUs is the number of agents touching the cells: two racing workers
// plus the controller.
const MaxCPUs = 3

const cacheLine = 64

// Cell is an int64 memory location that occupies a cache line of its own.
type Cell struct {
	v int64
	_ [cacheLine - 8]byte
}

// Machine performs every access to a Cell. A machine must not cache, hoist or
// merge accesses: each call touches memory exactly once, in program order
// with respect to the other calls of the same cpu, except for the reordering
// the machine is meant to expose.
type Machine interface {
	// Store writes v into c on behalf of cpu.
	Store(cpu int, c *Cell, v int64)
	// Load reads c on behalf of cpu.
	Load(cpu int, c *Cell) int64
	// Fence applies s between a store and a subsequent load of cpu.
	Fence(cpu int, s fence.Strategy)
	// Drain makes every store buffered by cpu globally visible. The caller
	// need not be cpu, but it must be ordered after every access of cpu,
	// e.g. by a rendezvous.
	Drain(cpu int)
	String() string
}
