// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package memory

import (
	"storeload/fence"
)

// Hardware accesses cells directly, exposing whatever ordering the host
// processor provides. Stores and loads are plain moves in regular builds and
// sequentially consistent atomics in race-detector builds.
type Hardware struct{}

// NewHardware returns the host hardware machine.
func NewHardware() *Hardware {
	return &Hardware{}
}

// Store writes v into c.
func (*Hardware) Store(_ int, c *Cell, v int64) { store(&c.v, v) }

// Load reads c.
func (*Hardware) Load(_ int, c *Cell) int64 { return load(&c.v) }

// Fence applies s.
func (*Hardware) Fence(_ int, s fence.Strategy) { s.Apply() }

// Drain is a no-op: the rendezvous itself orders the stores.
func (*Hardware) Drain(int) {}

func (*Hardware) String() string {
	if RaceEnabled {
		return "hardware (race build, atomic accesses)"
	}
	return "hardware"
}
