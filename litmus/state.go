// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package litmus

import (
	"go.uber.org/atomic"

	"storeload/memory"
)

// Role identifies one of the two racing workers.
type Role int

const (
	// A stores x0 and loads x1
	A Role = iota
	// B stores x1 and loads x0
	B
)

// controllerCPU is the machine cpu the controller acts as.
const controllerCPU = memory.MaxCPUs - 1

var roles = [...]Role{A, B}

// Other returns the role racing against r.
func (r Role) Other() Role {
	return 1 - r
}

func (r Role) String() string {
	if r == A {
		return "A"
	}
	return "B"
}

// State is the memory shared by the controller and the workers. X and R are
// deliberately unsynchronized: they are only accessed through a
// memory.Machine and ordered by the barriers and the fence strategy.
type State struct {
	X    [2]memory.Cell
	R    [2]memory.Cell
	Runs [2]atomic.Int64
}

// runs returns a snapshot of the run counters.
func (s *State) runs() [2]int64 {
	return [2]int64{s.Runs[A].Load(), s.Runs[B].Load()}
}
