// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package litmus

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIterations is returned for a non-positive iteration count.
	ErrInvalidIterations = errors.New("iteration count must be positive")
	// ErrInvalidFence is returned for a fence mode outside the enumeration.
	ErrInvalidFence = errors.New("invalid fence mode")
	// ErrControllerUsed is returned when Run is called more than once.
	ErrControllerUsed = errors.New("controller already ran")
)

// SelfTestKind tells which self-test of the harness failed.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=SelfTestKind
type SelfTestKind int

const (
	// LockStep fails when the workers completed a different number of cycles
	LockStep SelfTestKind = iota
	// PostJoin fails when a worker store is not visible after the join
	PostJoin
)

// SelfTestError reports a synchronization fault of the harness itself. It is
// never a memory model finding.
type SelfTestError struct {
	Kind      SelfTestKind
	Iteration int
	Runs      [2]int64
	X         [2]int64
}

func (e *SelfTestError) Error() string {
	switch e.Kind {
	case LockStep:
		return fmt.Sprintf("self-test failure at iteration %d: both workers did not run a full iteration %d/%d",
			e.Iteration, e.Runs[A], e.Runs[B])
	default:
		return fmt.Sprintf("self-test failure at iteration %d: x0 = %d, x1 = %d",
			e.Iteration, e.X[A], e.X[B])
	}
}
