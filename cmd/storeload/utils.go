// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// IsRunArgs ensures there is an iteration count and at most a fence mode.
func IsRunArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return fmt.Errorf("no iteration count specified")
	case 1, 2:
		return nil
	default:
		return fmt.Errorf("too many arguments: %v", args)
	}
}

// parseIterations parses a positive iteration count.
func parseIterations(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid iteration count '%s'", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("iteration count must be positive: %d", n)
	}
	return n, nil
}
