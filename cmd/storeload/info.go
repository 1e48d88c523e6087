// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"storeload/fence"
	"storeload/logger"
	"storeload/memory"
)

var fenceDesc = map[fence.Mode]string{
	fence.None:            "no fence, the hardware ordering only",
	fence.FullFence:       "sequentially consistent atomic exchange (full barrier)",
	fence.OpaqueAtomicRMW: "failing compare-and-swap on an unrelated word",
}

func init() {
	var infoCmd = cobra.Command{
		Use:   "info",
		Short: "Prints information about the host and the available fences.",
		Args:  cobra.NoArgs,

		DisableFlagsInUseLine: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			Info()
			return nil
		},
	}

	rootCmd.AddCommand(&infoCmd)
}

// Info prints the host facts that matter for the litmus test.
func Info() {
	logger.Println("Host")
	logger.Printf("  OS/Arch    : %s/%s\n", runtime.GOOS, runtime.GOARCH)
	logger.Printf("  CPUs       : %d\n", runtime.NumCPU())
	logger.Printf("  GOMAXPROCS : %d\n", runtime.GOMAXPROCS(0))
	logger.Printf("  Go         : %s\n", runtime.Version())
	logger.Printf("  Race build : %v\n", memory.RaceEnabled)
	logger.Println()
	logger.Println("Fence modes")
	for _, m := range fence.Modes {
		logger.Printf("  %-16v %s\n", m, fenceDesc[m])
	}
	logger.Println()
	logger.Println("Memory models")
	logger.Printf("  %s\n", memory.IDNames)
	if runtime.NumCPU() < 2 {
		logger.Warn("fewer than 2 CPUs: the workers cannot race in parallel")
	}
}
