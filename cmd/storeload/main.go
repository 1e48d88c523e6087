// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the storeload program: a StoreLoad reordering litmus test
// for the host memory system.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"storeload/logger"
	"storeload/tools"
)

var rootCmd = cobra.Command{
	Use:           "storeload",
	Short:         "",
	Long:          "",
	SilenceUsage:  true,
	SilenceErrors: true,

	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("run 'storeload -h' for help")
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetLevel(logger.ParseLevel(rootFlags.log))
		if rootFlags.debug {
			logger.SetLevel(logger.DEBUG)
		}
		if rootFlags.quiet {
			logger.SetOutput(nil)
		}
	},
}

func init() {
	tools.RegEnv("STORELOAD_DEFAULT_FENCE", "None", "Default fence mode")
	tools.RegEnv("STORELOAD_DEFAULT_MODEL", "hardware", "Default memory model")
	tools.RegEnv("STORELOAD_SPIN", "0", "Barrier spin count (0 = default, negative = no spinning)")

	helpMessage :=
		`storeload -- StoreLoad reordering litmus test`

	helpMessage += "\n\nEnvironment Variables:"
	for _, ev := range tools.GetEnvvars() {
		helpMessage += "\n  " + ev.Name + " " +
			"(default: \"" + ev.Defv + "\")\n\t" + ev.Desc
	}
	rootCmd.Long = helpMessage

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.log, "log", "ERROR", "log level (ERROR|WARN|INFO|DEBUG)")
	flags.StringVarP(&rootFlags.outputFn, "output", "o", "", "write the final report to file")
	flags.BoolVarP(&rootFlags.debug, "debug", "d", false, "set debug mode")
	flags.BoolVarP(&rootFlags.quiet, "quiet", "q", false, "do not produce output")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

var rootFlags struct {
	log      string
	debug    bool
	outputFn string
	quiet    bool
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var (
			code = getErrorCode(err)
			msg  = getErrorMessage(err)
		)
		if msg != "" {
			logger.Println(msg)
		}
		os.Exit(code)
	}
}
