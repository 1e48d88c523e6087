// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"storeload/litmus"
	"storeload/logger"
	"storeload/tools"
)

// captureOutput redirects the logger into a buffer until the test ends.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		logger.SetOutput(os.Stdout)
		logger.SetLevel(logger.ERROR)
		color.NoColor = noColor
	})
	return &buf
}

// resetFlags restores the run flags to their defaults.
func resetFlags(t *testing.T) {
	t.Helper()
	runFlags.fence = "None"
	runFlags.model = "tso"
	runFlags.drain = 0
	runFlags.seed = 1
	runFlags.spin = 0
	runFlags.progress = 0
	runFlags.csvFile = ""
	runFlags.strict = false
	runFlags.timeout = 0
	rootFlags.outputFn = ""
}

func TestHelpListsEnvironment(t *testing.T) {
	for _, ev := range tools.GetEnvvars() {
		assert.Contains(t, rootCmd.Long, ev.Name)
	}
	assert.Contains(t, rootCmd.Long, "STORELOAD_DEFAULT_FENCE")
}

func TestVersion(t *testing.T) {
	buf := captureOutput(t)
	versionCmd.Run(&versionCmd, nil)
	assert.Equal(t, "storeload latest\n", buf.String())
}

func TestInfo(t *testing.T) {
	buf := captureOutput(t)
	Info()
	out := buf.String()
	assert.Contains(t, out, "GOMAXPROCS")
	assert.Contains(t, out, "OpaqueAtomicRMW")
	assert.Contains(t, out, "hardware|tso")
}

func TestErrorCodes(t *testing.T) {
	testCases := []struct {
		err  error
		code int
		typ  string
	}{
		{nil, 0, "none"},
		{os.ErrNotExist, 1, "internalError"},
		{verror(configError, os.ErrInvalid), 1, "internalError"},
		{verror(selfTestFail, os.ErrInvalid), 3, "selfTestFail"},
		{vfail(0, os.ErrInvalid), 2, "unexpected"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.code, getErrorCode(tc.err))
		assert.Equal(t, tc.typ, getErrorType(tc.err))
	}
	assert.Equal(t, "", getErrorMessage(nil))
	assert.ErrorIs(t, verror(configError, os.ErrInvalid), os.ErrInvalid)
}

func TestUnexpectedErrorLogsRemark(t *testing.T) {
	buf := captureOutput(t)
	logger.SetLevel(logger.DEBUG)
	err := vfail(litmus.RemarkUnexpected, os.ErrInvalid)
	assert.Equal(t, os.ErrInvalid.Error(), err.Error())
	assert.Contains(t, buf.String(), "unexpected: unexpected given active fences")
}
