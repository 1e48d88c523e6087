// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package logger

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	defer func() {
		SetOutput(os.Stdout)
		SetLevel(ERROR)
	}()

	testCases := []struct {
		level Level
		out   string
	}{
		{ERROR, "e\n"},
		{WARN, "e\nw\n"},
		{INFO, "e\nw\ni\n"},
		{DEBUG, "e\nw\ni\nd 1\n"},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc.level), func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			SetLevel(tc.level)
			Error("e")
			Warnf("%s", "w")
			Info("i")
			Debugf("d %d", 1)
			assert.Equal(t, tc.out, buf.String())
		})
	}
}

func TestQuiet(t *testing.T) {
	defer SetOutput(os.Stdout)
	SetOutput(nil)
	SetLevel(DEBUG)
	defer SetLevel(ERROR)
	// must not panic nor write anywhere
	Println("hidden")
	Debugf("hidden %d", 1)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("DEBUG"))
	assert.Equal(t, INFO, ParseLevel("INFO"))
	assert.Equal(t, WARN, ParseLevel("WARN"))
	assert.Equal(t, ERROR, ParseLevel("ERROR"))
	assert.Equal(t, ERROR, ParseLevel("verbose"))
}
