// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tools contains the environment variable registry and file helpers
// shared by the commands.
package tools

import (
	"errors"
	"fmt"
	"os"

	"storeload/logger"
)

// FileMode is the permission of files created by the tools.
const FileMode = 0600

// MockFileExistsErr is a mock error returned by FileExists in tests
var MockFileExistsErr error

// FileExists returns nil if a file exists otherwise an error
func FileExists(fn string) error {
	if MockFileExistsErr != nil {
		return MockFileExistsErr
	}
	if _, err := os.Stat(fn); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file does not exist: %s", fn)
	}
	return nil
}

// Dump writes the string representation of m to a file, replacing its content.
func Dump(m fmt.Stringer, fn string) error {
	logger.Debugf("Dump file '%s'", fn)
	out, err := os.OpenFile(fn,
		os.O_TRUNC|os.O_WRONLY|os.O_CREATE, FileMode)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()
	_, err = fmt.Fprint(out, m)
	return err
}

// Append opens fn for appending, creating it if needed. The returned flag
// tells whether the file is new.
func Append(fn string) (*os.File, bool, error) {
	created := FileExists(fn) != nil
	fp, err := os.OpenFile(fn, os.O_APPEND|os.O_WRONLY|os.O_CREATE, FileMode)
	if err != nil {
		return nil, false, err
	}
	return fp, created, nil
}
