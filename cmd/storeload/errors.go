// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"storeload/litmus"
	"storeload/logger"
)

type errorType int

//go:generate go run golang.org/x/tools/cmd/stringer -type=errorType
const (
	selfTestFail  errorType = 3
	unexpected    errorType = 2
	internalError errorType = 1
	configError   errorType = 1
	noError       errorType = 0
)

type vError struct {
	typ    errorType
	remark litmus.Remark
	err    error
}

// vfail reports a finished run whose outcome contradicts its fence mode.
func vfail(r litmus.Remark, err error) *vError {
	return &vError{
		typ:    unexpected,
		remark: r,
		err:    err,
	}
}

func (e *vError) Error() string {
	if e.typ == unexpected {
		logger.Debugf("%v: %v", e.typ, e.remark)
	}
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *vError) Unwrap() error {
	return e.err
}

func (e *vError) Code() int {
	return int(e.typ)
}

func verror(typ errorType, err error) *vError {
	return &vError{
		typ: typ,
		err: err,
	}
}

func getErrorType(err error) string {
	if err == nil {
		return "none"
	}
	var e *vError
	if errors.As(err, &e) {
		return fmt.Sprintf("%v", e.typ)
	}
	return internalError.String()
}

func getErrorCode(err error) int {
	if err == nil {
		return int(noError)
	}
	var e *vError
	if errors.As(err, &e) {
		return e.Code()
	}
	return int(internalError)
}

func getErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
