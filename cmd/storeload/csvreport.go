// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"

	"storeload/fence"
	"storeload/litmus"
	"storeload/logger"
	"storeload/tools"
)

// csvReport is one line of the CSV log. The exported fields are filled from
// a litmus.Summary.
type csvReport struct {
	Fence      fence.Mode
	Iterations int
	Reordered  int
	Ratio      int
	Percent    float64
	Remark     litmus.Remark
	Elapsed    time.Duration

	model string
	err   error
}

const (
	dateTime  = "2006-01-02 15:04:05"
	csvHeader = "# date, model, fence, iterations, reordered, ratio, percent, remark, duration, error_type, exit_code"
)

func newCSVReport(model string, s litmus.Summary, err error) csvReport {
	r := csvReport{model: model, err: err}
	if cerr := copier.Copy(&r, &s); cerr != nil {
		logger.Warnf("could not copy summary: %v", cerr)
	}
	return r
}

func (csv csvReport) save(filename string) {
	if filename == "" {
		return
	}
	fp, withHeader, err := tools.Append(filename)
	if err != nil {
		logger.Fatalf("could not open file: %v", filename)
	}
	defer func() {
		if err := fp.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()

	if withHeader {
		fmt.Fprintln(fp, csvHeader)
	}

	fmt.Fprintf(fp, "%s, %s, %v, %d, %d, %d, %.4f, %q, %v, %s, %d\n",
		time.Now().Format(dateTime),
		csv.model,
		csv.Fence,
		csv.Iterations,
		csv.Reordered,
		csv.Ratio,
		csv.Percent,
		csv.Remark,
		csv.Elapsed,
		getErrorType(csv.err),
		getErrorCode(csv.err))
}
