// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"storeload/litmus"
	"storeload/logger"
)

var (
	reorderColor = color.New(color.FgYellow).SprintFunc()
	failColor    = color.New(color.FgRed, color.Bold).SprintFunc()
	okColor      = color.New(color.FgGreen).SprintFunc()
	badColor     = color.New(color.FgRed).SprintFunc()
)

// printer is the sink writing the events of a run to the logger.
type printer struct {
	// tty enables the in-place progress line
	tty      bool
	progress bool
}

func newPrinter() *printer {
	return &printer{tty: term.IsTerminal(int(os.Stdout.Fd()))}
}

func (p *printer) Emit(e litmus.Event) {
	switch e := e.(type) {
	case litmus.Progress:
		if p.tty {
			logger.Printf("\r%v", e)
			p.progress = true
		} else {
			logger.Info(e)
		}
	case litmus.Reordering:
		p.endProgress()
		logger.Println(reorderColor(e))
	case litmus.SelfTestFailure:
		p.endProgress()
		logger.Println(failColor(e))
	case litmus.Summary:
		p.endProgress()
		printSummary(e)
	}
}

func (p *printer) endProgress() {
	if p.progress {
		logger.Println()
		p.progress = false
	}
}

func printSummary(s litmus.Summary) {
	lines := s.Lines()
	last := len(lines) - 1
	if s.Remark.Unexpected() {
		lines[last] = badColor(lines[last])
	} else {
		lines[last] = okColor(lines[last])
	}
	logger.Println()
	for _, l := range lines {
		logger.Println(l)
	}
	logger.Debugf("elapsed %v, iteration mean %v (sd=%v)", s.Elapsed, s.MeanIteration, s.SDIteration)
}

// report is the plain text form of a summary written by --output.
type report litmus.Summary

func (r report) String() string {
	return strings.Join(litmus.Summary(r).Lines(), "\n") + "\n"
}
