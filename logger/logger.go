// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logger implements a simple logger with a few error levels.
package logger

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level represents the amount of detail in which the log is output.
type Level int

const (
	fatal Level = iota
	// ERROR only log errors
	ERROR
	// WARN only log warnings and errors
	WARN
	// INFO log information, warnings and errors
	INFO
	// DEBUG log as much as possible
	DEBUG
)

var (
	mu     sync.Mutex
	logger *bufio.Writer
	level  = ERROR
)

func init() {
	logger = bufio.NewWriter(os.Stdout)
}

// SetOutput sets the writer to which the output is sent.
// If w is nil, no output is shown.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		logger = nil
		return
	}
	logger = bufio.NewWriter(w)
}

// SetLevel reconfigures the error level of the logger.
func SetLevel(l Level) {
	mu.Lock()
	level = l
	mu.Unlock()
}

// ParseLevel maps a level name as given on the command line to a Level.
// Unknown names map to ERROR.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	default:
		return ERROR
	}
}

func enabled(l Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return logger != nil && level >= l
}

// Fatal works as Error, but aborts the program.
func Fatal(args ...any) {
	Println(args...)
	fail()
}

// Fatalf works as Errorf, but aborts the program.
func Fatalf(format string, args ...any) {
	Printf(format, args...)
	Println()
	fail()
}

// Error works as fmt.Print, but it adds a newline at the end of the format string.
func Error(args ...any) {
	if !enabled(ERROR) {
		return
	}
	Println(args...)
}

// Errorf works as fmt.Printf, but it adds a newline at the end of the format string.
func Errorf(format string, args ...any) {
	if !enabled(ERROR) {
		return
	}
	Printf(format, args...)
	Println()
}

// Warn works as fmt.Print when error level is WARN. It adds a newline at the end of the format string.
func Warn(args ...any) {
	if !enabled(WARN) {
		return
	}
	Println(args...)
}

// Warnf works as fmt.Printf when error level is WARN. It adds a newline at the end of the format string.
func Warnf(format string, args ...any) {
	if !enabled(WARN) {
		return
	}
	Printf(format, args...)
	Println()
}

// Info works as fmt.Print when error level is INFO. It adds a newline at the end of the format string.
func Info(args ...any) {
	if !enabled(INFO) {
		return
	}
	Println(args...)
}

// Infof works as fmt.Printf when error level is INFO. It adds a newline at the end of the format string.
func Infof(format string, args ...any) {
	if !enabled(INFO) {
		return
	}
	Printf(format, args...)
	Println()
}

// Debug works as fmt.Print when error level is DEBUG. It adds a newline at the end of the format string.
func Debug(args ...any) {
	if !enabled(DEBUG) {
		return
	}
	Println(args...)
}

// Debugf works as fmt.Printf when error level is DEBUG. It adds a newline at the end of the format string.
func Debugf(format string, args ...any) {
	if !enabled(DEBUG) {
		return
	}
	Printf(format, args...)
	Println()
}

// Print works as fmt.Print, but flushes the output.
func Print(args ...any) {
	write(func(w io.Writer) (int, error) { return fmt.Fprint(w, args...) })
}

// Println works as fmt.Println, but flushes the output.
func Println(args ...any) {
	write(func(w io.Writer) (int, error) { return fmt.Fprintln(w, args...) })
}

// Printf works as fmt.Printf, but flushes the output.
func Printf(format string, args ...any) {
	write(func(w io.Writer) (int, error) { return fmt.Fprintf(w, format, args...) })
}

func write(fn func(io.Writer) (int, error)) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return
	}
	if _, err := fn(logger); err != nil {
		fail()
	}
	if logger.Flush() != nil {
		fail()
	}
}

func fail() {
	// use log.Fatal instead of panic to make linter happy
	log.Fatal()
}
