// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package memory

import (
	"errors"
	"fmt"
	"strings"

	"storeload/logger"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=ID -linecomment
type ID int

// Selectable machines. InvalidID represents any unknown machine, StoreBufferID
// drains with a given probability, EagerID after every store and LazyID
// never spontaneously. MockID selects the machine set on the Mock singleton.
const (
	InvalidID     ID = iota // invalid
	HardwareID              // hardware
	StoreBufferID           // tso
	EagerID                 // tso-eager
	LazyID                  // tso-lazy
	MockID                  // mock
)

// IDNames lists the names accepted by ParseID.
const IDNames = "hardware|tso|tso-eager|tso-lazy"

// ErrNoMockMachine is returned by New for MockID while the mock is empty.
var ErrNoMockMachine = errors.New("mock machine not set")

// ParseID parses a string and returns an equivalent machine identifier.
func ParseID(s string) ID {
	logger.Debugf("parsing memory model '%s'", s)

	switch strings.ToLower(s) {
	case "hardware", "hw":
		return HardwareID
	case "tso", "storebuffer":
		return StoreBufferID
	case "tso-eager":
		return EagerID
	case "tso-lazy":
		return LazyID
	case "mock":
		return MockID
	default:
		return InvalidID
	}
}

// New builds the machine identified by id. drain only applies to StoreBufferID
// and seed to the store buffer models.
func New(id ID, drain float64, seed int64) (Machine, error) {
	switch id {
	case HardwareID:
		return NewHardware(), nil
	case StoreBufferID:
		if drain < 0 || drain > 1 {
			return nil, fmt.Errorf("drain probability out of range [0,1]: %v", drain)
		}
		return NewStoreBuffer(drain, seed), nil
	case EagerID:
		return NewStoreBuffer(1, seed), nil
	case LazyID:
		return NewStoreBuffer(0, seed), nil
	case MockID:
		if mock.Machine == nil {
			return nil, ErrNoMockMachine
		}
		return mock.Machine, nil
	default:
		return nil, fmt.Errorf("invalid memory model '%v' (valid: %s)", id, IDNames)
	}
}
