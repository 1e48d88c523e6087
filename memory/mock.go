// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package memory

// Mock holds the machine New returns for MockID.
type Mock struct {
	Machine Machine
}

var mock Mock

// GetMock return the Mock singleton.
func GetMock() *Mock {
	return &mock
}
