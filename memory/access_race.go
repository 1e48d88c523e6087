// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build race

package memory

import "sync/atomic"

// RaceEnabled reports whether the race detector is compiled in.
const RaceEnabled = true

// Under the race detector the racing accesses are atomic. They are
// sequentially consistent, so no reordering is observable in this build.

func load(p *int64) int64 {
	return atomic.LoadInt64(p)
}

func store(p *int64, v int64) {
	atomic.StoreInt64(p, v)
}
