// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !race

package memory

// RaceEnabled reports whether the race detector is compiled in.
const RaceEnabled = false

// The helpers are not inlined so every call is exactly one memory access the
// compiler cannot hoist out of the worker loop or merge with a neighbour.

//go:noinline
func load(p *int64) int64 {
	return *p
}

//go:noinline
func store(p *int64, v int64) {
	*p = v
}
