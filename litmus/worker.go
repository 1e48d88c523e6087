// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package litmus

// work runs the cycle of role r until the controller stops it:
//
//	AwaitRelease -> Store -> Fence -> Load -> RecordRunCount -> SignalDone
//
// Both roles run this function; they differ only in the cells they touch.
func (c *Controller) work(r Role) {
	var (
		m      = c.machine
		s      = &c.state
		cpu    = int(r)
		own    = &s.X[r]
		other  = &s.X[r.Other()]
		result = &s.R[r]
	)
	for {
		c.start.SignalAndWait()
		if c.stop.Load() {
			return
		}

		m.Store(cpu, own, 1)
		m.Fence(cpu, c.strategy)
		m.Store(cpu, result, m.Load(cpu, other))

		s.Runs[r].Inc()

		c.join.SignalAndWait()
	}
}
