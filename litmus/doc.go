// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package litmus runs the StoreLoad litmus test.
//
// Two workers repeatedly store 1 into their own cell and then load the cell of
// the other worker:
//
//	A: x0 = 1; fence; r0 = x1
//	B: x1 = 1; fence; r1 = x0
//
// Under sequential consistency at least one of r0 and r1 is 1. An iteration
// that ends with r0 == 0 && r1 == 0 observed a StoreLoad reordering. The
// Controller resets the cells, releases the workers through a start barrier,
// waits for them on a join barrier, checks its own synchronization and
// classifies the outcome.
package litmus
