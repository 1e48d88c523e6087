// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"os"
	"sort"
	"sync"
)

// Envvar describes an environment variable the program reads.
type Envvar struct {
	Name string
	Defv string
	Desc string
}

var (
	envMu   sync.Mutex
	envvars = map[string]Envvar{}
)

// RegEnv registers an environment variable with its default value and a
// description shown in the help message.
func RegEnv(name, defv, desc string) {
	envMu.Lock()
	defer envMu.Unlock()
	envvars[name] = Envvar{Name: name, Defv: defv, Desc: desc}
}

// GetEnv returns the value of a registered environment variable or its
// default value if unset. Unregistered variables return "".
func GetEnv(name string) string {
	envMu.Lock()
	ev, has := envvars[name]
	envMu.Unlock()
	if !has {
		return ""
	}
	if val, ok := os.LookupEnv(name); ok { //permit:os.LookupEnv
		return val
	}
	return ev.Defv
}

// GetEnvvars returns the registered environment variables sorted by name.
func GetEnvvars() []Envvar {
	envMu.Lock()
	defer envMu.Unlock()
	var evs []Envvar
	for _, ev := range envvars {
		evs = append(evs, ev)
	}
	sort.Slice(evs, func(i, j int) bool { return evs[i].Name < evs[j].Name })
	return evs
}
