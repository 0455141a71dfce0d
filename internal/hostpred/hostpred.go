// Copyright 2025 nativegen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hostpred evaluates wrapper-table platform predicates against the
// host, as a build-debugging aid: it answers which kernel groups would
// survive preprocessing if the generated wrappers were compiled here.
package hostpred

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// archMacros maps GOARCH to the architecture macros the target compiler
// would predefine there.
var archMacros = map[string][]string{
	"386":   {"__i386__", "__i686__"},
	"amd64": {"__x86_64__"},
	"arm":   {"__arm__"},
	"arm64": {"__aarch64__"},
}

// Holds reports whether a wrapper-table predicate would evaluate true for
// the host build target. The supported grammar is what the kernel tables
// use: "defined(MACRO)" terms joined by "||". An empty predicate is the
// unconditional group and always holds.
func Holds(predicate string) bool {
	return holdsFor(predicate, archMacros[runtime.GOARCH])
}

func holdsFor(predicate string, macros []string) bool {
	if predicate == "" {
		return true
	}
	for _, term := range strings.Split(predicate, "||") {
		term = strings.TrimSpace(term)
		name, ok := strings.CutPrefix(term, "defined(")
		if !ok {
			continue
		}
		name, ok = strings.CutSuffix(name, ")")
		if !ok {
			continue
		}
		for _, m := range macros {
			if m == strings.TrimSpace(name) {
				return true
			}
		}
	}
	return false
}

// Features summarizes the host CPU capabilities the kernel inventory cares
// about: the NEON and FP16 levels on ARM, and the SSE levels on x86.
type Features struct {
	NEON      bool
	FP16Arith bool
	SSE2      bool
	SSSE3     bool
	SSE41     bool
}

// Detect probes the host CPU.
func Detect() Features {
	var f Features
	switch runtime.GOARCH {
	case "arm":
		f.NEON = cpu.ARM.HasNEON
		f.FP16Arith = cpu.ARM.HasVFPv4
	case "arm64":
		f.NEON = cpu.ARM64.HasASIMD
		f.FP16Arith = cpu.ARM64.HasASIMDHP
	case "386", "amd64":
		f.SSE2 = cpu.X86.HasSSE2
		f.SSSE3 = cpu.X86.HasSSSE3
		f.SSE41 = cpu.X86.HasSSE41
	}
	return f
}
