// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"runtime/pprof"
	"runtime/trace"
)

// open trace and profile files around the loop
type profiling struct {
	traceFile *os.File
	cpuFile   *os.File
}

// an empty file name disables that output
func startProfiling(traceName string, cpuProfileName string) (*profiling, error) {
	p := &profiling{}

	if "" != traceName {
		f, err := os.Create(traceName)
		if nil != err {
			return nil, err
		}
		if err := trace.Start(f); nil != err {
			f.Close()
			return nil, err
		}
		p.traceFile = f
	}

	if "" != cpuProfileName {
		f, err := os.Create(cpuProfileName)
		if nil != err {
			p.stop()
			return nil, err
		}
		if err := pprof.StartCPUProfile(f); nil != err {
			f.Close()
			p.stop()
			return nil, err
		}
		p.cpuFile = f
	}

	return p, nil
}

// stop everything started, returning the first close error
func (p *profiling) stop() error {
	var firstErr error

	if nil != p.traceFile {
		trace.Stop()
		if err := p.traceFile.Close(); nil != err && nil == firstErr {
			firstErr = err
		}
		p.traceFile = nil
	}

	if nil != p.cpuFile {
		pprof.StopCPUProfile()
		if err := p.cpuFile.Close(); nil != err && nil == firstErr {
			firstErr = err
		}
		p.cpuFile = nil
	}

	return firstErr
}
