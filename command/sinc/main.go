// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/loopbench/fault"
	"github.com/bitmark-inc/loopbench/getoptions"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	program := filepath.Base(os.Args[0])

	commandLine, err := scanOptions(os.Args, os.Stderr)
	if nil != err && !alreadyReported(err) {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
	}
	if commandLine.help {
		getoptions.PrintUsage(fmt.Sprintf("usage: %s [options]", program), optionTable)
		exitwithstatus.Exit(1)
	}

	if commandLine.version {
		fmt.Printf("%s version: %s\n", program, version)
		return
	}

	// read the configuration file, then let the command line override it
	theConfiguration, err := getConfiguration(commandLine.configFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, commandLine.configFile, err)
	}
	if err = commandLine.apply(theConfiguration); nil != err {
		exitwithstatus.Message("%s: invalid option: %s", program, err)
	}
	if commandLine.verbose {
		theConfiguration.Logging.Console = true
		if nil == theConfiguration.Logging.Levels {
			theConfiguration.Logging.Levels = make(map[string]string)
		}
		theConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %+v", theConfiguration)

	runtime.GOMAXPROCS(theConfiguration.NumThreads)

	inputs := makeInputs(theConfiguration.NumItems, theConfiguration.Seed)
	outputs := make([]float64, len(inputs))

	p, err := startProfiling(theConfiguration.Trace, theConfiguration.CPUProfile)
	if nil != err {
		log.Criticalf("profiling error: %s", err)
		exitwithstatus.Message("%s: profiling error: %s", program, err)
	}

	// execute loop
	startTime := time.Now()
	processed, err := runLoop(inputs, outputs, theConfiguration.NumThreads, theConfiguration.Serial)
	stopTime := time.Now()

	if stopErr := p.stop(); nil != stopErr {
		fault.Criticalf("profile output: %s", stopErr)
	}
	if nil != err {
		log.Criticalf("loop error: %s", err)
		exitwithstatus.Message("%s: loop error: %s", program, err)
	}

	loopLog := logger.New("loop")
	loopLog.Infof("items: %d  processed: %d  workers: %d  serial: %t",
		len(inputs), processed, theConfiguration.NumThreads, theConfiguration.Serial)

	// print execution time
	fmt.Println(stopTime.Sub(startTime))

	// print some output values
	if n := minInt(theConfiguration.PrintSome, len(inputs)); n > 0 {
		fmt.Println("inputs:", inputs[:n])
		fmt.Println("outputs:", outputs[:n])
	}
}
