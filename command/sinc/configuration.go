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

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/loopbench/configuration"
	"github.com/bitmark-inc/loopbench/fault"
)

// basic defaults
const (
	defaultNumItems = 1000000
	defaultSeed     = 1

	defaultLogFile  = "sinc.log"
	defaultLogCount = 10          //  number of log files retained
	defaultLogSize  = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - loop settings, from the Lua file then the command line
type Configuration struct {
	NumItems   int                  `gluamapper:"num_items"`
	NumThreads int                  `gluamapper:"num_threads"`
	Seed       int64                `gluamapper:"seed"`
	PrintSome  int                  `gluamapper:"print_some"`
	Serial     bool                 `gluamapper:"serial"`
	Trace      string               `gluamapper:"trace"`
	CPUProfile string               `gluamapper:"cpu_profile"`
	Logging    logger.Configuration `gluamapper:"logging"`
}

// will read and decode the configuration, an empty file name gives
// the defaults
//
// a relative log directory is taken relative to the configuration file
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		NumItems:   defaultNumItems,
		NumThreads: runtime.GOMAXPROCS(0),
		Seed:       defaultSeed,

		Logging: logger.Configuration{
			Directory: os.TempDir(),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "warn",
			},
		},
	}

	if "" == configurationFileName {
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	err = configuration.ParseConfigurationFile(configurationFileName, options)
	if nil != err {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		directory, _ := filepath.Split(configurationFileName)
		options.Logging.Directory = filepath.Join(directory, options.Logging.Directory)
	}

	return options, nil
}

// counts from the file get the same checks as the command line
func (c *Configuration) validate() error {
	if c.NumItems <= 0 {
		return fmt.Errorf("num_items: %d: %w", c.NumItems, fault.ErrInvalidCount)
	}
	if c.NumThreads <= 0 {
		return fmt.Errorf("num_threads: %d: %w", c.NumThreads, fault.ErrInvalidCount)
	}
	if c.PrintSome < 0 {
		return fmt.Errorf("print_some: %d: %w", c.PrintSome, fault.ErrInvalidCount)
	}
	return nil
}
