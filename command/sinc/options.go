// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/loopbench/fault"
	"github.com/bitmark-inc/loopbench/getoptions"
)

// codes of the long-only options
const (
	traceCode      = '\x01'
	cpuProfileCode = '\x02'
)

// used when --print-some is given without a count
const defaultPrintSome = 10

var optionTable = getoptions.Table{
	{Long: "help", Short: 'h', HasArg: getoptions.NoArgument, Description: "print this usage dialog"},
	{Long: "version", Short: 'V', HasArg: getoptions.NoArgument, Description: "print the program version"},
	{Long: "verbose", Short: 'v', HasArg: getoptions.NoArgument, Description: "log debug messages to the console"},
	{Long: "config-file", Short: 'c', HasArg: getoptions.RequiredArgument, Description: "Lua file supplying defaults and logging setup"},
	{Long: "num-items", Short: 'N', HasArg: getoptions.RequiredArgument, Description: fmt.Sprintf("number of array items (default: %d)", defaultNumItems)},
	{Long: "num-threads", Short: 't', HasArg: getoptions.RequiredArgument, Description: "number of workers to use (default: max)"},
	{Long: "seed", Short: 's', HasArg: getoptions.RequiredArgument, Description: fmt.Sprintf("random generator seed (default: %d)", defaultSeed)},
	{Long: "print-some", Short: 'p', HasArg: getoptions.OptionalArgument, Description: fmt.Sprintf("print the first values of the result (default: %d)", defaultPrintSome)},
	{Long: "serial", Short: 'S', HasArg: getoptions.NoArgument, Description: "run the loop without workers"},
	{Long: "trace", Short: traceCode, HasArg: getoptions.RequiredArgument, Description: "write an execution trace of the loop to a file"},
	{Long: "cpu-profile", Short: cpuProfileCode, HasArg: getoptions.RequiredArgument, Description: "write a CPU profile of the loop to a file"},
}

// the options as given on the command line
type commandLine struct {
	help    bool
	version bool
	verbose bool
	serial  bool

	configFile string

	// last value of each valued option, keyed by option code
	values map[rune]string
}

// scan the arguments, diagnostics are written to errors
//
// an error event or any positional argument also sets help
func scanOptions(arguments []string, errors io.Writer) (*commandLine, error) {
	s := getoptions.New(optionTable, arguments)
	s.SetReporter(getoptions.NewWriterReporter(errors))

	c := &commandLine{
		values: make(map[rune]string),
	}

loop:
	for {
		result, ok := s.Next()
		if !ok {
			break loop
		}

		switch result.Code {
		case 'V':
			c.version = true
		case 'v':
			c.verbose = true
		case 'S':
			c.serial = true
		case 'c':
			c.configFile = result.Value
		case 'N', 't', 's', 'p', traceCode, cpuProfileCode:
			c.values[result.Code] = result.Value
		case 'h':
			c.help = true
		default:
			c.help = true
			return c, s.Err()
		}
	}

	if extra := s.Arguments(); len(extra) > 0 {
		c.help = true
		return c, fmt.Errorf("%w: %q", fault.ErrUnexpectedArguments, extra)
	}
	return c, nil
}

// the scanner writes its own diagnostics, anything else still needs printing
func alreadyReported(err error) bool {
	var scanError *getoptions.ScanError
	return errors.As(err, &scanError)
}

// override the configuration with the command-line values
func (c *commandLine) apply(config *Configuration) error {
	for code, value := range c.values {
		switch code {
		case 'N':
			n, err := positive(value)
			if nil != err {
				return fmt.Errorf("num-items: %w", err)
			}
			config.NumItems = n
		case 't':
			n, err := positive(value)
			if nil != err {
				return fmt.Errorf("num-threads: %w", err)
			}
			config.NumThreads = n
		case 's':
			seed, err := strconv.ParseInt(value, 10, 64)
			if nil != err {
				return fmt.Errorf("seed: %q: %w", value, fault.ErrInvalidSeed)
			}
			config.Seed = seed
		case 'p':
			if "" == value {
				config.PrintSome = defaultPrintSome
				continue
			}
			n, err := positive(value)
			if nil != err {
				return fmt.Errorf("print-some: %w", err)
			}
			config.PrintSome = n
		case traceCode:
			config.Trace = value
		case cpuProfileCode:
			config.CPUProfile = value
		}
	}

	if c.serial {
		config.Serial = true
	}
	return nil
}

func positive(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if nil != err || n <= 0 {
		return 0, fmt.Errorf("%q: %w", value, fault.ErrInvalidCount)
	}
	return n, nil
}
