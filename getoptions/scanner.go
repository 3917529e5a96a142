// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/loopbench/fault"
)

const endOfOptions = "--"

// Scanner - state of one scan over an argument list
//
// a scanner is used by a single caller: Next until it reports
// exhaustion, then NextArgument to drain the positional arguments
type Scanner struct {
	short map[rune]*Option
	long  map[string]*Option

	arguments []string // arguments[0] is the program name
	index     int      // next argument to process
	offset    int      // byte offset into arguments[index] while in a cluster
	fresh     bool     // false while inside a short option cluster

	positional []string // FIFO
	err        error

	reporter Reporter
	log      *logger.L
}

// New - create a scanner over arguments using the option table
//
// a nil table makes every argument after the program name positional
func New(table Table, arguments []string) *Scanner {
	s := &Scanner{
		arguments: arguments,
		index:     1,
		fresh:     true,
		reporter:  NewWriterReporter(os.Stderr),
	}

	if nil == table {
		if len(arguments) > 1 {
			s.positional = append(s.positional, arguments[1:]...)
		}
		s.index = len(arguments)
		return s
	}

	entries := table.entries()
	s.short = make(map[rune]*Option, len(entries))
	s.long = make(map[string]*Option, len(entries))
	for i := range entries {
		option := &entries[i]
		if isShortCode(option.Short) {
			s.short[option.Short] = option
		}
		if "" != option.Long {
			s.long[option.Long] = option
		}
	}
	return s
}

// SetReporter - redirect diagnostics, the default is standard error
func (s *Scanner) SetReporter(reporter Reporter) {
	if nil == reporter {
		reporter = Discard
	}
	s.reporter = reporter
}

// SetLogger - trace scan events on a logger channel
func (s *Scanner) SetLogger(log *logger.L) {
	s.log = log
}

// Next - get the next option and its value
//
// returns false when there are no more options, i.e. the end of the
// arguments, or "--" was reached, or a previous call failed.  A failed
// scan returns one event with Code set to ErrorCode.
func (s *Scanner) Next() (Result, bool) {
	for s.index < len(s.arguments) {

		if !s.fresh {
			return s.nextShort()
		}

		argument := s.arguments[s.index]
		switch {
		case endOfOptions == argument:
			s.positional = append(s.positional, s.arguments[s.index+1:]...)
			s.index = len(s.arguments)

		case strings.HasPrefix(argument, endOfOptions):
			return s.nextLong(argument[len(endOfOptions):])

		case len(argument) > 1 && '-' == argument[0]:
			s.fresh = false
			s.offset = 1

		default:
			s.positional = append(s.positional, argument)
			s.index += 1
		}
	}
	return Result{Code: ErrorCode}, false
}

// long option, the leading "--" already removed
func (s *Scanner) nextLong(name string) (Result, bool) {
	value := ""
	hasValue := false
	if n := strings.IndexByte(name, '='); n >= 0 {
		value = name[n+1:]
		name = name[:n]
		hasValue = true
	}

	option, ok := s.long[name]
	if !ok {
		return s.fail(fault.ErrUnknownLongOption, name, true)
	}

	switch option.HasArg {
	case NoArgument:
		if hasValue {
			return s.fail(fault.ErrUnexpectedOptionValue, name, true)
		}
	case RequiredArgument:
		if !hasValue {
			s.index += 1
			if s.index >= len(s.arguments) {
				return s.fail(fault.ErrMissingOptionValue, name, true)
			}
			value = s.arguments[s.index]
			hasValue = true
		}
	}

	s.index += 1
	return s.emit(option, value, hasValue)
}

// the character at offset in the current cluster
func (s *Scanner) nextShort() (Result, bool) {
	argument := s.arguments[s.index]
	c, size := utf8.DecodeRuneInString(argument[s.offset:])

	option, ok := s.short[c]
	if !ok {
		name := string(c)
		if utf8.RuneError == c && 1 == size {
			// show the byte as typed, not the replacement character
			name = strings.Trim(strconv.Quote(argument[s.offset:s.offset+1]), `"`)
		}
		return s.fail(fault.ErrUnknownShortOption, name, false)
	}

	s.offset += size
	rest := argument[s.offset:]

	value := ""
	hasValue := false
	if NoArgument != option.HasArg && "" != rest {
		value = rest
		hasValue = true
	}

	if RequiredArgument == option.HasArg && !hasValue {
		s.index += 1
		if s.index >= len(s.arguments) {
			return s.fail(fault.ErrMissingOptionValue, string(c), false)
		}
		value = s.arguments[s.index]
		hasValue = true
	}

	// stay in the cluster only after a flag with more flags following
	if NoArgument != option.HasArg || "" == rest {
		s.index += 1
		s.offset = 0
		s.fresh = true
	}

	return s.emit(option, value, hasValue)
}

func (s *Scanner) emit(option *Option, value string, hasValue bool) (Result, bool) {
	if nil != s.log {
		s.log.Debugf("option: %q  value: %q  has value: %t", option.Key(), value, hasValue)
	}
	return Result{
		Code:     option.Short,
		Value:    value,
		HasValue: hasValue,
		Option:   option,
	}, true
}

// record the error, report it and stop any further scanning
func (s *Scanner) fail(err error, name string, long bool) (Result, bool) {
	s.err = &ScanError{
		Err:    err,
		Option: name,
		Long:   long,
	}
	s.index = len(s.arguments)
	s.fresh = true
	s.offset = 0

	if nil != s.log {
		s.log.Warnf("scan stopped: %s", s.err)
	}
	s.reporter.Report(s.err)

	return Result{Code: ErrorCode}, true
}

// Err - the error that stopped the scan, nil if none
func (s *Scanner) Err() error {
	return s.err
}

// NextArgument - get the oldest unread positional argument
func (s *Scanner) NextArgument() (string, bool) {
	if 0 == len(s.positional) {
		return "", false
	}
	argument := s.positional[0]
	s.positional = s.positional[1:]
	return argument, true
}

// Arguments - drain all unread positional arguments
func (s *Scanner) Arguments() []string {
	arguments := make([]string, 0, len(s.positional))
	for argument, ok := s.NextArgument(); ok; argument, ok = s.NextArgument() {
		arguments = append(arguments, argument)
	}
	return arguments
}
