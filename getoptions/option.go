// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

// HasArg - whether an option takes a value
type HasArg int

// option value kinds
const (
	NoArgument HasArg = iota
	OptionalArgument
	RequiredArgument
)

// ErrorCode - code of the single event returned when scanning fails
const ErrorCode = '?'

// Option - one row of an option table
//
// Short is the code returned for the option, whichever form was used
// on the command line.  Only alphanumeric codes can be given as short
// options; any other non-zero code makes the option long-only.
type Option struct {
	Long        string
	Short       rune
	HasArg      HasArg
	Description string
}

// Table - ordered list of options
//
// The table ends at the end of the slice or at the first entry with a
// zero Short code, whichever comes first.  Alphanumeric short codes
// and long names must be unique; this is not checked.
type Table []Option

// Result - one event from Scanner.Next
//
// HasValue distinguishes "--name=" (empty value given) from "--name"
// (no value given).  Option is nil for the error event.
type Result struct {
	Code     rune
	Value    string
	HasValue bool
	Option   *Option
}

// Key - the name used for an option in an OptionsMap
func (option *Option) Key() string {
	if "" != option.Long {
		return option.Long
	}
	return string(option.Short)
}

// IsShort - true if the option can be given in short form
func (option *Option) IsShort() bool {
	return isShortCode(option.Short)
}

// the entries before the terminator
func (table Table) entries() Table {
	for i := range table {
		if 0 == table[i].Short {
			return table[:i]
		}
	}
	return table
}

// ASCII letters and digits only
func isShortCode(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
