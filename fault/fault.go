// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrInvalidCount           = InvalidError("count must be a positive integer")
	ErrInvalidLoggerChannel   = ProcessError("invalid logger channel")
	ErrInvalidSeed            = InvalidError("seed must be an integer")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrMissingOptionValue     = InvalidError("option requires an argument")
	ErrNotFoundConfigFile     = NotFoundError("config file is not found")
	ErrOutputTooShort         = InvalidError("output is shorter than input")
	ErrUnexpectedArguments    = InvalidError("unexpected arguments")
	ErrUnexpectedOptionValue  = InvalidError("option expects no argument")
	ErrUnknownLongOption      = NotFoundError("unrecognized long option")
	ErrUnknownShortOption     = NotFoundError("short option not recognized")
	ErrUnsupportedConfigValue = InvalidError("configuration did not return a table")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
//
// wrapped errors are unwrapped until a classified error is found
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
