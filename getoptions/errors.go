// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/loopbench/fault"
)

// ScanError - the error that stopped a scan
//
// Err is one of the fault option errors, Option is the long name or
// the short option character as given on the command line
type ScanError struct {
	Err    error
	Option string
	Long   bool
}

func (e *ScanError) Error() string {
	switch {
	case fault.ErrUnknownLongOption == e.Err:
		return fmt.Sprintf("unrecognized long option '%s'", e.Option)
	case fault.ErrUnknownShortOption == e.Err:
		return fmt.Sprintf("short option '%s' not recognized", e.Option)
	case fault.ErrUnexpectedOptionValue == e.Err:
		return fmt.Sprintf("long option '%s' expects no argument", e.Option)
	case fault.ErrMissingOptionValue == e.Err && e.Long:
		return fmt.Sprintf("long option '%s' requires an argument", e.Option)
	case fault.ErrMissingOptionValue == e.Err:
		return fmt.Sprintf("short option '%s' expects an argument", e.Option)
	default:
		return fmt.Sprintf("option '%s': %s", e.Option, e.Err)
	}
}

// Unwrap - access the fault instance
func (e *ScanError) Unwrap() error {
	return e.Err
}

//go:generate mockgen -source=errors.go -destination=mocks/reporter.go -package=mocks

// Reporter - receives the diagnostic for a failed scan
type Reporter interface {
	Report(err error)
}

// Discard - a reporter that ignores all diagnostics
var Discard Reporter = discardReporter{}

type discardReporter struct{}

func (discardReporter) Report(error) {}

type writerReporter struct {
	w io.Writer
}

// NewWriterReporter - write each diagnostic as one "error: ..." line
func NewWriterReporter(w io.Writer) Reporter {
	return writerReporter{w: w}
}

func (r writerReporter) Report(err error) {
	fmt.Fprintf(r.w, "error: %s\n", err)
}
