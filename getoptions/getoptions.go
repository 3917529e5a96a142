// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"os"
	"path/filepath"
)

// OptionsMap - values of each option seen, keyed by Option.Key
//
// an option given without a value appends the empty string,
// e.g. "-v -v -v" would make len(options["verbose"]) == 3
type OptionsMap map[string][]string

// GetOS - get options from the OS command-line
func GetOS(table Table) (program string, options OptionsMap, arguments []string, err error) {
	program = filepath.Base(os.Args[0])
	options, arguments, err = Get(table, os.Args[1:])
	return
}

// Get - get options from an array that does not include the program name
//
// diagnostics are not written anywhere, the scan error is returned instead
func Get(table Table, inputs []string) (OptionsMap, []string, error) {
	arguments := make([]string, 1, len(inputs)+1)
	arguments = append(arguments, inputs...)

	s := New(table, arguments)
	s.SetReporter(Discard)

	options := make(OptionsMap)
	for {
		result, ok := s.Next()
		if !ok {
			break
		}
		if nil == result.Option {
			return nil, nil, s.Err()
		}
		key := result.Option.Key()
		options[key] = append(options[key], result.Value)
	}
	return options, s.Arguments(), nil
}
