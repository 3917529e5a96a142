// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package getoptions - command-line options processing
//
// Scans options of the forms:
//   -x                    - short option
//   -xVALUE               - short option with value
//   -xyz                  - cluster of short options x, y and z
//   -x VALUE              - short option requiring a value
//   --option              - long option
//   --option=value        - long option with value
//   --option value        - long option requiring a value
//   --                    - stop option scanning
//
// Note:
//   Anything that is not an option or an option's value is queued as
//   a positional argument, in the order encountered.  Everything after
//   "--" is positional, even if it starts with "-".
//
//   An unknown option, a value given to a long option that takes none
//   or a missing required value stops the scan: one diagnostic is
//   reported, one event with the code ErrorCode is returned and the
//   scanner is exhausted from then on.
//
// Usage:
//
//   table := getoptions.Table{
//       {Long: "help", Short: 'h', HasArg: getoptions.NoArgument, Description: "print this usage"},
//       {Long: "num-items", Short: 'N', HasArg: getoptions.RequiredArgument, Description: "number of items"},
//   }
//
//   scanner := getoptions.New(table, os.Args)
//   for {
//       result, ok := scanner.Next()
//       if !ok {
//           break
//       }
//       switch result.Code {
//       case 'N':
//           ...
//       default:
//           getoptions.PrintUsage("usage: program [options]", table)
//           exitwithstatus.Exit(1)
//       }
//   }
//   for argument, ok := scanner.NextArgument(); ok; argument, ok = scanner.NextArgument() {
//       ...
//   }
//
// Collectors:
//   Get and GetOS drive a scanner to exhaustion and return the options
//   as a map of long name to values, and the positional arguments
package getoptions
