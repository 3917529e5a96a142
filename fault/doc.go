// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Errors are grouped into classes so that a caller can decide what
// to do from the class alone: the option scanner reports unknown
// options as NotFoundError and malformed option values as
// InvalidError.
package fault
