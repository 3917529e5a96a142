// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/loopbench/getoptions"
)

var usageTable = getoptions.Table{
	{Long: "help", Short: 'h', HasArg: getoptions.NoArgument, Description: "print this usage dialog"},
	{Long: "num-items", Short: 'N', HasArg: getoptions.RequiredArgument, Description: "number of array items"},
	{Long: "print-some", Short: 'p', HasArg: getoptions.OptionalArgument, Description: "print first values"},
	{Long: "trace", Short: '\x01', HasArg: getoptions.RequiredArgument, Description: "trace file"},
	{Short: 'v', HasArg: getoptions.NoArgument},
}

func TestColumnWidth(t *testing.T) {
	// widest row: 4 + 2 + 7 + 2 + 2 + len("print-some") + 8
	assert.Equal(t, 35, getoptions.ColumnWidth(usageTable), "width")

	assert.Equal(t, 6, getoptions.ColumnWidth(getoptions.Table{{Short: 'x'}}), "short only")
	assert.Equal(t, 11, getoptions.ColumnWidth(getoptions.Table{{Short: '-', Long: "abcde", HasArg: getoptions.NoArgument}}), "long only")
	assert.Equal(t, 0, getoptions.ColumnWidth(nil), "empty")
}

func TestWriteUsage(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := getoptions.WriteUsage(buffer, "usage: prog [options]", usageTable)
	assert.NoError(t, err, "write usage")

	pad := func(n int) string { return strings.Repeat(" ", n) }
	expected := "usage: prog [options]\n" +
		"\n" +
		"command line options:\n" +
		"  -h, --help" + pad(23) + ": print this usage dialog\n" +
		"  -N VALUE, --num-items VALUE" + pad(6) + ": number of array items\n" +
		"  -p[VALUE], --print-some[=VALUE]" + pad(2) + ": print first values\n" +
		"  --trace VALUE" + pad(20) + ": trace file\n" +
		"  -v" + pad(31) + "\n" +
		"\n"
	assert.Equal(t, expected, buffer.String(), "usage text")

	// every row is padded to the same width
	for _, line := range strings.Split(buffer.String(), "\n") {
		if !strings.HasPrefix(line, "  -") {
			continue
		}
		if n := strings.Index(line, ": "); n >= 0 {
			assert.Equal(t, 35, n, "description column: %q", line)
		} else {
			assert.Equal(t, 35, len(line), "padded width: %q", line)
		}
	}
}

func TestWriteUsageWithoutHeader(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := getoptions.WriteUsage(buffer, "", getoptions.Table{{Long: "help", Short: 'h'}})
	assert.NoError(t, err, "write usage")
	assert.Equal(t, "\ncommand line options:\n  -h, --help  \n\n", buffer.String(), "usage text")
}

func TestWriteUsageNilTable(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := getoptions.WriteUsage(buffer, "usage: prog", nil)
	assert.NoError(t, err, "write usage")
	assert.Equal(t, "usage: prog\n", buffer.String(), "usage text")
}
