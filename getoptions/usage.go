// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"io"
	"os"
	"strings"
)

// widths of the parts of a usage row
const (
	usageIndent       = "  "
	usagePadding      = 4 // indent and the minimum gap before ": "
	shortWidth        = 2 // "-x"
	shortValueWidth   = 7 // " VALUE" or "[VALUE]"
	separatorWidth    = 2 // ", "
	longPrefixWidth   = 2 // "--"
	longValueWidth    = 8 // " VALUE" or "[=VALUE]"
	usageSectionTitle = "command line options:"
)

// PrintUsage - write the usage to standard output
func PrintUsage(header string, table Table) error {
	return WriteUsage(os.Stdout, header, table)
}

// WriteUsage - write the header line (if any) and one aligned line per option
func WriteUsage(w io.Writer, header string, table Table) error {
	var b strings.Builder

	if "" != header {
		b.WriteString(header)
		b.WriteByte('\n')
	}

	if nil != table {
		entries := table.entries()
		width := ColumnWidth(entries)

		b.WriteString("\n" + usageSectionTitle + "\n")
		for i := range entries {
			option := &entries[i]

			name := optionName(option)
			b.WriteString(name)
			b.WriteString(strings.Repeat(" ", width-len(name)))

			if "" != option.Description {
				b.WriteString(": ")
				b.WriteString(option.Description)
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ColumnWidth - the width every option name is padded to
func ColumnWidth(table Table) int {
	width := 0
	for _, option := range table.entries() {
		w := usagePadding
		if isShortCode(option.Short) {
			w += shortWidth
			if NoArgument != option.HasArg {
				w += shortValueWidth
			}
			if "" != option.Long {
				w += separatorWidth
			}
		}
		if "" != option.Long {
			w += longPrefixWidth + len(option.Long)
			if NoArgument != option.HasArg {
				w += longValueWidth
			}
		}
		if w > width {
			width = w
		}
	}
	return width
}

// e.g. "  -N VALUE, --num-items VALUE"
func optionName(option *Option) string {
	name := usageIndent

	if isShortCode(option.Short) {
		name += "-" + string(option.Short)
		switch option.HasArg {
		case RequiredArgument:
			name += " VALUE"
		case OptionalArgument:
			name += "[VALUE]"
		}
		if "" != option.Long {
			name += ", "
		}
	}

	if "" != option.Long {
		name += "--" + option.Long
		switch option.HasArg {
		case RequiredArgument:
			name += " VALUE"
		case OptionalArgument:
			name += "[=VALUE]"
		}
	}
	return name
}
