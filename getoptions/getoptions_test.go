// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions_test

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/loopbench/fault"
	"github.com/bitmark-inc/loopbench/getoptions"
)

type testItem struct {
	in []string
	op getoptions.OptionsMap
	ar []string
}

var collectTable = getoptions.Table{
	{Long: "verbose", Short: 'v', HasArg: getoptions.NoArgument},
	{Long: "hello", Short: 'H', HasArg: getoptions.RequiredArgument},
	{Long: "say", Short: 's', HasArg: getoptions.OptionalArgument},
	{Short: 'x', HasArg: getoptions.NoArgument},
}

func TestGetOptions(t *testing.T) {

	tests := []testItem{
		{
			in: []string{"-v", "-x", "-v", "--hello=yes", "argon", "999", "--verbose"},
			op: getoptions.OptionsMap{"verbose": []string{"", "", ""}, "x": []string{""}, "hello": []string{"yes"}},
			ar: []string{"argon", "999"},
		},
		{
			in: []string{"-vxv", "-Hyes", "--", "multi-word", "999", "--verbose"},
			op: getoptions.OptionsMap{"verbose": []string{"", ""}, "x": []string{""}, "hello": []string{"yes"}},
			ar: []string{"multi-word", "999", "--verbose"},
		},
		{
			in: []string{"-shello", "--say=there", "--say", "world", "--", "hello", "earth"},
			op: getoptions.OptionsMap{"say": []string{"hello", "there", ""}},
			ar: []string{"world", "hello", "earth"},
		},
		{
			in: []string{},
			op: getoptions.OptionsMap{},
			ar: []string{},
		},
	}

	for i, s := range tests {
		options, arguments, err := getoptions.Get(collectTable, s.in)
		if nil != err {
			t.Errorf("%d: unexpected error: %s", i, err)
			continue
		}
		if !reflect.DeepEqual(options, s.op) {
			t.Errorf("%d: options: %#v  expected: %#v", i, options, s.op)
		}
		if !reflect.DeepEqual(arguments, s.ar) {
			t.Errorf("%d: arguments: %#v expected: %#v", i, arguments, s.ar)
		}
	}
}

func TestGetOptionsError(t *testing.T) {
	options, arguments, err := getoptions.Get(collectTable, []string{"-v", "--hello"})

	assert.True(t, errors.Is(err, fault.ErrMissingOptionValue), "error: %v", err)
	assert.Nil(t, options, "options")
	assert.Nil(t, arguments, "arguments")
}

func TestGetOS(t *testing.T) {
	saved := os.Args
	defer func() { os.Args = saved }()

	os.Args = []string{"/usr/local/bin/sinc", "--hello", "world", "file"}

	program, options, arguments, err := getoptions.GetOS(collectTable)
	assert.NoError(t, err, "error")
	assert.Equal(t, "sinc", program, "program")
	assert.Equal(t, getoptions.OptionsMap{"hello": []string{"world"}}, options, "options")
	assert.Equal(t, []string{"file"}, arguments, "arguments")
}
