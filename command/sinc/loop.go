// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/loopbench/counter"
	"github.com/bitmark-inc/loopbench/fault"
)

// random inputs in the range [-5, 5)
func makeInputs(n int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	inputs := make([]float64, n)
	for i := range inputs {
		inputs[i] = 10 * (r.Float64() - 0.5)
	}
	return inputs
}

func sinc(x float64) float64 {
	if 0.0 == x {
		return 1.0
	}
	return math.Sin(x) / x
}

func transform(inputs []float64, outputs []float64) {
	for i, x := range inputs {
		outputs[i] = sinc(x * math.Pi)
	}
}

// contiguous index range [first, last) of one worker, the first
// n % workers ranges get one extra item
func indexBlock(worker int, n int, workers int) (int, int) {
	div := n / workers
	mod := n % workers

	items := div
	if worker < mod {
		items += 1
	}

	first := worker*div + minInt(worker, mod)
	return first, first + items
}

// fill outputs from inputs and return the number of items processed
func runLoop(inputs []float64, outputs []float64, workers int, serial bool) (uint64, error) {
	if len(outputs) < len(inputs) {
		return 0, fault.ErrOutputTooShort
	}

	if serial || workers <= 1 {
		transform(inputs, outputs)
		return uint64(len(inputs)), nil
	}

	var processed counter.Counter
	var g errgroup.Group

	for worker := 0; worker < workers; worker++ {
		first, last := indexBlock(worker, len(inputs), workers)
		g.Go(func() error {
			transform(inputs[first:last], outputs[first:last])
			processed.Add(uint64(last - first))
			return nil
		})
	}

	err := g.Wait()
	return processed.Uint64(), err
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
