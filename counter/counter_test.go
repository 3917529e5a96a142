// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/loopbench/counter"
)

// test adding to a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if 0 != c1.Uint64() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Add(1)
	c1.Add(2)

	if 3 != c1.Uint64() {
		t.Errorf("counter is not 3 after adding: %d", c1.Uint64())
	}

	if n := c1.Add(97); 100 != n {
		t.Errorf("counter is not 100 after adding: %d", n)
	}
}

// test that concurrent workers see a consistent total
func TestConcurrentAdd(t *testing.T) {

	const workers = 16
	const each = 1000

	var c counter.Counter
	var wg sync.WaitGroup

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < each; j++ {
				c.Add(2)
			}
		}()
	}
	wg.Wait()

	if workers*each*2 != c.Uint64() {
		t.Errorf("counter total: %d  expected: %d", c.Uint64(), workers*each*2)
	}
}
