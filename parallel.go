// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// RunBatches simulates independent input batches of the same circuit
// concurrently. Each batch starts from a fresh state, as if run by its own
// Simulator, and the traces are returned in batch order.
//
// workers is the number of goroutines to use. If less or equal to 0, the value
// of GOMAXPROCS will be used.
//
// opts is shared by all workers: its Metrics recorder and OnStep callback
// must be safe for concurrent use.
//
func RunBatches(c *Circuit, batches [][][]Value, workers int, opts *Options) ([]Trace, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	if workers > len(batches) {
		workers = len(batches)
	}

	traces := make([]Trace, len(batches))
	errs := make([]error, len(batches))
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			sim, err := New(c, opts)
			for i := range jobs {
				if err != nil {
					errs[i] = err
					continue
				}
				sim.Reset()
				errs[i] = sim.Run(batches[i], &traces[i])
			}
		}()
	}
	for i := range batches {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "batch %d", i)
		}
	}
	return traces, nil
}
