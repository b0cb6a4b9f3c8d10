// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command logicsim simulates gate-level netlists.
//
//	logicsim run -n s27.bench -i s27.vec
//	logicsim info s27.bench
//
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "logicsim: %v\n", err)
		os.Exit(1)
	}
}
