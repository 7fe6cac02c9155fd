// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Command browsers-match evaluates link-routing patterns, rules and profile
// restrictions from the command line.
package main

import (
	"os"

	"github.com/jongio/browsers-core/cliout"
)

// Set via ldflags at build time.
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		cliout.SetWriter(os.Stderr)
		cliout.Error("%v", err)
		os.Exit(1)
	}
}
