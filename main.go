// hasher reads lines from standard input, or a single line typed with echo
// disabled, and prints the hex digest of each using the selected hash
// function.

package main

import (
	"os"
	"runtime/debug"
)

const version = "0.0.1"

func main() {
	// cobra has already printed the error and, for flag errors, the usage.
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func buildVersion() string {
	goVer := "unknown"
	if bi, ok := debug.ReadBuildInfo(); ok {
		goVer = bi.GoVersion
	}
	return version + " (built with " + goVer + ")"
}
