// Package main is the single-binary entrypoint for AnalyzeMe.
package main

import "github.com/analyzeme/analyzeme/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
