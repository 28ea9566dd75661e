// Package main is the entry point for the tighten CLI.
package main

import "tighten.dev/pkg/tighten/cmd"

func main() {
	cmd.Execute()
}
