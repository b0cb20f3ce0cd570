// Package main is the entry point for the upshift CLI.
package main

import "upshift.dev/pkg/upshift/cmd"

func main() {
	cmd.Execute()
}
