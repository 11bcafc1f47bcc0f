// Package main implements the entry point for the task management API
// server. It loads configuration, sets up logging, opens the configured
// database, wires stores, services and handlers, and serves HTTP. The
// migrate subcommand manages the database schema.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
