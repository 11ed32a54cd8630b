// Package main hosts the lectern CLI entrypoint and command graph.
//
// The Cobra-based command tree covers caption exports, recording document
// imports, recording listings, and the long-running daemon. Configuration
// resolution happens once per invocation so subcommands can focus on user
// experience instead of wiring.
package main
