// Package metrics collects lightweight in-process counters for export
// operations. It keeps a bounded rolling window of recent durations so
// averages reflect current behavior rather than the lifetime of the process.
package metrics
