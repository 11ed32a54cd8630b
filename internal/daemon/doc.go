// Package daemon runs the long-lived lectern service: the import watcher,
// the live caption hub, and the HTTP API. A file lock enforces a single
// instance per data directory.
package daemon
