// Package livecaption maintains the rolling window of captions shown during
// a live session and fans updates out to websocket subscribers. Captions are
// keyed by segment identifier so an in-progress utterance can be revised in
// place before it is finalized.
package livecaption
