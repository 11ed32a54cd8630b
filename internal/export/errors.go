package export

import "errors"

var (
	// ErrInvalidFormat indicates a format outside the supported set or one
	// disabled by configuration.
	ErrInvalidFormat = errors.New("invalid export format")
	// ErrNotFound indicates the recording does not exist or has no
	// translations stored for the requested language.
	ErrNotFound = errors.New("recording not found")
	// ErrEmptyResult indicates translations exist for the language but none
	// survived alignment (every segment was malformed).
	ErrEmptyResult = errors.New("no usable translation segments")
	// ErrResourceExhausted indicates the recording exceeds the configured
	// segment ceiling.
	ErrResourceExhausted = errors.New("recording exceeds segment limit")
)
