package spongefish

import "errors"

var (
	ErrTrailingBytes = errors.New("proof has trailing bytes after the last interaction")
	ErrHintTooLarge  = errors.New("hint is larger than 2^32-1 bytes")
)
