package types

import (
	"errors"
	"fmt"
)

var ErrBind = errors.New("failed to bind listening socket")
var ErrAccept = errors.New("failed to accept connection")
var ErrRead = errors.New("failed to read from connection")
var ErrOutput = errors.New("failed to write output")
var ErrBadCount = errors.New("reader returned a byte count outside the buffer")

// Wrap tags cause with the phase it happened in, both stay reachable through errors.Is.
func Wrap(phase, cause error) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", phase, cause)
}
