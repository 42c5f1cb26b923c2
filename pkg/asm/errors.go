package asm

import (
	"errors"
	"fmt"
)

// Sentinel errors for every fallible boundary in the assembler pipeline.
// Each is distinct so callers (cmd/hack_assembler, tests) can tell failure
// modes apart with errors.Is instead of matching on formatted text.
var (
	ErrInvalidLine         = errors.New("invalid assembly line")
	ErrEmptyLabel          = errors.New("empty label")
	ErrInvalidAInstruction = errors.New("invalid A instruction")
	ErrEmptyComputation    = errors.New("empty computation")
	ErrInvalidComputation  = errors.New("invalid computation")
	ErrInvalidDestination  = errors.New("invalid destination")
	ErrInvalidJump         = errors.New("invalid jump")
)

// InvalidComputation wraps ErrInvalidComputation with the offending token, so
// errors.Is(err, ErrInvalidComputation) still matches while the message keeps
// the token that caused the failure.
func InvalidComputation(tok string) error {
	return fmt.Errorf("%w: %q", ErrInvalidComputation, tok)
}

// InvalidDestination wraps ErrInvalidDestination with the offending token.
func InvalidDestination(tok string) error {
	return fmt.Errorf("%w: %q", ErrInvalidDestination, tok)
}

// InvalidJump wraps ErrInvalidJump with the offending token.
func InvalidJump(tok string) error {
	return fmt.Errorf("%w: %q", ErrInvalidJump, tok)
}
