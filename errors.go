package aoc

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSolution is returned by solvers whose search came up empty.
	ErrNoSolution = errors.New("no solution found")
	// ErrCycle is returned by graph walks that require acyclic input.
	ErrCycle = errors.New("cycle detected")
)

// LineError is a parse failure on a specific input line.
type LineError struct {
	Line int // 1-based
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// AtLine wraps err as a *LineError for the 1-based line n.
// It returns nil if err is nil.
func AtLine(n int, err error) error {
	if err == nil {
		return nil
	}
	return &LineError{Line: n, Err: err}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
