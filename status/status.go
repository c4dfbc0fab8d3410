// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package status defines the stable error codes shared by every component
// of the engine, so a planner failure and an orchestrator failure compare
// equal under errors.Is regardless of which package raised them.
package status

import "fmt"

// Code is a stable numeric error identifier. Code implements error so it
// can be returned directly and compared with errors.Is.
type Code int

const (
	// OK is never returned as an error; it documents the success value of
	// the external interface's code field.
	OK Code = iota
	AllocationFailure
	OversizedData
	BadDataPiecesLen
	BadPrecomputed
	InvalidLen
)

var names = [...]string{
	OK:                "OK",
	AllocationFailure: "allocation failure",
	OversizedData:     "oversized data",
	BadDataPiecesLen:  "bad data pieces length",
	BadPrecomputed:    "bad precomputed plan",
	InvalidLen:        "invalid length",
}

func (c Code) String() string {
	if int(c) < 0 || int(c) >= len(names) {
		return fmt.Sprintf("status.Code(%d)", int(c))
	}
	return names[c]
}

// Error satisfies the error interface, allowing a Code to be returned
// directly from fallible operations and compared with errors.Is.
func (c Code) Error() string {
	return c.String()
}

// Wrap attaches context to a Code without losing its identity under
// errors.Is (the %w verb preserves Unwrap() back to the Code).
func Wrap(c Code, format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, c)...)
}
