// Package util carries the small helpers shared across the tracker:
// pointer and range helpers, date handling, and logging shims.
package util

import "log"

// Warn records a non-fatal error against the operation that produced it.
// Nil errors are ignored so call sites stay unconditional.
func Warn(op string, err error) {
	if err != nil {
		log.Printf("%s: %v", op, err)
	}
}

// Fatal exits the process when a startup step cannot be recovered from.
func Fatal(op string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", op, err)
	}
}
