// Package errs wraps cockroachdb/errors so call sites stay a one-word
// import away from stack-captured errors.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// New returns a stack-captured error with the given message.
func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg, keeping the original cause and stack.
// A nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as a secondary identity of err so errors.Is
// matches either. A nil err collapses to markErr.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
