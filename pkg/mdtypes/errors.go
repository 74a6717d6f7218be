/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package mdtypes

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrIllFormedReferenceError = errors.New("ill-formed reference")

// Returned by reference parser. Message contains the input as is.
func ErrIllFormedReference(input string) error {
	return EnrichError(ErrIllFormedReferenceError, "Incorrect full name %s", input)
}
