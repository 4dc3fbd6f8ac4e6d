package model

import "errors"

var (
	// NotFoundErr is returned when a referenced file or stored resource does not exist.
	NotFoundErr = errors.New("not found")
	// FormatErr is returned for a malformed on-disk pattern representation.
	FormatErr = errors.New("bad format")
	// InvalidInputErr is returned when caller supplied arguments violate a precondition.
	InvalidInputErr = errors.New("invalid input")
)
