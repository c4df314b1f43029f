package format

import "errors"

var (
	// ErrBodyTypeMismatch is returned when a body accessor does not match the declared body type.
	ErrBodyTypeMismatch = errors.New("body type mismatch")

	// ErrPartTypeMismatch is returned when a part payload accessor does not match the declared part type.
	ErrPartTypeMismatch = errors.New("part type mismatch")
)
