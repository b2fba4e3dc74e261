package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrTitle    = errors.New("title is required")
)
