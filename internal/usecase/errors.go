package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDuplicateFixture      = errors.New("fixture already exists")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
