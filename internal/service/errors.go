package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoBackend             = errors.New("no simulator backend provided")

	ErrInvalidShotCount  = errors.New("shot count must be at least 1")
	ErrShotCountTooLarge = errors.New("shot count exceeds the configured maximum")
	ErrUnsupportedMethod = errors.New("simulation method is not served by this backend")

	ErrEmptyMultiset  = errors.New("no outcomes to aggregate")
	ErrInvalidOutcome = errors.New("malformed outcome")
)
