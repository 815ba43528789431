package domain

import "errors"

// Entry validation errors.
var (
	ErrMissingID       = errors.New("entry id is missing")
	ErrMissingTitle    = errors.New("entry title is missing")
	ErrMissingSlug     = errors.New("entry slug is missing")
	ErrInvalidStatus   = errors.New("entry status is not Draft or Published")
	ErrInvalidCategory = errors.New("entry category is not a known category id")
)
