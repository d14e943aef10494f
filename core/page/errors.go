package page

import "errors"

var (
	// ErrNoTranslation is returned when a page has no translation for the
	// requested language (and, with fallback, for any fallback language).
	ErrNoTranslation = errors.New("page: no translation for language")
	// ErrPageNotFound is returned by Store lookups for unknown pages.
	ErrPageNotFound = errors.New("page: not found")
)
