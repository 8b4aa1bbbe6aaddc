package registry

import "errors"

var (
	// ErrParse is returned (wrapped together with the decoder error) when the
	// response text is not well-formed XML.
	ErrParse = errors.New("malformed xml response")

	// ErrResponseNotFound is returned when the document is well-formed but has
	// no top-level <response> element.
	ErrResponseNotFound = errors.New("response element not found")

	// ErrConfigNotFound is returned by lookups for a name that is not present
	// in the registry.
	ErrConfigNotFound = errors.New("config not found")
)
