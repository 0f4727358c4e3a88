package models

import "errors"

var (
	// ErrInvalidMode is returned for a transport mode outside the supported set
	ErrInvalidMode = errors.New("invalid transport mode")
	// ErrInvalidLocation is returned for out-of-range coordinates
	ErrInvalidLocation = errors.New("invalid location")
	// ErrPointNotFound is returned when a frequent point id is unknown
	ErrPointNotFound = errors.New("frequent point not found")
	// ErrDuplicatePoint is returned when a frequent point duplicates an existing one
	ErrDuplicatePoint = errors.New("duplicate frequent point")
	// ErrPreferencesNotFound is returned when no preference snapshot is stored
	ErrPreferencesNotFound = errors.New("preferences not found")
	// ErrInvalidOrder is returned when a reorder request is not a permutation of the frequent points
	ErrInvalidOrder = errors.New("invalid frequent point order")
	// ErrInvalidToggles is returned for out-of-range overlay toggles
	ErrInvalidToggles = errors.New("invalid overlay toggles")
)
