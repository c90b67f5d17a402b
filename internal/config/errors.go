package config

import "errors"

// ErrInvalidDuration indicates a duration environment variable that failed to
// parse or was not positive.
var ErrInvalidDuration = errors.New("invalid duration value")
