package token

import "errors"

var (
	// ErrRegistryUnavailable indicates the token catalog could not be loaded.
	ErrRegistryUnavailable = errors.New("token registry unavailable")

	// ErrUnknownToken indicates an ID absent from the registry.
	ErrUnknownToken = errors.New("unknown token")
)
