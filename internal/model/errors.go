package model

import "errors"

var (
	// ErrUnauthorized is returned by the API client after the global
	// credential purge has run.
	ErrUnauthorized = errors.New("credential invalid or expired")

	// ErrLocationUnavailable covers denied, timed out and unsupported
	// device-location requests.
	ErrLocationUnavailable = errors.New("location unavailable")

	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
)
