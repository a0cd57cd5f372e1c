package repository

import "errors"

// Errors the store implementations translate HTTP failures into.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("store rejected the API token")
	ErrUnavailable  = errors.New("store unavailable")
)
