package models

import "errors"

// ErrNotFound is returned by stores when no document has the requested identifier.
var ErrNotFound = errors.New("document not found")
