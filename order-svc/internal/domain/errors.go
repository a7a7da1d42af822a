package domain

import "errors"

// ErrDuplicateToken is returned by the store when an insert collides with
// the unique constraint on qr_token.
var ErrDuplicateToken = errors.New("qr token already in use")
