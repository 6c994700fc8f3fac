package errors

import (
	"errors"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")

	// Password hash parsing.
	ErrMalformedHash = errors.New("malformed password hash")

	// Token verification failures. All three surface to the client as 401,
	// but the distinction matters for logs and tests.
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)
