package store

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrUnauthenticated    = errors.New("user not authenticated")
	ErrForbidden          = errors.New("not authorized")
	ErrIssueNotFound      = errors.New("issue not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnknownScreen      = errors.New("unknown screen")
)
