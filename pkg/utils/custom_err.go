package utils

import "errors"

var (
	ErrVenueNotFound      = errors.New("venue not found")
	ErrProfileNotFound    = errors.New("taste profile not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadySwiped      = errors.New("venue already has a live decision in this session")
	ErrDimensionMismatch  = errors.New("embedding dimension mismatch")
	ErrFetchFailed        = errors.New("tile fetch failed")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrInvalidRegion      = errors.New("invalid bounding region")
	ErrDatabaseError      = errors.New("database error")
)
