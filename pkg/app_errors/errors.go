package apperrors

import "errors"

var (
	// validation
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidStartDate  = errors.New("invalid start date")
	ErrStartDateInPast   = errors.New("start date must be in the future")
	ErrInvalidPrice      = errors.New("price must be a non-negative integer")
	ErrOrganizerRequired = errors.New("organizer is required")

	// authentication / authorization
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrNotOrganizer     = errors.New("not authorized: caller is not an organizer")
	ErrNotCardListOwner = errors.New("not authorized: caller does not own the card list")

	// not found
	ErrCardListNotFound = errors.New("card list not found")
	ErrUserNotFound     = errors.New("user not found")

	// upstream
	ErrIdentityUpstream = errors.New("identity provider request failed")
	ErrInvalidProfile   = errors.New("invalid user profile metadata")
	ErrCatalogUpstream  = errors.New("card catalog request failed")
)
