package services

import (
	"errors"

	"fms-app/repositories"
)

var (
	ErrBookingNotFound     = repositories.ErrBookingNotFound
	ErrVersionConflict     = repositories.ErrVersionConflict
	ErrBookingLocked       = errors.New("booking is busy, try again")
	ErrConfirmedDelete     = errors.New("confirmed bookings cannot be deleted")
	ErrDocumentUnavailable = errors.New("document is not issued for this booking")
)
