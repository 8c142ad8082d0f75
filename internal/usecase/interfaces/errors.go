package interfaces

import "errors"

// ErrBookingAlreadyExists is returned by IBookingRepository.Create when a
// booking with the same id was already persisted.
var ErrBookingAlreadyExists = errors.New("booking already exists")
