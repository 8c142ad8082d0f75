package handlers

import (
	"errors"
	"net/http"

	"homeez_booking/internal/domain/wizard"
	"homeez_booking/internal/usecase"
	"homeez_booking/pkg"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidDate    = pkg.NewDomainErrorSimple("INVALID_DATE", "Date must use the YYYY-MM-DD format", http.StatusBadRequest)
	errEmptyAddress   = pkg.NewDomainErrorSimple("INVALID_ADDRESS_INPUT", "At least one address field is required", http.StatusBadRequest)
)

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Please sign in to book a service", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidOptionID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOptionNotFound):
		return pkg.NewDomainErrorSimple("OPTION_NOT_FOUND", "Service option not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Booking session not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionForbidden):
		return pkg.NewDomainErrorSimple("SESSION_FORBIDDEN", "Booking session belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrHandoffNotRetryable):
		return pkg.NewDomainErrorSimple("HANDOFF_NOT_RETRYABLE", "Only a failed booking hand-off can be retried", http.StatusConflict)
	case errors.Is(err, wizard.ErrCorruptDraft):
		return pkg.NewDomainError("SESSION_CORRUPT", "Booking session can no longer be resumed", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Please sign in to view your bookings", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidBookingID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingForbidden):
		return pkg.NewDomainErrorSimple("BOOKING_FORBIDDEN", "Booking belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBookingNotCancellable):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_CANCELLABLE", "Booking can no longer be cancelled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
