package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"homeez_booking/internal/domain/entities"
	"homeez_booking/internal/domain/wizard"
	"homeez_booking/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

const writeBackTimeout = 5 * time.Second

const (
	NoticePaymentFailed wizard.NoticeCode = "payment_failed"
	NoticeHandoffFailed wizard.NoticeCode = "handoff_failed"
)

var (
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentRejected             = errors.New("payment rejected by gateway")
)

// markPending resets the hand-off for a new attempt. The persisted id is
// allocated once so retries cannot create a second record.
func (u *BookingWizardUseCase) markPending(s *wizard.Session) {
	if s.Handoff.PersistedID == "" {
		s.Handoff.PersistedID = u.newID()
	}
	s.Handoff.Status = wizard.HandoffPending
	s.Handoff.Notice = nil
	s.Handoff.Attempts++
	s.Handoff.UpdatedAt = u.now().UTC()
}

// startHandoff launches the single fire-and-forget attempt for s. The caller
// does not wait for it; the outcome is written back into the session.
func (u *BookingWizardUseCase) startHandoff(s wizard.Session) {
	u.inflight.Add(1)
	go func() {
		defer u.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), u.cfg.HandoffTimeout)
		defer cancel()
		u.handoff(ctx, s)
	}()
}

func (u *BookingWizardUseCase) handoff(ctx context.Context, s wizard.Session) {
	log := u.logger.With(
		zap.String("session_id", s.ID),
		zap.String("persisted_id", s.Handoff.PersistedID),
		zap.Int("attempt", s.Handoff.Attempts))

	result := s.Handoff
	if s.Draft.Booking == nil {
		log.Error("[wizard][handoff] session has no confirmed booking")
		result.Status = wizard.HandoffFailed
		result.Notice = &wizard.Notice{Code: NoticeHandoffFailed, Message: "Failed to create booking. Please try again."}
		u.writeBack(ctx, log, s.ID, result)
		return
	}
	confirmed := *s.Draft.Booking

	if confirmed.PaymentMethod.RequiresGateway() && result.PaymentID == "" {
		paymentID, err := u.charge(ctx, s.Draft, confirmed, result.PersistedID)
		if err != nil {
			log.Warn("[wizard][handoff] payment failed", zap.String("payment_method", string(confirmed.PaymentMethod)), zap.Error(err))
			result.Status = wizard.HandoffFailed
			result.Notice = &wizard.Notice{Code: NoticePaymentFailed, Message: "Payment could not be processed. Please try again."}
			u.writeBack(ctx, log, s.ID, result)
			return
		}
		result.PaymentID = paymentID
		log.Info("[wizard][handoff] payment created", zap.String("payment_id", paymentID))
	}

	now := u.now().UTC()
	_, err := u.bookings.Create(ctx, entities.Booking{
		ID:               result.PersistedID,
		PaymentID:        result.PaymentID,
		ConfirmedBooking: confirmed,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	switch {
	case err == nil:
	case errors.Is(err, interfaces.ErrBookingAlreadyExists):
		log.Info("[wizard][handoff] booking already persisted")
	default:
		log.Error("[wizard][handoff] booking persistence failed", zap.Error(err))
		result.Status = wizard.HandoffFailed
		result.Notice = &wizard.Notice{Code: NoticeHandoffFailed, Message: "Failed to create booking. Please try again."}
		u.writeBack(ctx, log, s.ID, result)
		return
	}

	result.Status = wizard.HandoffPersisted
	result.Notice = nil
	log.Info("[wizard][handoff] booking persisted", zap.String("booking_id", confirmed.BookingID))
	u.writeBack(ctx, log, s.ID, result)
}

func (u *BookingWizardUseCase) charge(ctx context.Context, d wizard.Draft, b entities.ConfirmedBooking, reference string) (string, error) {
	if u.gateway == nil {
		return "", ErrPaymentGatewayNotConfigured
	}
	payload, err := paymentPayload(d, b, reference)
	if err != nil {
		return "", err
	}
	id, status, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "rejected", "cancelled":
		return "", fmt.Errorf("%w: status=%s", ErrPaymentRejected, status)
	}
	return id, nil
}

// paymentPayload builds the Mercado Pago request for a confirmed booking.
// The amount always comes from the confirmed total.
func paymentPayload(d wizard.Draft, b entities.ConfirmedBooking, reference string) (json.RawMessage, error) {
	req := map[string]any{
		"transaction_amount": float64(b.TotalPrice),
		"description":        fmt.Sprintf("Booking %s", b.BookingID),
		"external_reference": reference,
		"payment_method_id":  string(b.PaymentMethod),
		"installments":       1,
	}
	if email := strings.TrimSpace(d.UserEmail); email != "" {
		req["payer"] = map[string]any{"type": "customer", "email": email}
	}
	return json.Marshal(req)
}

// writeBack stores the hand-off result. A session discarded or expired in the
// meantime is not recreated.
func (u *BookingWizardUseCase) writeBack(ctx context.Context, log *zap.Logger, sessionID string, result wizard.Handoff) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeBackTimeout)
	defer cancel()

	result.UpdatedAt = u.now().UTC()
	updated, err := u.sessions.Update(ctx, sessionID, func(s *wizard.Session) error {
		s.Handoff = result
		s.UpdatedAt = result.UpdatedAt
		return nil
	})
	if err != nil {
		log.Error("[wizard][handoff] write-back failed", zap.String("status", string(result.Status)), zap.Error(err))
		return
	}
	if updated.ID == "" {
		log.Warn("[wizard][handoff] session gone before write-back", zap.String("status", string(result.Status)))
	}
}

