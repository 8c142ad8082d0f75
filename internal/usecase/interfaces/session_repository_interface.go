package interfaces

//go:generate mockgen -source=session_repository_interface.go -destination=mocks/mock_session_repository_interface.go -package=mock_interfaces

import (
	"context"
	"homeez_booking/internal/domain/wizard"
)

// ISessionRepository stores in-progress wizard sessions.
//
// Sessions are ephemeral: implementations expire them after a TTL.
//   - Get returns a zero Session when the id is unknown or expired.
//   - Update runs fn atomically against the stored session and persists the
//     result. It returns a zero Session (and does not call fn) when missing.

type ISessionRepository interface {
	Create(ctx context.Context, s wizard.Session) error
	Get(ctx context.Context, id string) (wizard.Session, error)
	Update(ctx context.Context, id string, fn func(*wizard.Session) error) (wizard.Session, error)
	Delete(ctx context.Context, id string) error
}
