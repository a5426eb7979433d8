package auth_port

//go:generate mockgen -source=auth_port.go -destination=../../mocks/mock_auth_port.go -package=mocks

import (
	"context"

	"readlog/domain"

	"github.com/google/uuid"
)

// AuthPort talks to the external identity provider. Session and identity
// management live entirely on that side; this service only validates
// sessions and asks for identity deletion during account removal.
type AuthPort interface {
	ValidateSession(ctx context.Context, sessionToken string) (*domain.UserContext, error)
	DeleteIdentity(ctx context.Context, userID uuid.UUID) error
}
