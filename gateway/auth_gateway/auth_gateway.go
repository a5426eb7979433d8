package auth_gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"readlog/config"
	"readlog/domain"
	"readlog/utils/logger"

	"github.com/google/uuid"
)

// sessionResponse mirrors the identity provider's whoami payload.
type sessionResponse struct {
	ID        string    `json:"id"`
	Active    bool      `json:"active"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Identity  struct {
		ID     string `json:"id"`
		Traits struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"traits"`
	} `json:"identity"`
}

// AuthGateway validates sessions and deletes identities against the external
// identity provider over its internal HTTP API.
type AuthGateway struct {
	client  *http.Client
	baseURL string
}

func NewAuthGateway(cfg config.AuthConfig) *AuthGateway {
	return &AuthGateway{
		client:  &http.Client{Timeout: cfg.ValidateTimeout},
		baseURL: cfg.ServiceURL,
	}
}

// ValidateSession resolves a session token into a UserContext. Any failure
// maps to ErrUnauthorized; callers never learn whether the token was
// malformed, expired, or unknown.
func (g *AuthGateway) ValidateSession(ctx context.Context, sessionToken string) (*domain.UserContext, error) {
	if sessionToken == "" {
		return nil, domain.ErrUnauthorized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/sessions/whoami", nil)
	if err != nil {
		return nil, fmt.Errorf("build session validation request: %w", err)
	}
	req.Header.Set("Cookie", "session_token="+sessionToken)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.SafeErrorContext(ctx, "session validation request failed", "error", err)
		return nil, fmt.Errorf("%w: identity provider unreachable", domain.ErrUnauthorized)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrUnauthorized
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		logger.SafeErrorContext(ctx, "session response malformed", "error", err)
		return nil, domain.ErrUnauthorized
	}

	if !session.Active || time.Now().After(session.ExpiresAt) {
		return nil, domain.ErrUnauthorized
	}

	userID, err := uuid.Parse(session.Identity.ID)
	if err != nil {
		logger.SafeErrorContext(ctx, "identity id is not a UUID", "identity_id", session.Identity.ID)
		return nil, domain.ErrUnauthorized
	}

	return &domain.UserContext{
		UserID:      userID,
		Email:       session.Identity.Traits.Email,
		DisplayName: session.Identity.Traits.Name,
		SessionID:   session.ID,
		CreatedAt:   session.IssuedAt,
		ExpiresAt:   session.ExpiresAt,
	}, nil
}

// DeleteIdentity asks the identity provider to remove the user's identity.
// 404 counts as success so account deletion stays idempotent.
func (g *AuthGateway) DeleteIdentity(ctx context.Context, userID uuid.UUID) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, g.baseURL+"/admin/identities/"+userID.String(), nil)
	if err != nil {
		return fmt.Errorf("build identity deletion request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity deletion request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		logger.SafeInfoContext(ctx, "identity already gone", "user_id", userID)
		return nil
	default:
		return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}
}
