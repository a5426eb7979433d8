package user_data_port

//go:generate mockgen -source=user_data_port.go -destination=../../mocks/mock_user_data_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
)

// DeleteUserDataPort wipes every row the user owns in one transaction.
type DeleteUserDataPort interface {
	Execute(ctx context.Context, userID uuid.UUID) error
}
