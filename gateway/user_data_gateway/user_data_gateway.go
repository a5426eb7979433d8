package user_data_gateway

import (
	"context"
	"errors"

	"readlog/driver/readlog_db"
	"readlog/utils/logger"

	"github.com/google/uuid"
)

type DeleteUserDataGateway struct {
	repo *readlog_db.ReadlogDBRepository
}

func NewDeleteUserDataGateway(repo *readlog_db.ReadlogDBRepository) *DeleteUserDataGateway {
	return &DeleteUserDataGateway{repo: repo}
}

func (g *DeleteUserDataGateway) Execute(ctx context.Context, userID uuid.UUID) error {
	if g.repo == nil {
		return errors.New("database connection not available")
	}
	if err := g.repo.DeleteUserData(ctx, userID); err != nil {
		logger.SafeErrorContext(ctx, "failed to delete user data", "error", err)
		return errors.New("failed to delete user data")
	}
	return nil
}
