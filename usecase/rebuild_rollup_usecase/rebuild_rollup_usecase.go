package rebuild_rollup_usecase

import (
	"context"

	"readlog/port/stats_port"
	"readlog/utils/logger"

	"github.com/google/uuid"
)

// RebuildRollupUsecase recomputes a user's daily rollup from their raw
// articles. Article deletion leaves the rollup untouched by design; this is
// the operator-facing repair path for when that drift matters. The target
// user is named by the internal caller, not taken from a session.
type RebuildRollupUsecase struct {
	statsGateway stats_port.StatsPort
}

func NewRebuildRollupUsecase(statsGateway stats_port.StatsPort) *RebuildRollupUsecase {
	return &RebuildRollupUsecase{statsGateway: statsGateway}
}

func (u *RebuildRollupUsecase) Execute(ctx context.Context, userID uuid.UUID) error {
	if err := u.statsGateway.RebuildRollup(ctx, userID); err != nil {
		logger.SafeErrorContext(ctx, "rollup rebuild failed", "error", err, "user_id", userID)
		return err
	}

	logger.SafeInfoContext(ctx, "rollup rebuilt", "user_id", userID)
	return nil
}
