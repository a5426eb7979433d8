package delete_article_usecase

import (
	"context"

	"readlog/domain"
	"readlog/port/article_port"
	"readlog/utils/logger"

	"github.com/google/uuid"
)

// DeleteArticleUsecase removes one of the caller's articles together with its
// bookmarks. The daily rollup keeps the historical count; the internal
// rebuild operation exists for when that drift matters.
type DeleteArticleUsecase struct {
	deleteArticleGateway article_port.DeleteArticlePort
}

func NewDeleteArticleUsecase(deleteArticleGateway article_port.DeleteArticlePort) *DeleteArticleUsecase {
	return &DeleteArticleUsecase{deleteArticleGateway: deleteArticleGateway}
}

func (u *DeleteArticleUsecase) Execute(ctx context.Context, articleID uuid.UUID) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}

	if err := u.deleteArticleGateway.Execute(ctx, user.UserID, articleID); err != nil {
		logger.SafeErrorContext(ctx, "failed to delete article", "error", err, "article_id", articleID)
		return err
	}

	logger.SafeInfoContext(ctx, "article deleted", "article_id", articleID)
	return nil
}
