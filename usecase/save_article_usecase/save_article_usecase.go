package save_article_usecase

import (
	"context"
	"fmt"
	"time"

	"readlog/domain"
	"readlog/port/article_port"
	"readlog/port/metadata_port"
	"readlog/utils/logger"
)

// SaveArticleUsecase records a read article. When the caller supplies no
// title, the page metadata is fetched first; a failed fetch never blocks the
// save, the article is just stored with empty metadata fields.
type SaveArticleUsecase struct {
	saveArticleGateway   article_port.SaveArticlePort
	fetchMetadataGateway metadata_port.FetchMetadataPort
}

func NewSaveArticleUsecase(
	saveArticleGateway article_port.SaveArticlePort,
	fetchMetadataGateway metadata_port.FetchMetadataPort,
) *SaveArticleUsecase {
	return &SaveArticleUsecase{
		saveArticleGateway:   saveArticleGateway,
		fetchMetadataGateway: fetchMetadataGateway,
	}
}

func (u *SaveArticleUsecase) Execute(ctx context.Context, draft domain.ArticleDraft) (*domain.Article, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if draft.URL == "" {
		return nil, fmt.Errorf("%w: url is required", domain.ErrInvalidInput)
	}

	if draft.ReadDate == "" {
		draft.ReadDate = time.Now().UTC().Format(domain.DateLayout)
	} else if _, err := time.Parse(domain.DateLayout, draft.ReadDate); err != nil {
		return nil, fmt.Errorf("%w: read_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}

	if draft.Title == "" {
		u.enrichFromMetadata(ctx, &draft)
	}

	article, err := u.saveArticleGateway.Execute(ctx, user.UserID, draft)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to save article", "error", err, "url", draft.URL)
		return nil, err
	}

	logger.SafeInfoContext(ctx, "article saved", "article_id", article.ID, "read_date", article.ReadDate)
	return article, nil
}

func (u *SaveArticleUsecase) enrichFromMetadata(ctx context.Context, draft *domain.ArticleDraft) {
	meta, err := u.fetchMetadataGateway.Execute(ctx, draft.URL)
	if err != nil {
		logger.SafeWarnContext(ctx, "metadata fetch failed, saving without metadata", "error", err, "url", draft.URL)
		return
	}

	draft.Title = meta.Title
	if draft.Description == "" {
		draft.Description = meta.Description
	}
	if draft.ImageURL == "" {
		draft.ImageURL = meta.Image
	}
	if draft.SiteName == "" {
		draft.SiteName = meta.SiteName
	}
}
