package di

import (
	"readlog/config"
	"readlog/driver/readlog_db"
	"readlog/gateway/article_gateway"
	"readlog/gateway/auth_gateway"
	"readlog/gateway/bookmark_gateway"
	"readlog/gateway/metadata_gateway"
	"readlog/gateway/stats_gateway"
	"readlog/gateway/user_data_gateway"
	"readlog/middleware"
	"readlog/usecase/bookmark_usecase"
	"readlog/usecase/daily_chart_usecase"
	"readlog/usecase/delete_account_usecase"
	"readlog/usecase/delete_article_usecase"
	"readlog/usecase/fetch_articles_usecase"
	"readlog/usecase/fetch_metadata_usecase"
	"readlog/usecase/rebuild_rollup_usecase"
	"readlog/usecase/save_article_usecase"
	"readlog/usecase/stats_usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	SaveArticleUsecase             *save_article_usecase.SaveArticleUsecase
	FetchArticlesUsecase           *fetch_articles_usecase.FetchArticlesUsecase
	FetchBookmarkedArticlesUsecase *fetch_articles_usecase.FetchArticlesUsecase
	DeleteArticleUsecase           *delete_article_usecase.DeleteArticleUsecase
	BookmarkUsecase                *bookmark_usecase.BookmarkUsecase
	StatsUsecase                   *stats_usecase.StatsUsecase
	DailyChartUsecase              *daily_chart_usecase.DailyChartUsecase
	FetchMetadataUsecase           *fetch_metadata_usecase.FetchMetadataUsecase
	DeleteAccountUsecase           *delete_account_usecase.DeleteAccountUsecase
	RebuildRollupUsecase           *rebuild_rollup_usecase.RebuildRollupUsecase

	AuthMiddleware        *middleware.AuthMiddleware
	ServiceAuthMiddleware *middleware.ServiceAuthMiddleware

	ReadlogDBRepository *readlog_db.ReadlogDBRepository
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	repo := readlog_db.NewReadlogDBRepository(pool)

	// Gateways
	saveArticleGateway := article_gateway.NewSaveArticleGateway(repo)
	fetchArticlesGateway := article_gateway.NewFetchArticlesGateway(repo)
	fetchBookmarkedGateway := article_gateway.NewFetchBookmarkedArticlesGateway(repo)
	fetchRecentGateway := article_gateway.NewFetchRecentArticlesGateway(repo)
	deleteArticleGateway := article_gateway.NewDeleteArticleGateway(repo)
	bookmarkGateway := bookmark_gateway.NewBookmarkGateway(repo)
	statsGateway := stats_gateway.NewStatsGateway(repo)
	metadataGateway := metadata_gateway.NewFetchMetadataGateway(cfg.Metadata)
	authGateway := auth_gateway.NewAuthGateway(cfg.Auth)
	userDataGateway := user_data_gateway.NewDeleteUserDataGateway(repo)

	return &ApplicationComponents{
		SaveArticleUsecase:             save_article_usecase.NewSaveArticleUsecase(saveArticleGateway, metadataGateway),
		FetchArticlesUsecase:           fetch_articles_usecase.NewFetchArticlesUsecase(fetchArticlesGateway, cfg.Pagination),
		FetchBookmarkedArticlesUsecase: fetch_articles_usecase.NewFetchArticlesUsecase(fetchBookmarkedGateway, cfg.Pagination),
		DeleteArticleUsecase:           delete_article_usecase.NewDeleteArticleUsecase(deleteArticleGateway),
		BookmarkUsecase:                bookmark_usecase.NewBookmarkUsecase(bookmarkGateway),
		StatsUsecase:                   stats_usecase.NewStatsUsecase(statsGateway, fetchRecentGateway),
		DailyChartUsecase:              daily_chart_usecase.NewDailyChartUsecase(statsGateway),
		FetchMetadataUsecase:           fetch_metadata_usecase.NewFetchMetadataUsecase(metadataGateway),
		DeleteAccountUsecase:           delete_account_usecase.NewDeleteAccountUsecase(userDataGateway, authGateway),
		RebuildRollupUsecase:           rebuild_rollup_usecase.NewRebuildRollupUsecase(statsGateway),

		AuthMiddleware:        middleware.NewAuthMiddleware(authGateway),
		ServiceAuthMiddleware: middleware.NewServiceAuthMiddleware(cfg.Auth),

		ReadlogDBRepository: repo,
	}
}
