package domain

import "errors"

var (
	// 認証・認可エラー
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidUserContext = errors.New("invalid user context")

	// 記事関連エラー
	ErrArticleNotFound = errors.New("article not found")
	ErrInvalidInput    = errors.New("invalid input")

	// ブックマーク関連エラー
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrBookmarkExists   = errors.New("article already bookmarked")

	// メタデータ取得エラー
	ErrMetadataFetchFailed = errors.New("failed to fetch page metadata")

	// 依存行の削除失敗（親行は残さなければならない）
	ErrDependencyDeleteFailed = errors.New("failed to delete dependent rows")
)
