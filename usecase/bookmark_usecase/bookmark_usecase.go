package bookmark_usecase

import (
	"context"
	"fmt"

	"readlog/domain"
	"readlog/port/bookmark_port"
	"readlog/utils/logger"

	"github.com/google/uuid"
)

// BookmarkUsecase covers the four bookmark operations. Ownership of the
// target article is enforced at the storage layer; an unowned article looks
// identical to a missing one.
type BookmarkUsecase struct {
	bookmarkGateway bookmark_port.BookmarkPort
}

func NewBookmarkUsecase(bookmarkGateway bookmark_port.BookmarkPort) *BookmarkUsecase {
	return &BookmarkUsecase{bookmarkGateway: bookmarkGateway}
}

func (u *BookmarkUsecase) Add(ctx context.Context, articleID uuid.UUID) (*domain.Bookmark, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	bookmark, err := u.bookmarkGateway.Add(ctx, user.UserID, articleID)
	if err != nil {
		return nil, err
	}

	logger.SafeInfoContext(ctx, "bookmark added", "article_id", articleID)
	return bookmark, nil
}

func (u *BookmarkUsecase) Remove(ctx context.Context, bookmarkID uuid.UUID) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}

	if err := u.bookmarkGateway.Remove(ctx, user.UserID, bookmarkID); err != nil {
		return err
	}

	logger.SafeInfoContext(ctx, "bookmark removed", "bookmark_id", bookmarkID)
	return nil
}

// Toggle flips the bookmark state and returns the resulting one.
func (u *BookmarkUsecase) Toggle(ctx context.Context, articleID uuid.UUID) (bool, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return false, err
	}

	bookmarked, err := u.bookmarkGateway.Toggle(ctx, user.UserID, articleID)
	if err != nil {
		return false, err
	}

	logger.SafeInfoContext(ctx, "bookmark toggled", "article_id", articleID, "bookmarked", bookmarked)
	return bookmarked, nil
}

// Check returns the bookmark state for every requested article id; ids the
// user never bookmarked (or does not own) come back false.
func (u *BookmarkUsecase) Check(ctx context.Context, articleIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if len(articleIDs) == 0 {
		return nil, fmt.Errorf("%w: article id list is empty", domain.ErrInvalidInput)
	}

	return u.bookmarkGateway.Check(ctx, user.UserID, articleIDs)
}
