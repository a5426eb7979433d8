package bookmark_port

//go:generate mockgen -source=bookmark_port.go -destination=../../mocks/mock_bookmark_port.go -package=mocks

import (
	"context"

	"readlog/domain"

	"github.com/google/uuid"
)

// BookmarkPort owns the bookmark relation for one authenticated user.
type BookmarkPort interface {
	Add(ctx context.Context, userID uuid.UUID, articleID uuid.UUID) (*domain.Bookmark, error)
	Remove(ctx context.Context, userID uuid.UUID, bookmarkID uuid.UUID) error
	// Toggle flips the bookmark state and reports the resulting one.
	Toggle(ctx context.Context, userID uuid.UUID, articleID uuid.UUID) (bool, error)
	Check(ctx context.Context, userID uuid.UUID, articleIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}
