package save_article_usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"readlog/domain"
	"readlog/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authedContext(userID uuid.UUID) context.Context {
	return domain.SetUserContext(context.Background(), &domain.UserContext{
		UserID:    userID,
		Email:     "reader@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

func TestExecute_SavesWithProvidedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	ctx := authedContext(userID)

	draft := domain.ArticleDraft{
		URL:      "https://example.com/post",
		Title:    "Hand-written title",
		ReadDate: "2025-03-10",
	}
	saved := &domain.Article{ID: uuid.New(), UserID: userID, URL: draft.URL, Title: draft.Title, ReadDate: draft.ReadDate}

	savePort := mocks.NewMockSaveArticlePort(ctrl)
	metaPort := mocks.NewMockFetchMetadataPort(ctrl)
	// Title present: no metadata fetch happens.
	savePort.EXPECT().Execute(ctx, userID, draft).Return(saved, nil)

	got, err := NewSaveArticleUsecase(savePort, metaPort).Execute(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestExecute_DefaultsReadDateToToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	ctx := authedContext(userID)
	today := time.Now().UTC().Format(domain.DateLayout)

	savePort := mocks.NewMockSaveArticlePort(ctrl)
	metaPort := mocks.NewMockFetchMetadataPort(ctrl)
	savePort.EXPECT().
		Execute(ctx, userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, draft domain.ArticleDraft) (*domain.Article, error) {
			assert.Equal(t, today, draft.ReadDate)
			return &domain.Article{ID: uuid.New(), ReadDate: draft.ReadDate}, nil
		})

	_, err := NewSaveArticleUsecase(savePort, metaPort).Execute(ctx, domain.ArticleDraft{
		URL:   "https://example.com/post",
		Title: "t",
	})
	require.NoError(t, err)
}

func TestExecute_FetchesMetadataWhenTitleMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	ctx := authedContext(userID)

	metaPort := mocks.NewMockFetchMetadataPort(ctrl)
	metaPort.EXPECT().Execute(ctx, "https://example.com/post").Return(&domain.PageMetadata{
		Title:       "Fetched Title",
		Description: "Fetched description",
		Image:       "https://cdn.example.com/i.png",
		SiteName:    "Example",
	}, nil)

	savePort := mocks.NewMockSaveArticlePort(ctrl)
	savePort.EXPECT().
		Execute(ctx, userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, draft domain.ArticleDraft) (*domain.Article, error) {
			assert.Equal(t, "Fetched Title", draft.Title)
			assert.Equal(t, "Fetched description", draft.Description)
			assert.Equal(t, "https://cdn.example.com/i.png", draft.ImageURL)
			assert.Equal(t, "Example", draft.SiteName)
			return &domain.Article{ID: uuid.New()}, nil
		})

	_, err := NewSaveArticleUsecase(savePort, metaPort).Execute(ctx, domain.ArticleDraft{
		URL: "https://example.com/post",
	})
	require.NoError(t, err)
}

func TestExecute_MetadataFailureDoesNotBlockSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	ctx := authedContext(userID)

	metaPort := mocks.NewMockFetchMetadataPort(ctrl)
	metaPort.EXPECT().Execute(ctx, gomock.Any()).Return(nil, domain.ErrMetadataFetchFailed)

	savePort := mocks.NewMockSaveArticlePort(ctrl)
	savePort.EXPECT().
		Execute(ctx, userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, draft domain.ArticleDraft) (*domain.Article, error) {
			assert.Empty(t, draft.Title)
			return &domain.Article{ID: uuid.New()}, nil
		})

	_, err := NewSaveArticleUsecase(savePort, metaPort).Execute(ctx, domain.ArticleDraft{
		URL: "https://example.com/post",
	})
	require.NoError(t, err)
}

func TestExecute_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := authedContext(uuid.New())
	u := NewSaveArticleUsecase(mocks.NewMockSaveArticlePort(ctrl), mocks.NewMockFetchMetadataPort(ctrl))

	_, err := u.Execute(ctx, domain.ArticleDraft{Title: "no url"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = u.Execute(ctx, domain.ArticleDraft{URL: "https://example.com", Title: "t", ReadDate: "10-03-2025"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExecute_RequiresUserContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	u := NewSaveArticleUsecase(mocks.NewMockSaveArticlePort(ctrl), mocks.NewMockFetchMetadataPort(ctrl))

	_, err := u.Execute(context.Background(), domain.ArticleDraft{URL: "https://example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidUserContext)
}

func TestExecute_GatewayErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	ctx := authedContext(userID)
	wantErr := errors.New("insert failed")

	savePort := mocks.NewMockSaveArticlePort(ctrl)
	savePort.EXPECT().Execute(ctx, userID, gomock.Any()).Return(nil, wantErr)

	_, err := NewSaveArticleUsecase(savePort, mocks.NewMockFetchMetadataPort(ctrl)).Execute(ctx, domain.ArticleDraft{
		URL:   "https://example.com",
		Title: "t",
	})
	assert.ErrorIs(t, err, wantErr)
}
