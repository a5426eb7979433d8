package rest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"readlog/domain"
	"readlog/utils/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "unauthorized",
			err:        domain.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"unauthorized"}`,
		},
		{
			name:       "missing user context",
			err:        fmt.Errorf("user context not found: %w", domain.ErrInvalidUserContext),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"unauthorized"}`,
		},
		{
			name:       "validation",
			err:        fmt.Errorf("%w: url is required", domain.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "article not found",
			err:        domain.ErrArticleNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"article not found"}`,
		},
		{
			name:       "bookmark not found",
			err:        domain.ErrBookmarkNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"bookmark not found"}`,
		},
		{
			name:       "duplicate bookmark",
			err:        domain.ErrBookmarkExists,
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":"already bookmarked"}`,
		},
		{
			name:       "metadata fetch failure",
			err:        fmt.Errorf("%w: upstream timeout", domain.ErrMetadataFetchFailed),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"failed to fetch page metadata"}`,
		},
		{
			name:       "unexpected error stays generic",
			err:        fmt.Errorf("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
		{
			name:       "app error passes through",
			err:        errors.ConflictError("already bookmarked", nil),
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":"already bookmarked"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/articles", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, HandleError(c, tt.err, "Test"))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestParseUUID(t *testing.T) {
	_, appErr := parseUUID("not-a-uuid", "id")
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatusCode())

	id, appErr := parseUUID("7f0a0bd4-19a9-4f3c-bb1d-5f6e1c6f8a21", "id")
	require.Nil(t, appErr)
	assert.Equal(t, "7f0a0bd4-19a9-4f3c-bb1d-5f6e1c6f8a21", id.String())
}
