package metadata_port

//go:generate mockgen -source=metadata_port.go -destination=../../mocks/mock_metadata_port.go -package=mocks

import (
	"context"

	"readlog/domain"
)

// FetchMetadataPort retrieves and normalizes page metadata for a URL.
type FetchMetadataPort interface {
	Execute(ctx context.Context, url string) (*domain.PageMetadata, error)
}
