package fetch_metadata_usecase

import (
	"context"

	"readlog/domain"
	"readlog/port/metadata_port"
	"readlog/utils/logger"
)

// FetchMetadataUsecase previews page metadata for a URL without persisting
// anything. Backs the opengraph endpoint.
type FetchMetadataUsecase struct {
	fetchMetadataGateway metadata_port.FetchMetadataPort
}

func NewFetchMetadataUsecase(fetchMetadataGateway metadata_port.FetchMetadataPort) *FetchMetadataUsecase {
	return &FetchMetadataUsecase{fetchMetadataGateway: fetchMetadataGateway}
}

func (u *FetchMetadataUsecase) Execute(ctx context.Context, url string) (*domain.PageMetadata, error) {
	meta, err := u.fetchMetadataGateway.Execute(ctx, url)
	if err != nil {
		logger.SafeWarnContext(ctx, "metadata preview failed", "error", err, "url", url)
		return nil, err
	}
	return meta, nil
}
