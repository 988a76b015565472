package usecase

import (
	"context"
	"fmt"

	"lucky-money/pkg/logger"
	"lucky-money/services/donation/internal/entity"
	"lucky-money/services/donation/internal/repo/persistent"
)

type CatalogUseCase interface {
	ListTypes(ctx context.Context) ([]*entity.DonationType, error)
}

type catalogUseCase struct {
	catalogRepo persistent.CatalogRepository
	logger      *logger.Logger
}

func NewCatalogUseCase(catalogRepo persistent.CatalogRepository, logger *logger.Logger) CatalogUseCase {
	return &catalogUseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (uc *catalogUseCase) ListTypes(ctx context.Context) ([]*entity.DonationType, error) {
	types, err := uc.catalogRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("Failed to list donation types: %v", err)
		return nil, fmt.Errorf("failed to list donation types: %w", err)
	}
	return types, nil
}
