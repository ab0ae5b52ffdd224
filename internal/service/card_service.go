package service

import (
	"context"
	"strings"

	"tcgurt/internal/cache"
	"tcgurt/internal/catalog"
	"tcgurt/internal/model"
	apperrors "tcgurt/pkg/app_errors"
	"tcgurt/pkg/logger"

	"go.uber.org/zap"
)

type CardService interface {
	GetCards(ctx context.Context, params model.CardSearchParams) ([]model.CatalogCard, error)
}

type CardServiceImpl struct {
	catalog catalog.Client
	cache   cache.CatalogSearchCache
}

// NewCardService searchCache 可為 nil，此時每次都查外部目錄
func NewCardService(client catalog.Client, searchCache cache.CatalogSearchCache) CardService {
	return &CardServiceImpl{catalog: client, cache: searchCache}
}

func (s *CardServiceImpl) GetCards(ctx context.Context, params model.CardSearchParams) ([]model.CatalogCard, error) {
	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" {
		return nil, apperrors.ErrInvalidInput
	}

	log := logger.WithComponent("service").With(zap.String("operation", "GetCards"))
	query := catalog.BuildQuery(params)

	if s.cache != nil {
		cards, hit, err := s.cache.Get(ctx, query)
		if err != nil {
			log.Warn("catalog cache read failed", zap.Error(err))
		} else if hit {
			return cards, nil
		}
	}

	cards, err := s.catalog.SearchCards(ctx, params)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, query, cards); err != nil {
			log.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return cards, nil
}
