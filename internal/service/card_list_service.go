package service

import (
	"context"

	"tcgurt/internal/model"
	"tcgurt/internal/repository"
	apperrors "tcgurt/pkg/app_errors"
)

type CardListService interface {
	// FindByID 公開讀取，連同卡片一起回傳
	FindByID(ctx context.Context, id int64) (*model.CardList, error)
	Create(ctx context.Context, callerID string, params model.CreateCardListParams) (*model.CardList, error)
	// AddCard 只有清單擁有者可以加卡，已存在的卡片數量 +1
	AddCard(ctx context.Context, callerID string, params model.AddCardParams) (*model.AddCardResult, error)
}

type CardListServiceImpl struct {
	repo     repository.CardListRepository
	cardRepo repository.CardRepository
}

func NewCardListService(repo repository.CardListRepository, cardRepo repository.CardRepository) CardListService {
	return &CardListServiceImpl{repo: repo, cardRepo: cardRepo}
}

func (s *CardListServiceImpl) FindByID(ctx context.Context, id int64) (*model.CardList, error) {
	list, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cards, err := s.cardRepo.ListByCardListID(ctx, list.ID)
	if err != nil {
		return nil, err
	}
	list.Cards = cards
	return list, nil
}

func (s *CardListServiceImpl) Create(ctx context.Context, callerID string, params model.CreateCardListParams) (*model.CardList, error) {
	if callerID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	list := &model.CardList{
		UserID: callerID,
		Name:   params.Name,
		Public: params.Public,
	}
	created, err := s.repo.Create(ctx, list)
	if err != nil {
		return nil, err
	}
	created.Cards = []*model.Card{}
	return created, nil
}

func (s *CardListServiceImpl) AddCard(ctx context.Context, callerID string, params model.AddCardParams) (*model.AddCardResult, error) {
	if callerID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	if params.APIID == "" {
		return nil, apperrors.ErrInvalidInput
	}

	list, err := s.repo.FindByID(ctx, params.CardListID)
	if err != nil {
		return nil, err
	}
	if !list.IsOwnedBy(callerID) {
		return nil, apperrors.ErrNotCardListOwner
	}

	card, created, err := s.cardRepo.AddOrIncrement(ctx, params)
	if err != nil {
		return nil, err
	}
	return &model.AddCardResult{Card: card, Created: created}, nil
}
