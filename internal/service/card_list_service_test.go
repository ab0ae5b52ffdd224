package service_test

import (
	"context"
	"errors"
	"testing"

	"tcgurt/internal/model"
	repoMocks "tcgurt/internal/repository/mocks"
	"tcgurt/internal/service"
	apperrors "tcgurt/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCardListServiceMocks(t *testing.T) (*repoMocks.MockCardListRepository, *repoMocks.MockCardRepository) {
	return repoMocks.NewMockCardListRepository(t), repoMocks.NewMockCardRepository(t)
}

func TestCardListService_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - cards attached", func(t *testing.T) {
		listRepo, cardRepo := setupCardListServiceMocks(t)
		listService := service.NewCardListService(listRepo, cardRepo)

		listID := int64(3)
		cards := []*model.Card{
			{ID: 1, CardListID: &listID, APIID: "sv1-1", Quantity: 2},
			{ID: 2, CardListID: &listID, APIID: "sv1-2", Quantity: 1},
		}
		listRepo.EXPECT().FindByID(ctx, listID).Return(&model.CardList{ID: listID, UserID: "user_a"}, nil).Once()
		cardRepo.EXPECT().ListByCardListID(ctx, listID).Return(cards, nil).Once()

		list, err := listService.FindByID(ctx, listID)

		require.NoError(t, err)
		assert.Equal(t, "user_a", list.UserID)
		assert.Equal(t, cards, list.Cards)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		listRepo, cardRepo := setupCardListServiceMocks(t)
		listService := service.NewCardListService(listRepo, cardRepo)

		listRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, apperrors.ErrCardListNotFound).Once()

		_, err := listService.FindByID(ctx, 99)

		assert.ErrorIs(t, err, apperrors.ErrCardListNotFound)
		cardRepo.AssertNotCalled(t, "ListByCardListID")
	})
}

func TestCardListService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - owner is caller", func(t *testing.T) {
		listRepo, cardRepo := setupCardListServiceMocks(t)
		listService := service.NewCardListService(listRepo, cardRepo)

		name := "Lost Box"
		listRepo.EXPECT().
			Create(ctx, &model.CardList{UserID: "user_a", Name: &name, Public: true}).
			Return(&model.CardList{ID: 5, UserID: "user_a", Name: &name, Public: true}, nil).Once()

		created, err := listService.Create(ctx, "user_a", model.CreateCardListParams{Name: &name, Public: true})

		require.NoError(t, err)
		assert.Equal(t, int64(5), created.ID)
		assert.NotNil(t, created.Cards)
		assert.Empty(t, created.Cards)
	})

	t.Run("Failed - missing caller", func(t *testing.T) {
		listRepo, cardRepo := setupCardListServiceMocks(t)
		listService := service.NewCardListService(listRepo, cardRepo)

		_, err := listService.Create(ctx, "", model.CreateCardListParams{})

		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})
}

func TestCardListService_AddCard(t *testing.T) {
	ctx := context.Background()
	listID := int64(3)
	params := model.AddCardParams{CardListID: listID, APIID: "sv3pt5-25", Name: "Charmander"}

	t.Run("Success - new card inserted", func(t *testing.T) {
		listRepo, cardRepo := setupCardListServiceMocks(t)
		listService := service.NewCardListService(listRepo, cardRepo)

		card := &model.Card{ID: 10, CardListID: &listID, APIID: "sv3pt5-25", Quantity: 1}
		listRepo.EXPECT().FindByID(ctx, listID).Return(&model.CardList{ID: listID, UserID: "user_a"}, nil).Once()
		cardRepo.EXPECT().AddOrIncrement(ctx, params).Return(card, true, nil).Once()

		result, err := listService.AddCard(ctx, "user_a", params)

		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, 1, result.Card.Quantity)
	})

	t.Run("Success - existing card incremented", func(t *testing.T) {
		listRepo, cardRepo := setupCardListServiceMocks(t)
		listService := service.NewCardListService(listRepo, cardRepo)

		card := &model.Card{ID: 10, CardListID: &listID, APIID: "sv3pt5-25", Quantity: 4}
		listRepo.EXPECT().FindByID(ctx, listID).Return(&model.CardList{ID: listID, UserID: "user_a"}, nil).Once()
		cardRepo.EXPECT().AddOrIncrement(ctx, params).Return(card, false, nil).Once()

		result, err := listService.AddCard(ctx, "user_a", params)

		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, 4, result.Card.Quantity)
	})

	t.Run("Failed - caller does not own list", func(t *testing.T) {
		listRepo, cardRepo := setupCardListServiceMocks(t)
		listService := service.NewCardListService(listRepo, cardRepo)

		listRepo.EXPECT().FindByID(ctx, listID).Return(&model.CardList{ID: listID, UserID: "user_a"}, nil).Once()

		_, err := listService.AddCard(ctx, "user_b", params)

		assert.ErrorIs(t, err, apperrors.ErrNotCardListOwner)
		cardRepo.AssertNotCalled(t, "AddOrIncrement")
	})

	t.Run("Failed - list not found", func(t *testing.T) {
		listRepo, cardRepo := setupCardListServiceMocks(t)
		listService := service.NewCardListService(listRepo, cardRepo)

		listRepo.EXPECT().FindByID(ctx, listID).Return(nil, apperrors.ErrCardListNotFound).Once()

		_, err := listService.AddCard(ctx, "user_a", params)

		assert.ErrorIs(t, err, apperrors.ErrCardListNotFound)
	})

	t.Run("Failed - missing api id", func(t *testing.T) {
		listRepo, cardRepo := setupCardListServiceMocks(t)
		listService := service.NewCardListService(listRepo, cardRepo)

		_, err := listService.AddCard(ctx, "user_a", model.AddCardParams{CardListID: listID})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		listRepo.AssertNotCalled(t, "FindByID")
	})

	t.Run("Failed - repository error", func(t *testing.T) {
		listRepo, cardRepo := setupCardListServiceMocks(t)
		listService := service.NewCardListService(listRepo, cardRepo)

		dbErr := errors.New("deadlock detected")
		listRepo.EXPECT().FindByID(ctx, listID).Return(&model.CardList{ID: listID, UserID: "user_a"}, nil).Once()
		cardRepo.EXPECT().AddOrIncrement(ctx, params).Return(nil, false, dbErr).Once()

		_, err := listService.AddCard(ctx, "user_a", params)

		assert.ErrorIs(t, err, dbErr)
	})
}
