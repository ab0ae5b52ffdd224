package repository

import (
	"context"
	"errors"
	"fmt"

	"tcgurt/internal/model"
	apperrors "tcgurt/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CardListRepository interface {
	Create(ctx context.Context, list *model.CardList) (*model.CardList, error)
	FindByID(ctx context.Context, id int64) (*model.CardList, error)
}

type CardListRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCardListRepository(pool *pgxpool.Pool) CardListRepository {
	return &CardListRepositoryImpl{
		pool: pool,
	}
}

func (r *CardListRepositoryImpl) Create(ctx context.Context, list *model.CardList) (*model.CardList, error) {
	query := `
		INSERT INTO card_lists (user_id, name, public)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, public
	`
	err := r.pool.QueryRow(ctx, query,
		list.UserID, list.Name, list.Public,
	).Scan(
		&list.ID,
		&list.UserID,
		&list.Name,
		&list.Public,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create card list: %w", err)
	}
	return list, nil
}

// FindByID 僅讀取清單本身，卡片由 CardRepository 載入
func (r *CardListRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.CardList, error) {
	query := `
		SELECT id, user_id, name, public
		FROM card_lists
		WHERE id = $1
	`

	var list model.CardList
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&list.ID,
		&list.UserID,
		&list.Name,
		&list.Public,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCardListNotFound
		}
		return nil, err
	}

	return &list, nil
}
