package repository

import (
	"context"
	"fmt"

	"tcgurt/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CardRepository interface {
	ListByCardListID(ctx context.Context, cardListID int64) ([]*model.Card, error)
	// AddOrIncrement 以 (card_list_id, api_id) 唯一鍵原子地新增或數量 +1
	AddOrIncrement(ctx context.Context, params model.AddCardParams) (*model.Card, bool, error)
}

type CardRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCardRepository(pool *pgxpool.Pool) CardRepository {
	return &CardRepositoryImpl{
		pool: pool,
	}
}

func (r *CardRepositoryImpl) ListByCardListID(ctx context.Context, cardListID int64) ([]*model.Card, error) {
	query := `
		SELECT id, card_list_id, api_id, quantity, name, image_url
		FROM cards
		WHERE card_list_id = $1
		ORDER BY id ASC
	`

	rows, err := r.pool.Query(ctx, query, cardListID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make([]*model.Card, 0)
	for rows.Next() {
		var card model.Card
		err := rows.Scan(
			&card.ID,
			&card.CardListID,
			&card.APIID,
			&card.Quantity,
			&card.Name,
			&card.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}

func (r *CardRepositoryImpl) AddOrIncrement(ctx context.Context, params model.AddCardParams) (*model.Card, bool, error) {
	// xmax = 0 代表這列是本次 INSERT 產生，不是 UPDATE
	query := `
		INSERT INTO cards (card_list_id, api_id, quantity, name, image_url)
		VALUES ($1, $2, 1, $3, $4)
		ON CONFLICT (card_list_id, api_id)
		DO UPDATE SET quantity = cards.quantity + 1
		RETURNING id, card_list_id, api_id, quantity, name, image_url, (xmax = 0) AS inserted
	`

	var card model.Card
	var inserted bool
	err := r.pool.QueryRow(ctx, query,
		params.CardListID, params.APIID, params.Name, params.ImageURL,
	).Scan(
		&card.ID,
		&card.CardListID,
		&card.APIID,
		&card.Quantity,
		&card.Name,
		&card.ImageURL,
		&inserted,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to add card: %w", err)
	}

	return &card, inserted, nil
}
