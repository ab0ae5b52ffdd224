package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateSchema 建立所有資料表，重複執行安全（IF NOT EXISTS）
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS events (
    id          BIGSERIAL PRIMARY KEY,
    name        VARCHAR(100) NOT NULL,
    description VARCHAR(256),
    organizer   VARCHAR(50)  NOT NULL,
    location    VARCHAR(256),
    start_date  TIMESTAMPTZ  NOT NULL,
    fb_link     VARCHAR(256),
    price       INTEGER      NOT NULL CHECK (price >= 0)
);

CREATE INDEX IF NOT EXISTS idx_events_start_date ON events(start_date);

CREATE TABLE IF NOT EXISTS card_lists (
    id      BIGSERIAL PRIMARY KEY,
    user_id VARCHAR(50)  NOT NULL,
    name    VARCHAR(100),
    public  BOOLEAN      NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_card_lists_user_id ON card_lists(user_id);

CREATE TABLE IF NOT EXISTS cards (
    id           BIGSERIAL PRIMARY KEY,
    card_list_id BIGINT REFERENCES card_lists(id) ON DELETE CASCADE,
    api_id       VARCHAR(50)  NOT NULL,
    quantity     INTEGER      NOT NULL CHECK (quantity > 0),
    name         VARCHAR(100) NOT NULL DEFAULT '',
    image_url    VARCHAR(256) NOT NULL DEFAULT '',
    CONSTRAINT uq_cards_card_list_api UNIQUE (card_list_id, api_id)
);
`
