package repository

import (
	"context"
	"fmt"
	"time"

	"tcgurt/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	ListFuture(ctx context.Context, from time.Time, filter model.ListEventsFilter) ([]*model.Event, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, name, description, organizer, location, start_date, fb_link, price`

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (name, description, organizer, location, start_date, fb_link, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + eventColumns

	err := scanEvent(r.pool.QueryRow(ctx, query,
		event.Name, event.Description, event.Organizer, event.Location,
		event.StartDate.UTC(), event.FbLink, event.Price,
	), event)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// ListFuture 回傳 start_date >= from 的活動，依開始時間遞增
func (r *EventRepositoryImpl) ListFuture(ctx context.Context, from time.Time, filter model.ListEventsFilter) ([]*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE start_date >= $1
	`
	args := []interface{}{from.UTC()}

	if filter.Month != nil {
		// Month 為 0-11，Postgres EXTRACT 為 1-12
		query += ` AND EXTRACT(MONTH FROM start_date AT TIME ZONE 'UTC') = $2`
		args = append(args, *filter.Month+1)
	}
	query += ` ORDER BY start_date ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		var event model.Event
		if err := scanEvent(rows, &event); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func scanEvent(row pgx.Row, event *model.Event) error {
	return row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.Organizer,
		&event.Location,
		&event.StartDate,
		&event.FbLink,
		&event.Price,
	)
}
