package repository_test

import (
	"context"
	"testing"
	"time"

	"tcgurt/internal/model"
	"tcgurt/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent(name string, start time.Time) *model.Event {
	return &model.Event{
		Name:      name,
		Organizer: "Pallet Town Games",
		StartDate: start,
		Price:     50,
	}
}

func TestEventRepository_Create(t *testing.T) {
	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		desc := "Standard format, 4 rounds"
		location := "https://maps.example.com/pallet"
		start := time.Date(2031, time.June, 13, 14, 0, 0, 0, time.UTC)
		event := newTestEvent("Friday League", start)
		event.Description = &desc
		event.Location = &location

		created, err := repo.Create(ctx, event)

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Friday League", created.Name)
		require.NotNil(t, created.Description)
		assert.Equal(t, desc, *created.Description)
		require.NotNil(t, created.Location)
		assert.Nil(t, created.FbLink)
		assert.True(t, created.StartDate.Equal(start))
		assertRowCount(t, "events", 1)
	})

	t.Run("Failed - negative price violates constraint", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		event := newTestEvent("Broken", time.Now().Add(time.Hour))
		event.Price = -1

		_, err := repo.Create(ctx, event)

		assert.Error(t, err)
		assertRowCount(t, "events", 0)
	})
}

func TestEventRepository_ListFuture(t *testing.T) {
	repo := repository.NewEventRepository(getTestDB())
	ctx := context.Background()
	now := time.Date(2031, time.March, 10, 12, 0, 0, 0, time.UTC)

	seed := func(t *testing.T) {
		t.Helper()
		for _, e := range []*model.Event{
			newTestEvent("Past", now.Add(-24*time.Hour)),
			newTestEvent("Later", now.Add(40*24*time.Hour)),
			newTestEvent("Soon", now.Add(2*time.Hour)),
			newTestEvent("Same tick", now),
		} {
			_, err := repo.Create(ctx, e)
			require.NoError(t, err)
		}
	}

	t.Run("EmptyList", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()

		events, err := repo.ListFuture(ctx, now, model.ListEventsFilter{})

		require.NoError(t, err)
		assert.NotNil(t, events)
		assert.Empty(t, events)
	})

	t.Run("OrderByStartDateAsc", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()
		seed(t)

		events, err := repo.ListFuture(ctx, now, model.ListEventsFilter{})

		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, "Same tick", events[0].Name)
		assert.Equal(t, "Soon", events[1].Name)
		assert.Equal(t, "Later", events[2].Name)
	})

	t.Run("MonthFilter", func(t *testing.T) {
		cleanup := setupTestWithTruncate(t)
		defer cleanup()
		seed(t)

		april := int(time.April) - 1
		events, err := repo.ListFuture(ctx, now, model.ListEventsFilter{Month: &april})

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Later", events[0].Name)
	})
}
