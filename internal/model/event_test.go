package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"tcgurt/internal/model"
	apperrors "tcgurt/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStartDate(t *testing.T) {
	t.Run("Date only is midnight UTC", func(t *testing.T) {
		got, err := model.ParseStartDate("2031-06-13", "")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2031, time.June, 13, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("Clock overrides hour and minute", func(t *testing.T) {
		got, err := model.ParseStartDate("2031-06-13", "14:00")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2031, time.June, 13, 14, 0, 0, 0, time.UTC), got)
	})

	t.Run("RFC3339 keeps its offset", func(t *testing.T) {
		got, err := model.ParseStartDate("2031-06-13T09:30:00+02:00", "18:15")

		require.NoError(t, err)
		assert.Equal(t, 18, got.Hour())
		assert.Equal(t, 15, got.Minute())
		_, offset := got.Zone()
		assert.Equal(t, 2*60*60, offset)
	})

	t.Run("Invalid date", func(t *testing.T) {
		_, err := model.ParseStartDate("13/06/2031", "")

		assert.ErrorIs(t, err, apperrors.ErrInvalidStartDate)
	})

	t.Run("Invalid clock", func(t *testing.T) {
		_, err := model.ParseStartDate("2031-06-13", "2pm")

		assert.ErrorIs(t, err, apperrors.ErrInvalidStartDate)
	})
}

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.Price
		wantErr bool
	}{
		{name: "number", input: `{"price": 120}`, want: 120},
		{name: "digit string", input: `{"price": "80"}`, want: 80},
		{name: "zero", input: `{"price": 0}`, want: 0},
		{name: "negative parses", input: `{"price": -5}`, want: -5},
		{name: "decimal rejected", input: `{"price": 9.5}`, wantErr: true},
		{name: "text rejected", input: `{"price": "free"}`, wantErr: true},
		{name: "null rejected", input: `{"price": null}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				Price model.Price `json:"price"`
			}
			err := json.Unmarshal([]byte(tt.input), &body)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, body.Price)
		})
	}
}

func TestCardList_IsOwnedBy(t *testing.T) {
	list := &model.CardList{ID: 1, UserID: "user_a"}

	assert.True(t, list.IsOwnedBy("user_a"))
	assert.False(t, list.IsOwnedBy("user_b"))
	assert.False(t, list.IsOwnedBy(""))
}
