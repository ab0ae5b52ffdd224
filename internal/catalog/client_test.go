package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tcgurt/config"
	"tcgurt/internal/catalog"
	"tcgurt/internal/model"
	apperrors "tcgurt/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cardsBody = `{
	"data": [
		{
			"id": "sv4pt5-131",
			"name": "Pikachu",
			"supertype": "Pokémon",
			"hp": "60",
			"images": {"small": "https://images.example/131.png", "large": "https://images.example/131_hires.png"},
			"tcgplayer": {"url": "https://prices.example/131"}
		}
	],
	"page": 1,
	"totalCount": 1
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, apiKey string) catalog.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return catalog.NewHTTPClient(&config.CatalogConfig{
		APIURL:  server.URL + "/v2/",
		APIKey:  apiKey,
		Timeout: 2 * time.Second,
	})
}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		params model.CardSearchParams
		want   string
	}{
		{name: "prefix search", params: model.CardSearchParams{Name: "char"}, want: `name:"char*"`},
		{name: "standard only", params: model.CardSearchParams{Name: "char", OnlyStandard: true}, want: `name:"char*" legalities.standard:Legal`},
		{name: "quotes stripped", params: model.CardSearchParams{Name: ` "mew" `}, want: `name:"mew*"`},
		{name: "spaces kept", params: model.CardSearchParams{Name: "iron valiant"}, want: `name:"iron valiant*"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.BuildQuery(tt.params))
		})
	}
}

func TestHTTPClient_SearchCards(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - projects fields", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/cards", r.URL.Path)
			assert.Equal(t, `name:"pika*" legalities.standard:Legal`, r.URL.Query().Get("q"))
			assert.Equal(t, "key-123", r.Header.Get("X-Api-Key"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(cardsBody))
		}, "key-123")

		cards, err := client.SearchCards(ctx, model.CardSearchParams{Name: "pika", OnlyStandard: true})

		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, model.CatalogCard{
			ID:   "sv4pt5-131",
			Name: "Pikachu",
			Images: model.CatalogImages{
				Small: "https://images.example/131.png",
				Large: "https://images.example/131_hires.png",
			},
		}, cards[0])
	})

	t.Run("Success - no api key header", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("X-Api-Key"))
			_, _ = w.Write([]byte(`{"data": []}`))
		}, "")

		cards, err := client.SearchCards(ctx, model.CardSearchParams{Name: "zzz"})

		require.NoError(t, err)
		assert.NotNil(t, cards)
		assert.Empty(t, cards)
	})

	t.Run("Failed - upstream status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}, "")

		_, err := client.SearchCards(ctx, model.CardSearchParams{Name: "pika"})

		assert.ErrorIs(t, err, apperrors.ErrCatalogUpstream)
	})

	t.Run("Failed - malformed body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>maintenance</html>`))
		}, "")

		_, err := client.SearchCards(ctx, model.CardSearchParams{Name: "pika"})

		assert.ErrorIs(t, err, apperrors.ErrCatalogUpstream)
	})
}
