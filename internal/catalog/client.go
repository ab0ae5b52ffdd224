// Package catalog 查詢外部 Pokémon TCG 卡片目錄，只回傳前端需要的欄位
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tcgurt/config"
	"tcgurt/internal/model"
	apperrors "tcgurt/pkg/app_errors"
)

type Client interface {
	SearchCards(ctx context.Context, params model.CardSearchParams) ([]model.CatalogCard, error)
}

type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewHTTPClient(cfg *config.CatalogConfig) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// cardsResponse 只解碼需要的欄位，其餘卡片資料不會轉給前端
type cardsResponse struct {
	Data []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Images struct {
			Small string `json:"small"`
			Large string `json:"large"`
		} `json:"images"`
	} `json:"data"`
}

// BuildQuery 組出目錄搜尋語法：名稱前綴萬用字元，可選擇只查標準賽制合法卡
func BuildQuery(params model.CardSearchParams) string {
	name := strings.TrimSpace(strings.ReplaceAll(params.Name, `"`, ""))
	q := fmt.Sprintf(`name:"%s*"`, name)
	if params.OnlyStandard {
		q += " legalities.standard:Legal"
	}
	return q
}

func (c *HTTPClient) SearchCards(ctx context.Context, params model.CardSearchParams) ([]model.CatalogCard, error) {
	endpoint := c.baseURL + "/cards?" + url.Values{"q": {BuildQuery(params)}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCatalogUpstream, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCatalogUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrCatalogUpstream, resp.StatusCode)
	}

	var body cardsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", apperrors.ErrCatalogUpstream, err)
	}

	cards := make([]model.CatalogCard, 0, len(body.Data))
	for _, d := range body.Data {
		cards = append(cards, model.CatalogCard{
			ID:   d.ID,
			Name: d.Name,
			Images: model.CatalogImages{
				Small: d.Images.Small,
				Large: d.Images.Large,
			},
		})
	}
	return cards, nil
}
