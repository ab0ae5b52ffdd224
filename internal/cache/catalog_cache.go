package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"tcgurt/internal/model"

	"github.com/redis/go-redis/v9"
)

type CatalogSearchCache interface {
	// 讀取：hit 為 false 表示快取中沒有這個查詢
	Get(ctx context.Context, query string) (cards []model.CatalogCard, hit bool, err error)
	// 寫入：以 TTL 存放投影後的搜尋結果
	Set(ctx context.Context, query string, cards []model.CatalogCard) error
}

type RedisCatalogSearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCatalogSearchCache(client *redis.Client, ttl time.Duration) CatalogSearchCache {
	return &RedisCatalogSearchCache{
		client: client,
		ttl:    ttl,
	}
}

// 查詢字串轉 sha1，避免 key 太長
func (c *RedisCatalogSearchCache) getKey(query string) string {
	sum := sha1.Sum([]byte(query))
	return fmt.Sprintf("catalog:search:%s", hex.EncodeToString(sum[:]))
}

func (c *RedisCatalogSearchCache) Get(ctx context.Context, query string) ([]model.CatalogCard, bool, error) {
	b, err := c.client.Get(ctx, c.getKey(query)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var cards []model.CatalogCard
	if err := json.Unmarshal(b, &cards); err != nil {
		return nil, false, fmt.Errorf("invalid cached search: %w", err)
	}
	return cards, true, nil
}

func (c *RedisCatalogSearchCache) Set(ctx context.Context, query string, cards []model.CatalogCard) error {
	b, err := json.Marshal(cards)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.getKey(query), b, c.ttl).Err()
}
