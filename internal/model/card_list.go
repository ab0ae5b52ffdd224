package model

type CardList struct {
	ID     int64   `json:"id" db:"id"`
	UserID string  `json:"userId" db:"user_id"`
	Name   *string `json:"name" db:"name"`
	Public bool    `json:"public" db:"public"`

	Cards []*Card `json:"cards" db:"-"`
}

// IsOwnedBy 檢查清單是否屬於該使用者
func (l *CardList) IsOwnedBy(userID string) bool {
	return userID != "" && l.UserID == userID
}

// Card 卡片清單中的一行，APIID 為外部卡片目錄的 id
type Card struct {
	ID         int64  `json:"id" db:"id"`
	CardListID *int64 `json:"cardListId" db:"card_list_id"`
	APIID      string `json:"apiId" db:"api_id"`
	Quantity   int    `json:"quantity" db:"quantity"`
	Name       string `json:"name" db:"name"`
	ImageURL   string `json:"imageUrl" db:"image_url"`
}

type CreateCardListParams struct {
	Name   *string
	Public bool
}

type AddCardParams struct {
	CardListID int64
	APIID      string
	Name       string
	ImageURL   string
}

// AddCardResult Created 為 false 表示既有卡片數量 +1
type AddCardResult struct {
	Card    *Card `json:"card"`
	Created bool  `json:"created"`
}
