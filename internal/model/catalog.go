package model

// CatalogCard 外部卡片目錄回傳給前端的精簡欄位
type CatalogCard struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Images CatalogImages `json:"images"`
}

type CatalogImages struct {
	Small string `json:"small"`
	Large string `json:"large"`
}

type CardSearchParams struct {
	Name         string
	OnlyStandard bool
}
