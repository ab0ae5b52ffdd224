package model

// UserProfile 身分提供者的使用者資料：IsOrganizer 來自 public metadata，其餘來自 unsafe metadata
type UserProfile struct {
	UserID      string `json:"userId" validate:"required,max=50"`
	IsOrganizer bool   `json:"isOrganizer"`
	Name        string `json:"name" validate:"omitempty,max=50"`
	Location    string `json:"location" validate:"omitempty,url,max=256"`
	FbLink      string `json:"fbLink" validate:"omitempty,url,max=256"`
}
