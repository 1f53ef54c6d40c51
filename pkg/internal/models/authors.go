package models

// Author is the writing identity behind posts. It is created lazily the first
// time an account publishes something; the account itself lives in the
// authentication collaborator and is only referenced here by its ID.
type Author struct {
	BaseModel

	Name        string `json:"name" gorm:"uniqueIndex"`
	Nick        string `json:"nick"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`

	Posts []Post `json:"posts"`

	TotalViews int64 `json:"total_views"`

	AccountID uint `json:"account_id" gorm:"uniqueIndex"`
}
