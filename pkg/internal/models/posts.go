package models

import (
	"time"

	"gorm.io/datatypes"
)

// Post ordering across every feed is created_at DESC with id DESC as the tie
// breaker. CreatedAt is set once at insert time and never updated afterwards;
// edits only touch Text, Attachments and GroupID.
type Post struct {
	BaseModel

	Text        string                      `json:"text"`
	Language    string                      `json:"language"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`

	Comments []Comment `json:"comments" gorm:"foreignKey:PostID"`

	EditedAt *time.Time `json:"edited_at"`

	TotalViews int64 `json:"total_views"`

	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group"`

	AuthorID uint   `json:"author_id"`
	Author   Author `json:"author"`

	Metric PostMetric `json:"metric" gorm:"-"`
}

// PostMetric carries the derived numbers a listing wants to show without
// another round-trip per item. Never persisted.
type PostMetric struct {
	CommentCount int64 `json:"comment_count"`
}

type PostView struct {
	AccountID uint `json:"account_id" gorm:"primaryKey"`
	PostID    uint `json:"post_id" gorm:"primaryKey"`

	CreatedAt int64 `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt int64 `json:"updated_at" gorm:"autoUpdateTime"`
}
