package models

import "time"

// BaseModel is the shared columns of every record.
// There is no soft-delete column on purpose, deletions in Chronicle are hard removals.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
