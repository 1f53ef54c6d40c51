package models

// Group is a topical board a post may be filed under.
// Deleting a group never deletes its posts, they just lose the reference.
type Group struct {
	BaseModel

	Alias       string `json:"alias" gorm:"uniqueIndex" validate:"lowercase"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Posts       []Post `json:"posts"`
}
