package models

// Comment is an append-only child of a post. It lives and dies with the post
// and is always read live, the page cache never sees comments.
type Comment struct {
	BaseModel

	Text string `json:"text"`

	PostID uint `json:"post_id"`
	Post   Post `json:"post" gorm:"constraint:OnDelete:CASCADE"`

	AuthorID uint   `json:"author_id"`
	Author   Author `json:"author"`
}
