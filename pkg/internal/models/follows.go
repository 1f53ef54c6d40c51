package models

// Follow is a directed edge from a reader account to an author. The composite
// unique index makes the edge set a mathematical set and settles duplicate
// races at the storage layer instead of with application locks.
type Follow struct {
	BaseModel

	FollowerID uint `json:"follower_id" gorm:"uniqueIndex:idx_follow_edge"`

	AuthorID uint   `json:"author_id" gorm:"uniqueIndex:idx_follow_edge"`
	Author   Author `json:"author"`
}
