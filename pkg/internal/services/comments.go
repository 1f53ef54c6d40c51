package services

import (
	"fmt"

	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
)

// ListComments returns every comment of a post, newest first. Comments are
// always read live and shown in full, there is no pagination and the page
// cache never holds them.
func ListComments(post models.Post) ([]models.Comment, error) {
	var comments []models.Comment
	if err := database.C.
		Where("post_id = ?", post.ID).
		Preload("Author").
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return comments, fmt.Errorf("unable to list comments: %v", err)
	}

	return comments, nil
}

func CountComments(post models.Post) int64 {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", post.ID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func NewComment(author models.Author, post models.Post, text string) (models.Comment, error) {
	comment := models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: author.ID,
	}

	if err := database.C.Create(&comment).Error; err != nil {
		return comment, err
	}

	return comment, nil
}

func DeleteComment(comment models.Comment) error {
	return database.C.Delete(&comment).Error
}
