package services

import (
	"errors"
	"fmt"

	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

var (
	ErrSelfFollow       = errors.New("you cannot follow yourself")
	ErrAlreadyFollowing = errors.New("you are already following this author")
)

// FollowAuthor inserts the edge between the reader account and the author.
// The composite unique index on follows settles concurrent duplicate inserts,
// so a lost race surfaces as ErrAlreadyFollowing instead of a second edge.
func FollowAuthor(accountId uint, author models.Author) (models.Follow, error) {
	var follow models.Follow
	if author.AccountID == accountId {
		return follow, ErrSelfFollow
	}

	if err := database.C.Where("follower_id = ? AND author_id = ?", accountId, author.ID).First(&follow).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return follow, fmt.Errorf("unable to check follow edge: %v", err)
		}
	} else {
		return follow, ErrAlreadyFollowing
	}

	follow = models.Follow{
		FollowerID: accountId,
		AuthorID:   author.ID,
	}

	if err := database.C.Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return follow, ErrAlreadyFollowing
		}
		return follow, err
	}

	return follow, nil
}

// UnfollowAuthor removes the edge if present; unfollowing twice is a no-op.
func UnfollowAuthor(accountId uint, author models.Author) error {
	return database.C.
		Where("follower_id = ? AND author_id = ?", accountId, author.ID).
		Delete(&models.Follow{}).Error
}

func IsFollowing(accountId uint, author models.Author) bool {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("follower_id = ? AND author_id = ?", accountId, author.ID).
		Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

// ListFollowedAuthors returns the ids of every author the account follows.
// Always a straight read so a follow or unfollow in the same request is
// visible immediately.
func ListFollowedAuthors(accountId uint) ([]uint, error) {
	var follows []models.Follow
	if err := database.C.Where("follower_id = ?", accountId).Find(&follows).Error; err != nil {
		return nil, fmt.Errorf("unable to list followed authors: %v", err)
	}

	return lo.Map(follows, func(item models.Follow, _ int) uint {
		return item.AuthorID
	}), nil
}

func CountFollowers(author models.Author) int64 {
	var count int64
	if err := database.C.Model(&models.Follow{}).
		Where("author_id = ?", author.ID).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}
