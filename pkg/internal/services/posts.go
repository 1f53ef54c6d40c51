package services

import (
	"time"

	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FeedOrder is the one total order every feed shares. The id tie breaker keeps
// pagination stable when two posts land on the same timestamp.
const FeedOrder = "created_at DESC, id DESC"

func FilterPostWithGroup(tx *gorm.DB, groupId uint) *gorm.DB {
	return tx.Where("group_id = ?", groupId)
}

func FilterPostWithAuthor(tx *gorm.DB, authorId uint) *gorm.DB {
	return tx.Where("author_id = ?", authorId)
}

func FilterPostWithAuthorSet(tx *gorm.DB, authorIds []uint) *gorm.DB {
	return tx.Where("author_id IN ?", authorIds)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]*models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []*models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return AttachPostMetric(items)
}

// ListPostWithIDs resolves a cached id sequence back into full posts, keeping
// the sequence order. Ids that no longer resolve are reported so the caller
// can treat the cached page as gone.
func ListPostWithIDs(idx []uint) ([]*models.Post, bool, error) {
	if len(idx) == 0 {
		return nil, true, nil
	}

	var items []*models.Post
	if err := PreloadGeneral(database.C).
		Where("id IN ?", idx).
		Find(&items).Error; err != nil {
		return items, false, err
	}

	itemMap := lo.SliceToMap(items, func(item *models.Post) (uint, *models.Post) {
		return item.ID, item
	})

	out := make([]*models.Post, 0, len(idx))
	for _, id := range idx {
		item, ok := itemMap[id]
		if !ok {
			return nil, false, nil
		}
		out = append(out, item)
	}

	items, err := AttachPostMetric(out)
	return items, true, err
}

// AttachPostMetric batch loads the per-post comment counts in one grouped
// query instead of a count per row.
func AttachPostMetric(items []*models.Post) ([]*models.Post, error) {
	if len(items) == 0 {
		return items, nil
	}

	idx := lo.Map(items, func(item *models.Post, _ int) uint {
		return item.ID
	})

	var counts []struct {
		PostID uint
		Count  int64
	}
	if err := database.C.Model(&models.Comment{}).
		Select("post_id, COUNT(id) as count").
		Where("post_id IN ?", idx).
		Group("post_id").
		Scan(&counts).Error; err != nil {
		return items, err
	}

	itemMap := lo.SliceToMap(items, func(item *models.Post) (uint, *models.Post) {
		return item.ID, item
	})

	for _, info := range counts {
		if post, ok := itemMap[info.PostID]; ok {
			post.Metric = models.PostMetric{
				CommentCount: info.Count,
			}
		}
	}

	return items, nil
}

// NewPost publishes a post. The whole page cache is flushed before the call
// returns so the next global read never serves a listing older than this
// write.
func NewPost(author models.Author, item models.Post) (models.Post, error) {
	item.AuthorID = author.ID
	item.Language = DetectLanguage(item.Text)

	start := time.Now()
	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	FlushFeedCache()

	log.Debug().Dur("elapsed", time.Since(start)).Uint("author", author.ID).Msg("The post is posted.")
	return item, nil
}

func EditPost(item models.Post) (models.Post, error) {
	item.EditedAt = lo.ToPtr(time.Now())
	item.Language = DetectLanguage(item.Text)

	if err := database.C.Omit(clause.Associations, "created_at").Save(&item).Error; err != nil {
		return item, err
	}

	FlushFeedCache()

	return item, nil
}

func DeletePost(item models.Post) error {
	if err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", item.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	}); err != nil {
		return err
	}

	FlushFeedCache()

	return nil
}

const TruncatePostContentThreshold = 160

func TruncatePostContent(post models.Post) models.Post {
	if len([]rune(post.Text)) >= TruncatePostContentThreshold {
		post.Text = string([]rune(post.Text)[:TruncatePostContentThreshold]) + "..."
	}

	return post
}
