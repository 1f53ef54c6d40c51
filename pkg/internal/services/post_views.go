package services

import (
	"sync"

	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
)

var (
	postViewQueue   []models.PostView
	postViewQueueMu sync.Mutex
)

func AddPostView(post models.Post, account uint) {
	postViewQueueMu.Lock()
	defer postViewQueueMu.Unlock()
	postViewQueue = append(postViewQueue, models.PostView{
		AccountID: account,
		PostID:    post.ID,
	})
}

func AddPostViews(posts []*models.Post, account uint) {
	postViewQueueMu.Lock()
	defer postViewQueueMu.Unlock()
	for _, post := range posts {
		postViewQueue = append(postViewQueue, models.PostView{
			AccountID: account,
			PostID:    post.ID,
		})
	}
}

// FlushPostViews drains the in-memory receipt queue into the database and
// refreshes the per-post totals. Runs on a timer, losing a batch on shutdown
// is acceptable.
func FlushPostViews() {
	postViewQueueMu.Lock()
	if len(postViewQueue) == 0 {
		postViewQueueMu.Unlock()
		return
	}
	workingQueue := make([]models.PostView, len(postViewQueue))
	copy(workingQueue, postViewQueue)
	postViewQueue = postViewQueue[:0]
	postViewQueueMu.Unlock()

	updateRequiredPost := make(map[uint]bool)
	for _, item := range workingQueue {
		updateRequiredPost[item.PostID] = true
	}
	_ = database.C.CreateInBatches(workingQueue, 1000).Error
	for k := range updateRequiredPost {
		var count int64
		if err := database.C.Model(&models.PostView{}).Where("post_id = ?", k).Count(&count).Error; err != nil {
			continue
		}
		database.C.Model(&models.Post{}).Where("id = ?", k).
			Update("total_views", count)
	}
}
