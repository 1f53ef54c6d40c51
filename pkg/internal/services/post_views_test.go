package services

import (
	"testing"
	"time"

	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlushPostViewsUpdatesTotals(t *testing.T) {
	testSetup(t)

	alice := mustAuthor(t, "alice", 1)
	post := mustPost(t, alice, "watched", time.Now(), nil)

	AddPostView(post, 7)
	AddPostViews([]*models.Post{&post}, 8)
	FlushPostViews()

	var updated models.Post
	require.NoError(t, database.C.First(&updated, post.ID).Error)
	assert.EqualValues(t, 2, updated.TotalViews)

	// Flushing an empty queue changes nothing
	FlushPostViews()
	require.NoError(t, database.C.First(&updated, post.ID).Error)
	assert.EqualValues(t, 2, updated.TotalViews)
}
