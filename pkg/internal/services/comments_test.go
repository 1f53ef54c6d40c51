package services

import (
	"testing"
	"time"

	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentsListNewestFirst(t *testing.T) {
	testSetup(t)

	alice := mustAuthor(t, "alice", 1)
	bob := mustAuthor(t, "bob", 2)
	post := mustPost(t, alice, "discuss", time.Now(), nil)

	first, err := NewComment(bob, post, "first!")
	require.NoError(t, err)
	second, err := NewComment(alice, post, "thanks")
	require.NoError(t, err)

	comments, err := ListComments(post)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	// Same-timestamp inserts fall back to descending id
	assert.Equal(t, second.ID, comments[0].ID)
	assert.Equal(t, first.ID, comments[1].ID)
	assert.EqualValues(t, 2, CountComments(post))
}

func TestCommentsDieWithTheirPost(t *testing.T) {
	testSetup(t)

	alice := mustAuthor(t, "alice", 1)
	post := mustPost(t, alice, "doomed", time.Now(), nil)
	other := mustPost(t, alice, "unrelated", time.Now(), nil)

	_, err := NewComment(alice, post, "gone soon")
	require.NoError(t, err)
	kept, err := NewComment(alice, other, "kept")
	require.NoError(t, err)

	require.NoError(t, DeletePost(post))

	var count int64
	require.NoError(t, database.C.Model(&models.Comment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var survivor models.Comment
	require.NoError(t, database.C.First(&survivor, kept.ID).Error)
	assert.Equal(t, other.ID, survivor.PostID)
}

func TestListPostAttachesCommentMetric(t *testing.T) {
	testSetup(t)

	alice := mustAuthor(t, "alice", 1)
	chatty := mustPost(t, alice, "chatty", time.Now().Add(-time.Minute), nil)
	quiet := mustPost(t, alice, "quiet", time.Now(), nil)

	for i := 0; i < 3; i++ {
		_, err := NewComment(alice, chatty, "ping")
		require.NoError(t, err)
	}

	items, err := ListPost(database.C, 10, 0, FeedOrder)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, quiet.ID, items[0].ID)
	assert.EqualValues(t, 0, items[0].Metric.CommentCount)
	assert.EqualValues(t, 3, items[1].Metric.CommentCount)
}
