package services

import (
	"testing"

	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFollowAuthor(t *testing.T) {
	testSetup(t)

	alice := mustAuthor(t, "alice", 1)

	_, err := FollowAuthor(2, alice)
	require.NoError(t, err)
	assert.True(t, IsFollowing(2, alice))
	assert.EqualValues(t, 1, CountFollowers(alice))
}

func TestFollowAuthorRejectsSelfFollow(t *testing.T) {
	testSetup(t)

	alice := mustAuthor(t, "alice", 1)

	_, err := FollowAuthor(1, alice)
	require.ErrorIs(t, err, ErrSelfFollow)

	// The graph must stay untouched
	var count int64
	require.NoError(t, database.C.Model(&models.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestFollowAuthorRejectsDuplicateEdge(t *testing.T) {
	testSetup(t)

	alice := mustAuthor(t, "alice", 1)

	_, err := FollowAuthor(2, alice)
	require.NoError(t, err)
	_, err = FollowAuthor(2, alice)
	require.ErrorIs(t, err, ErrAlreadyFollowing)

	var count int64
	require.NoError(t, database.C.Model(&models.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDuplicateEdgeInsertMapsToAlreadyFollowing(t *testing.T) {
	testSetup(t)

	alice := mustAuthor(t, "alice", 1)

	_, err := FollowAuthor(2, alice)
	require.NoError(t, err)

	// A second insert that slips past the existence check, as a concurrent
	// FollowAuthor would, must come back as the duplicated-key sentinel the
	// race mapping matches on, not a raw driver error
	err = database.C.Create(&models.Follow{
		FollowerID: 2,
		AuthorID:   alice.ID,
	}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	require.NoError(t, database.C.Model(&models.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUnfollowAuthorIsIdempotent(t *testing.T) {
	testSetup(t)

	alice := mustAuthor(t, "alice", 1)

	_, err := FollowAuthor(2, alice)
	require.NoError(t, err)

	require.NoError(t, UnfollowAuthor(2, alice))
	assert.False(t, IsFollowing(2, alice))

	// A second unfollow is a no-op, not an error
	require.NoError(t, UnfollowAuthor(2, alice))
	assert.False(t, IsFollowing(2, alice))
}

func TestListFollowedAuthors(t *testing.T) {
	testSetup(t)

	alice := mustAuthor(t, "alice", 1)
	bob := mustAuthor(t, "bob", 2)
	carol := mustAuthor(t, "carol", 3)

	_, err := FollowAuthor(9, alice)
	require.NoError(t, err)
	_, err = FollowAuthor(9, carol)
	require.NoError(t, err)

	followed, err := ListFollowedAuthors(9)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{alice.ID, carol.ID}, followed)
	assert.NotContains(t, followed, bob.ID)
}
