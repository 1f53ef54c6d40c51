package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	localCache "github.com/mirrorfield/chronicle/pkg/internal/cache"
	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testSetup points database.C at a fresh in-memory database and rebuilds the
// local cache store, so every test starts from a clean world.
func testSetup(t *testing.T) {
	t.Helper()

	viper.Set("performance.cache_counters", int64(1e4))
	viper.Set("performance.cache_max_cost", int64(1<<26))
	require.NoError(t, localCache.NewStore())

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	source, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	database.C = source
	require.NoError(t, database.RunMigration(source))
}

func mustAuthor(t *testing.T, name string, accountId uint) models.Author {
	t.Helper()

	author, err := EnsureAuthor(models.Account{
		ID:   accountId,
		Name: name,
		Nick: name,
	})
	require.NoError(t, err)
	return author
}

// mustPost publishes directly through the database with a pinned timestamp so
// ordering tests stay deterministic; cache flushing is exercised separately
// through NewPost.
func mustPost(t *testing.T, author models.Author, text string, createdAt time.Time, groupId *uint) models.Post {
	t.Helper()

	item := models.Post{
		Text:     text,
		AuthorID: author.ID,
		GroupID:  groupId,
	}
	item.CreatedAt = createdAt
	require.NoError(t, database.C.Create(&item).Error)
	return item
}
