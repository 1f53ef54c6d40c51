package api

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	localCache "github.com/mirrorfield/chronicle/pkg/internal/cache"
	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/mirrorfield/chronicle/pkg/internal/services"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testApp(t *testing.T) *fiber.App {
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

	app := fiber.New()
	MapAPIs(app, "/api")
	return app
}

func TestListPostsRoute(t *testing.T) {
	app := testApp(t)

	author, err := services.EnsureAuthor(models.Account{ID: 1, Name: "alice", Nick: "Alice"})
	require.NoError(t, err)

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	var latest models.Post
	for i := 0; i < 3; i++ {
		latest = models.Post{Text: fmt.Sprintf("post %d", i), AuthorID: author.ID}
		latest.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, database.C.Create(&latest).Error)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/posts?take=2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Count int64         `json:"count"`
		Data  []models.Post `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.EqualValues(t, 3, out.Count)
	require.Len(t, out.Data, 2)
	assert.Equal(t, latest.ID, out.Data[0].ID)
}
