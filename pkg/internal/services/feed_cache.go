package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/mirrorfield/chronicle/pkg/internal/cache"
	"github.com/rs/zerolog/log"
)

// FeedCacheTTL is the safety net for entries that outlive an invalidation
// race; a stale page can never survive longer than this.
const FeedCacheTTL = 20 * time.Second

const feedCacheTag = "feed-page"

// CachedFeedPage is what actually sits in the cache: the id sequence of a
// page plus the total, never full post bodies. Bodies are re-read by id on
// every hit to keep the staleness blast radius down.
type CachedFeedPage struct {
	PostIDs []uint `json:"post_ids"`
	Total   int64  `json:"total"`
}

func KeyFeedPage(kind FeedKind, scope string, page int) string {
	return fmt.Sprintf("feed-page#%d:%s:%d", kind, scope, page)
}

func GetCachedFeedPage(kind FeedKind, scope string, page int) (*CachedFeedPage, bool) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	val, err := marshal.Get(ctx, KeyFeedPage(kind, scope, page), new(CachedFeedPage))
	if err != nil {
		return nil, false
	}

	entry, ok := val.(*CachedFeedPage)
	return entry, ok
}

func CacheFeedPage(kind FeedKind, scope string, page int, entry CachedFeedPage) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	if err := marshal.Set(
		ctx,
		KeyFeedPage(kind, scope, page),
		entry,
		store.WithExpiration(FeedCacheTTL),
		store.WithTags([]string{feedCacheTag}),
	); err != nil {
		log.Warn().Err(err).Msg("An error occurred when caching feed page...")
	}
}

// FlushFeedCache drops every cached feed page at once. It runs synchronously
// on the write path before the write is acknowledged; coarse on purpose, the
// cached space is bounded and a precise keying scheme is not worth the
// bookkeeping. A failure here only costs recomputation, never correctness.
func FlushFeedCache() {
	cacheManager := cache.New[any](localCache.S)
	ctx := context.Background()

	if err := cacheManager.Invalidate(ctx, store.WithInvalidateTags([]string{feedCacheTag})); err != nil {
		log.Warn().Err(err).Msg("An error occurred when flushing feed cache...")
	}
}
