package services

import (
	"fmt"

	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type FeedKind = uint8

const (
	FeedGlobal = FeedKind(iota)
	FeedByGroup
	FeedByAuthor
	FeedFollowing
)

// FeedPage is the assembled result handed to the presentation layer. Group
// and Author carry the scope metadata for the scoped feed kinds.
type FeedPage struct {
	Items   []*models.Post `json:"items"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	HasNext bool           `json:"has_next"`
	HasPrev bool           `json:"has_prev"`

	Group  *models.Group  `json:"group,omitempty"`
	Author *models.Author `json:"author,omitempty"`
}

// GetFeedPage assembles one page of the requested feed. The scope string is
// the group slug for FeedByGroup and the author name for FeedByAuthor; the
// viewer account is only consulted for FeedFollowing. An unknown scope comes
// back as an error wrapping gorm.ErrRecordNotFound, which is not the same
// thing as a perfectly valid feed that happens to be empty.
//
// Only the global feed goes through the page cache. Every other kind is
// scope- or viewer-specific and cheap enough to read live, and keeping the
// cached space bounded is what keeps whole-cache invalidation affordable.
func GetFeedPage(kind FeedKind, scope string, viewer *uint, page int) (*FeedPage, error) {
	if page < 1 {
		page = 1
	}

	switch kind {
	case FeedGlobal:
		return getGlobalFeedPage(page)
	case FeedByGroup:
		group, err := GetGroup(scope)
		if err != nil {
			return nil, fmt.Errorf("unable to resolve group %s: %w", scope, err)
		}
		out, err := computeFeedPage(FilterPostWithGroup(database.C, group.ID), page)
		if err != nil {
			return nil, err
		}
		out.Group = &group
		return out, nil
	case FeedByAuthor:
		author, err := GetAuthor(scope)
		if err != nil {
			return nil, fmt.Errorf("unable to resolve author %s: %w", scope, err)
		}
		out, err := computeFeedPage(FilterPostWithAuthor(database.C, author.ID), page)
		if err != nil {
			return nil, err
		}
		out.Author = &author
		return out, nil
	case FeedFollowing:
		if viewer == nil {
			return nil, fmt.Errorf("following feed requires a viewer identity")
		}
		followed, err := ListFollowedAuthors(*viewer)
		if err != nil {
			return nil, err
		}
		if len(followed) == 0 {
			_, _, hasNext, hasPrev := Paginate(0, page, FeedPageSize)
			return &FeedPage{Items: []*models.Post{}, Total: 0, Page: page, HasNext: hasNext, HasPrev: hasPrev}, nil
		}
		return computeFeedPage(FilterPostWithAuthorSet(database.C, followed), page)
	default:
		return nil, fmt.Errorf("unknown feed kind: %d", kind)
	}
}

// getGlobalFeedPage consults the page cache first. A hit only re-reads post
// bodies by id, it never runs the listing query; a cached id that no longer
// resolves degrades the entry into a miss so deleted posts heal themselves.
// Any cache trouble falls through to the live computation.
func getGlobalFeedPage(page int) (*FeedPage, error) {
	if entry, ok := GetCachedFeedPage(FeedGlobal, "", page); ok {
		items, intact, err := ListPostWithIDs(entry.PostIDs)
		if err == nil && intact {
			if items == nil {
				items = []*models.Post{}
			}
			_, _, hasNext, hasPrev := Paginate(entry.Total, page, FeedPageSize)
			return &FeedPage{
				Items:   items,
				Total:   entry.Total,
				Page:    page,
				HasNext: hasNext,
				HasPrev: hasPrev,
			}, nil
		}
	}

	out, err := computeFeedPage(database.C, page)
	if err != nil {
		return nil, err
	}

	CacheFeedPage(FeedGlobal, "", page, CachedFeedPage{
		PostIDs: lo.Map(out.Items, func(item *models.Post, _ int) uint {
			return item.ID
		}),
		Total: out.Total,
	})

	return out, nil
}

func computeFeedPage(tx *gorm.DB, page int) (*FeedPage, error) {
	count, err := CountPost(tx)
	if err != nil {
		return nil, fmt.Errorf("unable to count posts for feed: %v", err)
	}

	offset, limit, hasNext, hasPrev := Paginate(count, page, FeedPageSize)

	items, err := ListPost(tx, limit, offset, FeedOrder)
	if err != nil {
		return nil, fmt.Errorf("unable to list posts for feed: %v", err)
	}
	if items == nil {
		items = []*models.Post{}
	}

	return &FeedPage{
		Items:   items,
		Total:   count,
		Page:    page,
		HasNext: hasNext,
		HasPrev: hasPrev,
	}, nil
}
