package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/mirrorfield/chronicle/pkg/internal/sec"
	"github.com/mirrorfield/chronicle/pkg/internal/services"
	"github.com/samber/lo"
)

func getGlobalFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	out, err := services.GetFeedPage(services.FeedGlobal, "", nil, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		services.AddPostViews(out.Items, user.ID)
	}

	if c.QueryBool("truncate", true) {
		for idx, item := range out.Items {
			out.Items[idx] = lo.ToPtr(services.TruncatePostContent(*item))
		}
	}

	return c.JSON(out)
}

func getFollowingFeed(c *fiber.Ctx) error {
	if err := sec.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	page := c.QueryInt("page", 1)

	out, err := services.GetFeedPage(services.FeedFollowing, "", &user.ID, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	services.AddPostViews(out.Items, user.ID)

	if c.QueryBool("truncate", true) {
		for idx, item := range out.Items {
			out.Items[idx] = lo.ToPtr(services.TruncatePostContent(*item))
		}
	}

	return c.JSON(out)
}
