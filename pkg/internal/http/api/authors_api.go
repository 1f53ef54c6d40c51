package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/mirrorfield/chronicle/pkg/internal/services"
	"gorm.io/gorm"
)

func getAuthor(c *fiber.Ctx) error {
	author, err := services.GetAuthor(c.Params("authorName"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	isFollowing := false
	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		isFollowing = services.IsFollowing(user.ID, author)
	}

	return c.JSON(fiber.Map{
		"author":       author,
		"followers":    services.CountFollowers(author),
		"is_following": isFollowing,
	})
}

func getAuthorFeed(c *fiber.Ctx) error {
	name := c.Params("authorName")
	page := c.QueryInt("page", 1)

	out, err := services.GetFeedPage(services.FeedByAuthor, name, nil, page)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		services.AddPostViews(out.Items, user.ID)
	}

	return c.JSON(out)
}
