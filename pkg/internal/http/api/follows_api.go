package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/mirrorfield/chronicle/pkg/internal/sec"
	"github.com/mirrorfield/chronicle/pkg/internal/services"
)

func followAuthor(c *fiber.Ctx) error {
	if err := sec.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	author, err := services.GetAuthor(c.Params("authorName"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	follow, err := services.FollowAuthor(user.ID, author)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfFollow):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrAlreadyFollowing):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(fiber.StatusCreated).JSON(follow)
}

func unfollowAuthor(c *fiber.Ctx) error {
	if err := sec.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	author, err := services.GetAuthor(c.Params("authorName"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.UnfollowAuthor(user.ID, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
