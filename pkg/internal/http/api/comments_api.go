package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/http/exts"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/mirrorfield/chronicle/pkg/internal/sec"
	"github.com/mirrorfield/chronicle/pkg/internal/services"
)

func listComments(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	post, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find post: %v", err))
	}

	comments, err := services.ListComments(post)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": services.CountComments(post),
		"data":  comments,
	})
}

func createComment(c *fiber.Ctx) error {
	if err := sec.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	var data struct {
		Text string `json:"text" validate:"required,max=2048"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	post, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find post to comment: %v", err))
	}

	author, err := services.EnsureAuthor(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	comment, err := services.NewComment(author, post, data.Text)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
