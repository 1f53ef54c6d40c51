package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/http/exts"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/mirrorfield/chronicle/pkg/internal/sec"
	"github.com/mirrorfield/chronicle/pkg/internal/services"
	"github.com/samber/lo"
)

func listPosts(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	count, err := services.CountPost(database.C)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(database.C, take, offset, services.FeedOrder)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		services.AddPostViews(items, user.ID)
	}

	if c.QueryBool("truncate", true) {
		for idx, item := range items {
			items[idx] = lo.ToPtr(services.TruncatePostContent(*item))
		}
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func getPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// The detail view always carries the full live comment thread
	item.Comments, err = services.ListComments(item)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	item.Metric = models.PostMetric{
		CommentCount: int64(len(item.Comments)),
	}

	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		services.AddPostView(item, user.ID)
	}

	return c.JSON(item)
}

func createPost(c *fiber.Ctx) error {
	if err := sec.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	var data struct {
		Text        string   `json:"text" validate:"required,max=4096"`
		Attachments []string `json:"attachments"`
		Group       *string  `json:"group"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	author, err := services.EnsureAuthor(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	item := models.Post{
		Text:        data.Text,
		Attachments: data.Attachments,
	}

	if data.Group != nil {
		group, err := services.GetGroup(*data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find group %s: %v", *data.Group, err))
		}
		item.GroupID = &group.ID
	}

	item, err = services.NewPost(author, item)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func editPost(c *fiber.Ctx) error {
	if err := sec.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	var data struct {
		Text        string   `json:"text" validate:"required,max=4096"`
		Attachments []string `json:"attachments"`
		Group       *string  `json:"group"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if item.Author.AccountID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "you cannot edit other author's post")
	}

	item.Text = data.Text
	item.Attachments = data.Attachments
	item.GroupID = nil
	if data.Group != nil {
		group, err := services.GetGroup(*data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find group %s: %v", *data.Group, err))
		}
		item.GroupID = &group.ID
	}

	item, err = services.EditPost(item)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	if err := sec.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if item.Author.AccountID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "you cannot delete other author's post")
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
