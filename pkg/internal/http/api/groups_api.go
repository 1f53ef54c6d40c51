package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/mirrorfield/chronicle/pkg/internal/http/exts"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"github.com/mirrorfield/chronicle/pkg/internal/sec"
	"github.com/mirrorfield/chronicle/pkg/internal/services"
	"gorm.io/gorm"
)

func listGroups(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	var groups []models.Group
	var err error
	if probe := c.Query("probe"); len(probe) > 0 {
		groups, err = services.SearchGroups(take, offset, probe)
	} else {
		groups, err = services.ListGroup(take, offset)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}

func getGroup(c *fiber.Ctx) error {
	alias := c.Params("groupAlias")

	group, err := services.GetGroup(alias)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(group)
}

func getGroupFeed(c *fiber.Ctx) error {
	alias := c.Params("groupAlias")
	page := c.QueryInt("page", 1)

	out, err := services.GetFeedPage(services.FeedByGroup, alias, nil, page)
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

func createGroup(c *fiber.Ctx) error {
	if err := sec.EnsureAuthenticated(c); err != nil {
		return err
	}

	var data struct {
		Alias       string `json:"alias" validate:"required,lowercase,min=2,max=96"`
		Name        string `json:"name" validate:"required,max=200"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.GetGroup(data.Alias); err == nil {
		return fiber.NewError(fiber.StatusConflict, fmt.Sprintf("group with alias %s already exists", data.Alias))
	}

	group, err := services.NewGroup(data.Alias, data.Name, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(group)
}

func editGroup(c *fiber.Ctx) error {
	if err := sec.EnsureAuthenticated(c); err != nil {
		return err
	}

	var data struct {
		Alias       string `json:"alias" validate:"required,lowercase,min=2,max=96"`
		Name        string `json:"name" validate:"required,max=200"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.GetGroup(c.Params("groupAlias"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	group, err = services.EditGroup(group, data.Alias, data.Name, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(group)
}

func deleteGroup(c *fiber.Ctx) error {
	if err := sec.EnsureAuthenticated(c); err != nil {
		return err
	}

	group, err := services.GetGroup(c.Params("groupAlias"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteGroup(group); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
