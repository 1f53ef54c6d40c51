package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		feed := api.Group("/feed").Name("Feed API")
		{
			feed.Get("/", getGlobalFeed)
			feed.Get("/following", getFollowingFeed)
		}

		groups := api.Group("/groups").Name("Groups API")
		{
			groups.Get("/", listGroups)
			groups.Post("/", createGroup)
			groups.Get("/:groupAlias", getGroup)
			groups.Put("/:groupAlias", editGroup)
			groups.Delete("/:groupAlias", deleteGroup)
			groups.Get("/:groupAlias/feed", getGroupFeed)
		}

		authors := api.Group("/authors").Name("Authors API")
		{
			authors.Get("/:authorName", getAuthor)
			authors.Get("/:authorName/feed", getAuthorFeed)
			authors.Post("/:authorName/follow", followAuthor)
			authors.Delete("/:authorName/follow", unfollowAuthor)
		}

		posts := api.Group("/posts").Name("Posts API")
		{
			posts.Get("/", listPosts)
			posts.Post("/", createPost)
			posts.Get("/:postId", getPost)
			posts.Put("/:postId", editPost)
			posts.Delete("/:postId", deletePost)
			posts.Get("/:postId/comments", listComments)
			posts.Post("/:postId/comments", createComment)
		}
	}
}
