package router

import (
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/pkg/http"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) postRouter(r fiber.Router, auth fiber.Handler) {
	postGroup := r.Group("/system/post", auth)
	{
		postGroup.Get("/", rt.requirePerm("system:post:list"), rt.listPosts)
		postGroup.Post("/", rt.requirePerm("system:post:add"), rt.audit("岗位管理", model.BusinessTypeCreate), rt.createPost)
		postGroup.Put("/", rt.requirePerm("system:post:edit"), rt.audit("岗位管理", model.BusinessTypeUpdate), rt.updatePost)
		postGroup.Get("/:ids", rt.requirePerm("system:post:query"), rt.getPost)
		postGroup.Delete("/:ids", rt.requirePerm("system:post:remove"), rt.audit("岗位管理", model.BusinessTypeDelete), rt.deletePosts)
	}
}

func (rt *Router) listPosts(c *fiber.Ctx) error {
	query := &model.PostQuery{
		PageNum:  queryInt(c, "pageNum"),
		PageSize: queryInt(c, "pageSize"),
		PostName: c.Query("postName"),
		PostCode: c.Query("postCode"),
		Status:   c.Query("status"),
	}
	posts, total, err := rt.Repos.Post.ListPosts(query)
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepRows(c, posts, total)
}

func (rt *Router) getPost(c *fiber.Ctx) error {
	postId, err := pathId(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid post id")
	}
	post, err := rt.Repos.Post.GetPostById(postId)
	if err != nil {
		return http.WithRepMsg(c, http.NotFound.Code, "post not found")
	}
	return http.WithRepJSON(c, post)
}

func (rt *Router) createPost(c *fiber.Ctx) error {
	var post model.Post
	if err := c.BodyParser(&post); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	if err := rt.Services.Post.CreatePost(&post); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) updatePost(c *fiber.Ctx) error {
	var post model.Post
	if err := c.BodyParser(&post); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid request body")
	}
	updates := map[string]any{
		"post_name": post.PostName,
		"post_code": post.PostCode,
		"post_sort": post.PostSort,
		"status":    post.Status,
		"remark":    post.Remark,
	}
	if err := rt.Services.Post.UpdatePost(post.PostId, updates); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}

func (rt *Router) deletePosts(c *fiber.Ctx) error {
	postIds, err := pathIds(c, "ids")
	if err != nil {
		return http.WithRepMsg(c, http.Failed.Code, "invalid post ids")
	}
	if err := rt.Services.Post.DeletePosts(postIds); err != nil {
		return http.WithRepMsg(c, http.Failed.Code, err.Error())
	}
	return http.WithRepNotData(c)
}
