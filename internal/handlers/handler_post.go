package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookloft/bookstore_backend/internal/apperrors"
	portssvc "github.com/bookloft/bookstore_backend/internal/core/ports/services"
	"github.com/bookloft/bookstore_backend/internal/dto"
	"github.com/bookloft/bookstore_backend/internal/middleware"
)

// postHandler serves the blog.
type postHandler struct {
	postService portssvc.PostSvcFacade
}

func newPostHandler(ps portssvc.PostSvcFacade) *postHandler {
	return &postHandler{postService: ps}
}

// registerPostRoutes registers the public blog routes.
func registerPostRoutes(rg *gin.RouterGroup, ps portssvc.PostSvcFacade) {
	h := newPostHandler(ps)

	posts := rg.Group("/posts")
	{
		posts.GET("", h.listPosts)
		posts.GET("/:slug", h.getPostBySlug)
	}
}

// registerAdminPostRoutes registers the back-office blog routes.
func registerAdminPostRoutes(rg *gin.RouterGroup, ps portssvc.PostSvcFacade) {
	h := newPostHandler(ps)

	posts := rg.Group("/posts")
	{
		posts.POST("", h.createPost)
		posts.GET("", h.listPostsAdmin)
		posts.PUT("/:id", h.updatePost)
		posts.DELETE("/:id", h.deletePost)
	}
}

// listPosts godoc
// @Summary List published posts
// @Description Pages published posts newest-first, excerpts only. Supports full-text search via q.
// @Tags posts
// @Produce json
// @Param q query string false "Full-text search query"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPostsResponse
// @Failure 400 {object} ErrorResponse
// @Router /posts [get]
func (h *postHandler) listPosts(c *gin.Context) {
	h.listPostsWith(c, false)
}

// listPostsAdmin godoc
// @Summary List all posts (admin)
// @Tags admin-posts
// @Produce json
// @Param q query string false "Full-text search query"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPostsResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/posts [get]
func (h *postHandler) listPostsAdmin(c *gin.Context) {
	h.listPostsWith(c, true)
}

func (h *postHandler) listPostsWith(c *gin.Context, includeUnpublished bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	posts, nextToken, err := h.postService.ListPosts(c.Request.Context(), req, includeUnpublished)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list posts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list posts"})
		return
	}

	resp := dto.ListPostsResponse{Posts: make([]dto.PostResponse, len(posts)), NextToken: nextToken}
	for i := range posts {
		resp.Posts[i] = dto.ToPostResponse(&posts[i], false)
	}
	c.JSON(http.StatusOK, resp)
}

// getPostBySlug godoc
// @Summary Get a post by slug
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.PostResponse
// @Failure 404 {object} ErrorResponse
// @Router /posts/{slug} [get]
func (h *postHandler) getPostBySlug(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	slug := c.Param("slug")

	session := middleware.SessionFromContext(c.Request.Context())
	post, err := h.postService.GetPostBySlug(c.Request.Context(), slug, session.IsAdmin())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
			return
		}
		logger.Error("Failed to get post", slog.String("slug", slug), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get post"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post, true))
}

// createPost godoc
// @Summary Create a post
// @Tags admin-posts
// @Accept json
// @Produce json
// @Param post body dto.CreatePostRequest true "Post details"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug already in use"
// @Router /admin/posts [post]
func (h *postHandler) createPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adminID, _ := middleware.GetUserIDFromContext(c)
	post, err := h.postService.CreatePost(c.Request.Context(), req, adminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A post with this slug already exists"})
			return
		}
		logger.Error("Failed to create post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create post"})
		return
	}

	logger.Info("Post created", slog.String("post_id", post.PostID))
	c.JSON(http.StatusCreated, dto.ToPostResponse(post, true))
}

// updatePost godoc
// @Summary Update a post
// @Tags admin-posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body dto.UpdatePostRequest true "Fields to update"
// @Success 200 {object} dto.PostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/posts/{id} [put]
func (h *postHandler) updatePost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	postID := c.Param("id")

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	adminID, _ := middleware.GetUserIDFromContext(c)
	post, err := h.postService.UpdatePost(c.Request.Context(), postID, req, adminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
			return
		}
		logger.Error("Failed to update post", slog.String("post_id", postID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post, true))
}

// deletePost godoc
// @Summary Delete a post
// @Tags admin-posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /admin/posts/{id} [delete]
func (h *postHandler) deletePost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	postID := c.Param("id")

	adminID, _ := middleware.GetUserIDFromContext(c)
	if err := h.postService.DeletePost(c.Request.Context(), postID, adminID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
			return
		}
		logger.Error("Failed to delete post", slog.String("post_id", postID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete post"})
		return
	}

	c.Status(http.StatusNoContent)
}
