package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/inkwell-studio/backoffice/internal/core/ports"
)

// PostHandler handles HTTP requests for blog posts. Reads are public; writes
// sit behind the admin gate in the router.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type postRequest struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Slug    string `json:"slug"`
}

// List handles GET /api/posts.
//
// @Summary      List posts, newest first
// @Tags         posts
// @Produce      json
// @Success      200  {array}  domain.Post
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/posts/:id.
//
// @Summary      Get a single post
// @Tags         posts
// @Produce      json
// @Param        id  path  int  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	post, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Create handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      postRequest  true  "Post fields"
// @Success      201   {object}  domain.Post
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.Create(c.Request().Context(), ports.PostInput{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Slug:    req.Slug,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, post)
}

// Update handles PUT /api/posts/:id.
//
// @Summary      Replace a post's title, excerpt and slug
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Post id"
// @Param        body  body      postRequest  true  "Post fields"
// @Success      200   {object}  domain.Post
// @Failure      404   {object}  errorResponse
// @Router       /api/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.Update(c.Request().Context(), id, ports.PostInput{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Slug:    req.Slug,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/posts/:id.
//
// @Summary      Delete a post
// @Tags         posts
// @Param        id  path  int  true  "Post id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func postID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "post not found")
	}
	return id, nil
}
