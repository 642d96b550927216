package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dfryer1193/folio/api"
	"github.com/dfryer1193/folio/blog/application"
	"github.com/dfryer1193/folio/blog/domain"
	"github.com/gin-gonic/gin"
)

type postsHandler struct {
	service *application.PostService
}

func (h *postsHandler) GetPosts(c *gin.Context) {
	number, err := intQuery(c, "page", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}
	size, err := intQuery(c, "size", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	page, err := h.service.ListPage(c.Request.Context(), number, size)
	if err != nil {
		writeError(c, err)
		return
	}

	posts := make([]api.Post, 0, len(page.Posts))
	for _, p := range page.Posts {
		dto := toApiPost(p)
		dto.Content = ""
		posts = append(posts, dto)
	}

	c.JSON(http.StatusOK, api.PostPage{
		Posts:      posts,
		TotalCount: page.TotalCount,
		Page:       page.Number,
		Size:       page.Size,
		TotalPages: page.TotalPages,
		HasNext:    page.HasNext,
		HasPrev:    page.HasPrev,
	})
}

func (h *postsHandler) GetSlugs(c *gin.Context) {
	slugs, err := h.service.GetAllSlugs(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.Slugs{Slugs: slugs})
}

func (h *postsHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.service.GetRenderedPost(c.Request.Context(), slug)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toApiPost(post))
}

func toApiPost(p *domain.Post) api.Post {
	return api.Post{
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		CoverImage:  p.CoverImage,
		Date:        p.Date,
		DisplayDate: application.FormatDate(p.Date),
		Description: p.Description,
		UpdatedDate: p.UpdatedDate,
		Tags:        p.Tags,
		Category:    p.Category,
		URL:         "/blog/" + p.Slug,
		Content:     p.Content,
	}
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(key + " must be an integer")
	}
	return v, nil
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		c.JSON(http.StatusNotFound, api.Error{Error: "post not found"})
	case errors.Is(err, domain.ErrInvalidPagination):
		c.JSON(http.StatusBadRequest, api.Error{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.Error{Error: "internal error"})
	}
}
