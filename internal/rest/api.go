package rest

import (
	"github.com/dfryer1193/folio/blog/application"
	"github.com/dfryer1193/folio/internal/middleware"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with logging, panic recovery and the API routes
func NewRouter(postService *application.PostService) *gin.Engine {
	router := gin.New()
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))
	NewApi(router, postService)
	return router
}

func NewApi(router *gin.Engine, postService *application.PostService) {
	posts := &postsHandler{service: postService}

	postsV1 := router.Group("posts/v1")
	{
		postsV1.GET("/", posts.GetPosts)
		postsV1.GET("/slugs", posts.GetSlugs)
		postsV1.GET("/:slug", posts.GetPost)
	}
}
