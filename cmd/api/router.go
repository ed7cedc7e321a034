package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fanzone-backend/internal/shared/middleware"
	"fanzone-backend/internal/shared/response"
	"fanzone-backend/pkg/container"
)

func buildRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
	)

	r.GET("/health", healthCheck(c))

	v1 := r.Group("/api/v1")

	// Public
	v1.POST("/auth/register", c.UserHandler.Register)
	v1.POST("/auth/login", c.UserHandler.Login)

	v1.GET("/articles", c.ArticleHandler.List)
	v1.GET("/articles/:slug", c.ArticleHandler.GetBySlug)
	v1.GET("/articles/:slug/comments", c.CommentHandler.ListPublic)
	v1.POST("/articles/:slug/comments", c.CommentHandler.Submit)

	v1.GET("/canvases", c.CanvasHandler.List)
	v1.GET("/canvases/:id", c.CanvasHandler.Get)
	v1.GET("/canvases/:id/posts", c.CanvasHandler.ListPosts)

	v1.GET("/community/posts", c.CommunityHandler.ListFeed)

	// Authenticated
	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		authed.POST("/canvases", c.CanvasHandler.Create)
		authed.POST("/canvases/:id/posts", c.CanvasHandler.CreatePost)

		authed.POST("/media/presign", c.MediaHandler.Presign)
		authed.PUT("/uploads/:id", c.MediaHandler.UploadBytes)
		authed.POST("/media/:id/finalize", c.MediaHandler.Finalize)

		authed.POST("/community/posts", c.CommunityHandler.CreatePost)
	}

	// Admin
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.POST("/articles", c.ArticleHandler.Create)
		admin.POST("/articles/:id/publish", c.ArticleHandler.Publish)

		admin.GET("/comments", c.CommentHandler.AdminList)
		admin.GET("/comments/export", c.CommentHandler.Export)
		admin.POST("/comments/:id/approve", c.CommentHandler.Approve)
		admin.POST("/comments/:id/reject", c.CommentHandler.Reject)

		admin.PUT("/uploads/:id", c.MediaHandler.UploadBytes)
		admin.GET("/media", c.MediaHandler.AdminList)
	}

	return r
}

func healthCheck(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		}

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			ctx.JSON(http.StatusServiceUnavailable, status)
			return
		}
		if err := c.Cache.Ping(checkCtx); err != nil {
			// Cache is best-effort, the API stays up without it.
			status["cache"] = err.Error()
		}

		response.Success(ctx, http.StatusOK, status)
	}
}
