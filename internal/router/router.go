package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/filmbase/internal/handler"
	"github.com/user/filmbase/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== 认证 ====================
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	// ==================== 电影目录（公开） ====================
	movies := r.Group("/movies")
	{
		movies.GET("", h.ListMovies)
		movies.POST("", h.CreateMovie)
		movies.GET("/:id", h.GetMovie)
		movies.PUT("/:id", h.UpdateMovie)
		movies.DELETE("/:id", h.DeleteMovie)
		movies.GET("/:id/reviews", h.ListReviews)
		movies.GET("/:id/cast", h.GetMovieCast)
		movies.GET("/:id/awards", h.GetMovieAwards)
		movies.GET("/:id/metadata", h.GetMovieMetadata)
	}

	// ==================== 演员（只读，公开） ====================
	r.GET("/actors", h.ListActors)
	r.GET("/actors/:id", h.GetActor)

	// ==================== 影评（需要登录） ====================
	reviews := r.Group("/movies/:id/reviews")
	reviews.Use(middleware.RequireAuth(h.Config.JWTSecret))
	{
		reviews.POST("", h.CreateReview)
		reviews.DELETE("/:reviewId", h.DeleteReview)
	}

	// ==================== 当前用户与片单（需要登录） ====================
	me := r.Group("/users/me")
	me.Use(middleware.RequireAuth(h.Config.JWTSecret))
	{
		me.GET("", h.Me)
		me.PUT("", h.UpdateMe)
		me.DELETE("", h.DeleteMe)

		me.GET("/watchlists", h.ListWatchlists)
		me.POST("/watchlists", h.CreateWatchlist)
		me.GET("/watchlists/:id", h.GetWatchlist)
		me.POST("/watchlists/:id", h.AddMovieToWatchlist)
		me.DELETE("/watchlists/:id/movies/:movieId", h.RemoveMovieFromWatchlist)
	}
}
