package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/filmbase/internal/middleware"
	"github.com/user/filmbase/internal/model"
	"github.com/user/filmbase/internal/repository"
	"github.com/user/filmbase/internal/utils"
)

type createWatchlistRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListWatchlists 当前用户的全部片单
func (h *Handler) ListWatchlists(c *gin.Context) {
	userID := middleware.GetUserID(c)

	watchlists, err := h.Watchlists.ListByUser(userID)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, watchlists)
}

// CreateWatchlist 创建片单
func (h *Handler) CreateWatchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req createWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "name is required")
		return
	}

	watchlist, err := h.Watchlists.Create(userID, req.Name)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, watchlist)
}

// GetWatchlist 片单详情。归属不符与不存在统一返回 404，避免泄露片单是否存在。
func (h *Handler) GetWatchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	watchlistID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid watchlist id")
		return
	}

	watchlist, err := h.Watchlists.FindOwned(watchlistID, userID)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if watchlist == nil {
		utils.NotFound(c, "watchlist not found for the current user")
		return
	}

	movies, err := h.Movies.ByWatchlist(watchlistID)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.WatchlistSnapshot{
		ID:     watchlist.ID,
		Name:   watchlist.Name,
		Movies: movies,
	})
}

// AddMovieToWatchlist 向片单加入电影，返回写入后重读的快照
func (h *Handler) AddMovieToWatchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	watchlistID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid watchlist id")
		return
	}
	movieID, err := strconv.Atoi(c.Query("movieId"))
	if err != nil {
		utils.BadRequest(c, "movieId query parameter is required")
		return
	}

	watchlist, err := h.Watchlists.FindOwned(watchlistID, userID)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if watchlist == nil {
		utils.NotFound(c, "watchlist not found for the current user")
		return
	}

	snapshot, err := h.Watchlists.AddMovie(watchlistID, movieID)
	if errors.Is(err, repository.ErrDuplicate) {
		utils.Conflict(c, "movie already in watchlist")
		return
	}
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "movie added to watchlist",
		"watchlist": snapshot,
	})
}

// RemoveMovieFromWatchlist 从片单移除电影
func (h *Handler) RemoveMovieFromWatchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	watchlistID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid watchlist id")
		return
	}
	movieID, err := strconv.Atoi(c.Param("movieId"))
	if err != nil {
		utils.BadRequest(c, "invalid movie id")
		return
	}

	watchlist, err := h.Watchlists.FindOwned(watchlistID, userID)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if watchlist == nil {
		utils.NotFound(c, "watchlist not found for the current user")
		return
	}

	removed, err := h.Watchlists.RemoveMovie(watchlistID, movieID)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if !removed {
		utils.NotFound(c, "movie not found in this watchlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "movie removed from watchlist"})
}
