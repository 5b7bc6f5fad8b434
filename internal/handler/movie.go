package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/filmbase/internal/model"
	"github.com/user/filmbase/internal/repository"
	"github.com/user/filmbase/internal/service"
	"github.com/user/filmbase/internal/utils"
)

type createMovieRequest struct {
	Title       string `json:"title" binding:"required"`
	Genre       string `json:"genre" binding:"required"`
	Director    string `json:"director" binding:"required"`
	ReleaseYear int    `json:"releaseYear" binding:"required,releaseyear"`
	Language    string `json:"language" binding:"required"`
}

type updateMovieRequest struct {
	Title       *string `json:"title"`
	Genre       *string `json:"genre"`
	Director    *string `json:"director"`
	ReleaseYear *int    `json:"releaseYear"`
	Language    *string `json:"language"`
}

// CreateMovie 新增电影
func (h *Handler) CreateMovie(c *gin.Context) {
	var req createMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "title, genre, director, releaseYear and language are required")
		return
	}

	movie := &model.Movie{
		Title:       req.Title,
		Genre:       req.Genre,
		Director:    req.Director,
		ReleaseYear: req.ReleaseYear,
		Language:    req.Language,
	}
	if err := h.Movies.Create(movie); err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, movie)
}

// ListMovies 分页查询电影列表
func (h *Handler) ListMovies(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	params := repository.ListParams{
		Page:          page,
		PageSize:      pageSize,
		SortBy:        c.Query("sortBy"),
		SortDirection: c.Query("sortDirection"),
		Title:         c.Query("title"),
		Genre:         c.Query("genre"),
		Director:      c.Query("director"),
		Language:      c.Query("language"),
	}
	if year, err := strconv.Atoi(c.Query("releaseYear")); err == nil {
		params.ReleaseYear = year
	}

	movies, total, err := h.Movies.List(params)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MoviePage{
		Movies:     movies,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	})
}

// GetMovie 电影详情，附带影评与演员表
func (h *Handler) GetMovie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid movie id")
		return
	}

	movie, err := h.Movies.FindByID(id)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if movie == nil {
		utils.NotFound(c, "movie not found")
		return
	}

	reviews, err := h.Reviews.ListByMovie(id)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	cast, err := h.Actors.ByMovie(id)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MovieDetail{
		Movie:   *movie,
		Reviews: reviews,
		Cast:    cast,
	})
}

// UpdateMovie 部分更新，至少需要提供一个字段
func (h *Handler) UpdateMovie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid movie id")
		return
	}

	var req updateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid movie payload")
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Genre != nil {
		updates["genre"] = *req.Genre
	}
	if req.Director != nil {
		updates["director"] = *req.Director
	}
	if req.ReleaseYear != nil {
		updates["release_year"] = *req.ReleaseYear
	}
	if req.Language != nil {
		updates["language"] = *req.Language
	}
	if len(updates) == 0 {
		utils.BadRequest(c, "no movie fields provided for update")
		return
	}

	movie, err := h.Movies.Update(id, updates)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if movie == nil {
		utils.NotFound(c, "movie not found")
		return
	}

	c.JSON(http.StatusOK, movie)
}

// DeleteMovie 删除电影，影评/演员表/片单/奖项关联由数据库级联清理
func (h *Handler) DeleteMovie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid movie id")
		return
	}

	deleted, err := h.Movies.Delete(id)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if !deleted {
		utils.NotFound(c, "movie not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "movie deleted"})
}

// GetMovieMetadata 查询外部元数据服务的补充信息
func (h *Handler) GetMovieMetadata(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid movie id")
		return
	}

	meta, err := h.Metadata.ForMovie(c.Request.Context(), id)
	if errors.Is(err, service.ErrMovieNotFound) {
		utils.NotFound(c, "movie not found")
		return
	}
	if err != nil {
		utils.BadGateway(c, "metadata provider unavailable: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, meta)
}
