package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/filmbase/internal/middleware"
	"github.com/user/filmbase/internal/utils"
)

type createReviewRequest struct {
	Rating  *int   `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// CreateReview 新增影评，评分必须在 1 到 10 之间
func (h *Handler) CreateReview(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid movie id")
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "rating is required")
		return
	}
	if *req.Rating < 1 || *req.Rating > 10 {
		utils.BadRequest(c, "rating must be between 1 and 10")
		return
	}

	movie, err := h.Movies.FindByID(movieID)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if movie == nil {
		utils.NotFound(c, "movie not found")
		return
	}

	userID := middleware.GetUserID(c)
	review, err := h.Reviews.Create(userID, movieID, *req.Rating, req.Comment)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListReviews 查询电影的全部影评
func (h *Handler) ListReviews(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid movie id")
		return
	}

	reviews, err := h.Reviews.ListByMovie(movieID)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// DeleteReview 删除影评。(评论, 用户, 电影) 三元组不匹配时一律 404，
// 用户只能删除自己在该电影下的影评。
func (h *Handler) DeleteReview(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid movie id")
		return
	}
	reviewID, err := strconv.Atoi(c.Param("reviewId"))
	if err != nil {
		utils.BadRequest(c, "invalid review id")
		return
	}

	userID := middleware.GetUserID(c)
	deleted, err := h.Reviews.Delete(reviewID, userID, movieID)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if !deleted {
		utils.NotFound(c, "review not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
