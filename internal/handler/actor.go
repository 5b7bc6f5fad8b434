package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/filmbase/internal/utils"
)

// ListActors 演员列表（只读）
func (h *Handler) ListActors(c *gin.Context) {
	actors, err := h.Actors.ListAll()
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, actors)
}

// GetActor 演员详情
func (h *Handler) GetActor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid actor id")
		return
	}

	actor, err := h.Actors.FindByID(id)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if actor == nil {
		utils.NotFound(c, "actor not found")
		return
	}

	c.JSON(http.StatusOK, actor)
}

// GetMovieCast 电影的演员表
func (h *Handler) GetMovieCast(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid movie id")
		return
	}

	cast, err := h.Actors.ByMovie(movieID)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, cast)
}

// GetMovieAwards 电影的获奖记录
func (h *Handler) GetMovieAwards(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "invalid movie id")
		return
	}

	awards, err := h.Awards.ByMovie(movieID)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, awards)
}
