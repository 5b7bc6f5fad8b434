package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/filmbase/internal/middleware"
	"github.com/user/filmbase/internal/repository"
	"github.com/user/filmbase/internal/utils"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Register 注册用户
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "username, email and password are required")
		return
	}

	user, err := h.Users.Create(req.Username, req.Email, req.Password)
	if errors.Is(err, repository.ErrDuplicate) {
		utils.Conflict(c, "username or email already registered")
		return
	}
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login 登录。无论邮箱不存在还是密码错误，都返回同样的提示。
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "email and password are required")
		return
	}

	user, err := h.Users.FindByEmail(req.Email)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if user == nil || !h.Users.CheckPassword(user, req.Password) {
		utils.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.Config.JWTSecret, h.Config.JWTExpiry)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me 当前用户信息
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.Users.FindByID(userID)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if user == nil {
		utils.NotFound(c, "user not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe 部分更新当前用户，至少需要提供一个字段
func (h *Handler) UpdateMe(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid user payload")
		return
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		hash, err := h.Users.HashPassword(*req.Password)
		if err != nil {
			utils.InternalServerError(c, err)
			return
		}
		updates["password_hash"] = hash
	}
	if len(updates) == 0 {
		utils.BadRequest(c, "no user fields provided for update")
		return
	}

	user, err := h.Users.Update(userID, updates)
	if errors.Is(err, repository.ErrDuplicate) {
		utils.Conflict(c, "username or email already registered")
		return
	}
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if user == nil {
		utils.NotFound(c, "user not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteMe 注销当前用户，评论与片单由数据库级联清理
func (h *Handler) DeleteMe(c *gin.Context) {
	userID := middleware.GetUserID(c)

	deleted, err := h.Users.Delete(userID)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if !deleted {
		utils.NotFound(c, "user not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
