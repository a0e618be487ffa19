package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/blues/spacedao/internal/logger"
	"github.com/blues/spacedao/internal/logic"
	"github.com/blues/spacedao/internal/repository"
	"github.com/gin-gonic/gin"
)

// ErrorBody 错误响应
type ErrorBody struct {
	Message string `json:"message"`
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Message: message})
}

// HandleError 将业务错误映射为 HTTP 状态码，resource 用于 404 提示
func HandleError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, fmt.Sprintf("%s not found", resource))
	case errors.Is(err, logic.ErrInvalidVote):
		ErrorResponse(c, http.StatusBadRequest, "Invalid vote or amount")
	case errors.Is(err, logic.ErrUserExists):
		ErrorResponse(c, http.StatusConflict, "Username or wallet address already registered")
	case errors.Is(err, logic.ErrInvalidCredentials):
		ErrorResponse(c, http.StatusUnauthorized, "Invalid username or password")
	default:
		logger.Error("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		ErrorResponse(c, http.StatusInternalServerError, fmt.Sprintf("Failed to process %s", resource))
	}
}

// parseId 解析路径中的 id，失败时已写入 400 响应
func parseId(c *gin.Context, resource string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ErrorResponse(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s id", resource))
		return 0, false
	}
	return id, true
}
