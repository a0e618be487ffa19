package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// bindPatch 解析部分更新请求体，空请求体视为 {}，失败时已写入 400 响应
func bindPatch(c *gin.Context, patch interface{}) bool {
	if err := c.ShouldBindJSON(patch); err != nil && !errors.Is(err, io.EOF) {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
