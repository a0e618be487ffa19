package router

import (
	"net/http"
	"time"

	"github.com/blues/spacedao/internal/handler"
	"github.com/blues/spacedao/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIdHeader = "X-Request-ID"
	requestIdKey    = "request_id"
)

// requestId 沿用客户端传入的请求 id，没有则生成
func requestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIdKey, id)
		c.Header(RequestIdHeader, id)
		c.Next()
	}
}

// requestLogger 记录每个请求的方法、路径、状态码和耗时
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.With(
			zap.String("request_id", c.GetString(requestIdKey)),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("duration", time.Since(start)),
		).Info("API request %s %s?%s %d", c.Request.Method, path, query, c.Writer.Status())
	}
}

// recovery 捕获 panic，返回 500
func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.With(zap.String("request_id", c.GetString(requestIdKey))).
					Error("Panic recovered on %s: %v", c.Request.URL.Path, err)
				handler.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}

// corsMiddleware 允许任意来源访问
func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIdHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIdHeader},
		AllowCredentials: false,
		MaxAge:           time.Hour,
	})
}
