package handler

import (
	"net/http"

	"github.com/blues/spacedao/internal/logic"
	"github.com/blues/spacedao/internal/model"
	"github.com/blues/spacedao/internal/repository"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userLogic *logic.UserLogic
}

func NewUserHandler(storage repository.Storage) *UserHandler {
	return &UserHandler{
		userLogic: logic.NewUserLogic(storage),
	}
}

// LoginRequest 登录请求体
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 注册用户
func (h *UserHandler) Register(c *gin.Context) {
	var in model.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userLogic.Register(c.Request.Context(), in)
	if err != nil {
		HandleError(c, err, "User")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser 获取用户
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseId(c, "user")
	if !ok {
		return
	}

	user, err := h.userLogic.GetUser(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserByWallet 根据钱包地址查询用户
func (h *UserHandler) GetUserByWallet(c *gin.Context) {
	wallet := c.Query("wallet")
	if wallet == "" {
		ErrorResponse(c, http.StatusBadRequest, "wallet query parameter is required")
		return
	}

	user, err := h.userLogic.GetUserByWalletAddress(c.Request.Context(), wallet)
	if err != nil {
		HandleError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Login 校验用户名密码
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userLogic.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		HandleError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, user)
}
