package handler

import (
	"net/http"

	"github.com/blues/spacedao/internal/logic"
	"github.com/blues/spacedao/internal/model"
	"github.com/blues/spacedao/internal/repository"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsLogic *logic.StatsLogic
}

func NewStatsHandler(storage repository.Storage) *StatsHandler {
	return &StatsHandler{
		statsLogic: logic.NewStatsLogic(storage),
	}
}

// GetStats 获取首页统计
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsLogic.GetStats(c.Request.Context())
	if err != nil {
		HandleError(c, err, "Stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UpdateStats 合并更新首页统计
func (h *StatsHandler) UpdateStats(c *gin.Context) {
	var patch model.StatsPatch
	if !bindPatch(c, &patch) {
		return
	}

	stats, err := h.statsLogic.UpdateStats(c.Request.Context(), patch)
	if err != nil {
		HandleError(c, err, "Stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
