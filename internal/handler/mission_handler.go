package handler

import (
	"net/http"

	"github.com/blues/spacedao/internal/logic"
	"github.com/blues/spacedao/internal/model"
	"github.com/blues/spacedao/internal/repository"
	"github.com/gin-gonic/gin"
)

type MissionHandler struct {
	missionLogic *logic.MissionLogic
}

func NewMissionHandler(storage repository.Storage) *MissionHandler {
	return &MissionHandler{
		missionLogic: logic.NewMissionLogic(storage),
	}
}

// GetMissions 获取任务列表
func (h *MissionHandler) GetMissions(c *gin.Context) {
	missions, err := h.missionLogic.GetMissions(c.Request.Context())
	if err != nil {
		HandleError(c, err, "Missions")
		return
	}
	c.JSON(http.StatusOK, missions)
}

// GetMission 获取任务详情
func (h *MissionHandler) GetMission(c *gin.Context) {
	id, ok := parseId(c, "mission")
	if !ok {
		return
	}

	mission, err := h.missionLogic.GetMission(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err, "Mission")
		return
	}
	c.JSON(http.StatusOK, mission)
}

// CreateMission 创建任务
func (h *MissionHandler) CreateMission(c *gin.Context) {
	var in model.MissionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	mission, err := h.missionLogic.CreateMission(c.Request.Context(), in)
	if err != nil {
		HandleError(c, err, "Mission")
		return
	}
	c.JSON(http.StatusCreated, mission)
}

// UpdateMission 部分更新任务
func (h *MissionHandler) UpdateMission(c *gin.Context) {
	id, ok := parseId(c, "mission")
	if !ok {
		return
	}

	var patch model.MissionPatch
	if !bindPatch(c, &patch) {
		return
	}

	mission, err := h.missionLogic.UpdateMission(c.Request.Context(), id, patch)
	if err != nil {
		HandleError(c, err, "Mission")
		return
	}
	c.JSON(http.StatusOK, mission)
}

// DeleteMission 删除任务
func (h *MissionHandler) DeleteMission(c *gin.Context) {
	id, ok := parseId(c, "mission")
	if !ok {
		return
	}

	if err := h.missionLogic.DeleteMission(c.Request.Context(), id); err != nil {
		HandleError(c, err, "Mission")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMissionProgress 获取任务募资进度
func (h *MissionHandler) GetMissionProgress(c *gin.Context) {
	id, ok := parseId(c, "mission")
	if !ok {
		return
	}

	progress, err := h.missionLogic.GetMissionProgress(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err, "Mission")
		return
	}
	c.JSON(http.StatusOK, progress)
}
