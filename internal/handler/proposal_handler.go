package handler

import (
	"net/http"

	"github.com/blues/spacedao/internal/logic"
	"github.com/blues/spacedao/internal/model"
	"github.com/blues/spacedao/internal/repository"
	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	proposalLogic *logic.ProposalLogic
}

func NewProposalHandler(storage repository.Storage) *ProposalHandler {
	return &ProposalHandler{
		proposalLogic: logic.NewProposalLogic(storage),
	}
}

// VoteRequest 投票请求体，amount 可以是数字或数字字符串
type VoteRequest struct {
	Vote   model.VoteSide `json:"vote"`
	Amount interface{}    `json:"amount"`
}

// GetProposals 获取提案列表
func (h *ProposalHandler) GetProposals(c *gin.Context) {
	proposals, err := h.proposalLogic.GetProposals(c.Request.Context())
	if err != nil {
		HandleError(c, err, "Proposals")
		return
	}
	c.JSON(http.StatusOK, proposals)
}

// GetProposal 获取提案详情
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	id, ok := parseId(c, "proposal")
	if !ok {
		return
	}

	proposal, err := h.proposalLogic.GetProposal(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err, "Proposal")
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// CreateProposal 创建提案
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var in model.ProposalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	proposal, err := h.proposalLogic.CreateProposal(c.Request.Context(), in)
	if err != nil {
		HandleError(c, err, "Proposal")
		return
	}
	c.JSON(http.StatusCreated, proposal)
}

// UpdateProposal 部分更新提案
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	id, ok := parseId(c, "proposal")
	if !ok {
		return
	}

	var patch model.ProposalPatch
	if !bindPatch(c, &patch) {
		return
	}

	proposal, err := h.proposalLogic.UpdateProposal(c.Request.Context(), id, patch)
	if err != nil {
		HandleError(c, err, "Proposal")
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// DeleteProposal 删除提案
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	id, ok := parseId(c, "proposal")
	if !ok {
		return
	}

	if err := h.proposalLogic.DeleteProposal(c.Request.Context(), id); err != nil {
		HandleError(c, err, "Proposal")
		return
	}
	c.Status(http.StatusNoContent)
}

// Vote 对提案投票，返回更新后的提案
func (h *ProposalHandler) Vote(c *gin.Context) {
	id, ok := parseId(c, "proposal")
	if !ok {
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid vote or amount")
		return
	}

	amount, err := logic.ParseVoteAmount(req.Amount)
	if err != nil {
		HandleError(c, err, "Proposal")
		return
	}

	proposal, err := h.proposalLogic.Vote(c.Request.Context(), id, req.Vote, amount)
	if err != nil {
		HandleError(c, err, "Proposal")
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// GetProposalTally 获取计票结果
func (h *ProposalHandler) GetProposalTally(c *gin.Context) {
	id, ok := parseId(c, "proposal")
	if !ok {
		return
	}

	tally, err := h.proposalLogic.GetProposalTally(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err, "Proposal")
		return
	}
	c.JSON(http.StatusOK, tally)
}
