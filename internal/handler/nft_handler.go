package handler

import (
	"net/http"

	"github.com/blues/spacedao/internal/logic"
	"github.com/blues/spacedao/internal/model"
	"github.com/blues/spacedao/internal/repository"
	"github.com/gin-gonic/gin"
)

type NFTHandler struct {
	nftLogic *logic.NFTLogic
}

func NewNFTHandler(storage repository.Storage) *NFTHandler {
	return &NFTHandler{
		nftLogic: logic.NewNFTLogic(storage),
	}
}

// GetNFTs 获取份额列表，支持 owner 过滤
func (h *NFTHandler) GetNFTs(c *gin.Context) {
	nfts, err := h.nftLogic.GetNFTs(c.Request.Context(), c.Query("owner"))
	if err != nil {
		HandleError(c, err, "NFTs")
		return
	}
	c.JSON(http.StatusOK, nfts)
}

func (h *NFTHandler) GetNFT(c *gin.Context) {
	id, ok := parseId(c, "NFT")
	if !ok {
		return
	}

	nft, err := h.nftLogic.GetNFT(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err, "NFT")
		return
	}
	c.JSON(http.StatusOK, nft)
}

func (h *NFTHandler) CreateNFT(c *gin.Context) {
	var in model.NFTInput
	if err := c.ShouldBindJSON(&in); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	nft, err := h.nftLogic.CreateNFT(c.Request.Context(), in)
	if err != nil {
		HandleError(c, err, "NFT")
		return
	}
	c.JSON(http.StatusCreated, nft)
}

func (h *NFTHandler) UpdateNFT(c *gin.Context) {
	id, ok := parseId(c, "NFT")
	if !ok {
		return
	}

	var patch model.NFTPatch
	if !bindPatch(c, &patch) {
		return
	}

	nft, err := h.nftLogic.UpdateNFT(c.Request.Context(), id, patch)
	if err != nil {
		HandleError(c, err, "NFT")
		return
	}
	c.JSON(http.StatusOK, nft)
}

func (h *NFTHandler) DeleteNFT(c *gin.Context) {
	id, ok := parseId(c, "NFT")
	if !ok {
		return
	}

	if err := h.nftLogic.DeleteNFT(c.Request.Context(), id); err != nil {
		HandleError(c, err, "NFT")
		return
	}
	c.Status(http.StatusNoContent)
}
