package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/blues/spacedao/internal/logger"
	"github.com/blues/spacedao/internal/wallet"
	"github.com/gin-gonic/gin"
)

// maxBalanceAddresses 单次最多查询的地址数
const maxBalanceAddresses = 50

type WalletHandler struct {
	provider wallet.Provider
	poolSize int
}

func NewWalletHandler(provider wallet.Provider, poolSize int) *WalletHandler {
	return &WalletHandler{
		provider: provider,
		poolSize: poolSize,
	}
}

// GetBalances 批量查询余额，addresses 以逗号分隔
func (h *WalletHandler) GetBalances(c *gin.Context) {
	var addresses []string
	for _, a := range strings.Split(c.Query("addresses"), ",") {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if !wallet.ValidAddress(a) {
			ErrorResponse(c, http.StatusBadRequest, fmt.Sprintf("Invalid address %s", a))
			return
		}
		addresses = append(addresses, a)
	}
	if len(addresses) == 0 {
		ErrorResponse(c, http.StatusBadRequest, "addresses query parameter is required")
		return
	}
	if len(addresses) > maxBalanceAddresses {
		ErrorResponse(c, http.StatusBadRequest, fmt.Sprintf("At most %d addresses per request", maxBalanceAddresses))
		return
	}

	balances, err := wallet.Balances(c.Request.Context(), h.provider, addresses, h.poolSize)
	if err != nil {
		logger.Error("Failed to query balances for %d addresses: %v", len(addresses), err)
		ErrorResponse(c, http.StatusBadGateway, "Failed to query wallet balances")
		return
	}
	c.JSON(http.StatusOK, balances)
}
