package router

import (
	"net/http"

	"github.com/blues/spacedao/internal/config"
	"github.com/blues/spacedao/internal/handler"
	"github.com/blues/spacedao/internal/repository"
	"github.com/blues/spacedao/internal/wallet"
	"github.com/gin-gonic/gin"
)

func Setup(storage repository.Storage, provider wallet.Provider, cfg *config.Config) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(requestId())
	r.Use(requestLogger())
	r.Use(recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "spacedao",
			"storage": cfg.Storage.Driver,
		})
	})

	api := r.Group("/api")
	{
		statsHandler := handler.NewStatsHandler(storage)
		api.GET("/stats", statsHandler.GetStats)
		api.PATCH("/stats", statsHandler.UpdateStats)

		missionHandler := handler.NewMissionHandler(storage)
		missions := api.Group("/missions")
		{
			missions.GET("", missionHandler.GetMissions)
			missions.POST("", missionHandler.CreateMission)
			missions.GET("/:id", missionHandler.GetMission)
			missions.PATCH("/:id", missionHandler.UpdateMission)
			missions.DELETE("/:id", missionHandler.DeleteMission)
			missions.GET("/:id/progress", missionHandler.GetMissionProgress)
		}

		proposalHandler := handler.NewProposalHandler(storage)
		proposals := api.Group("/proposals")
		{
			proposals.GET("", proposalHandler.GetProposals)
			proposals.POST("", proposalHandler.CreateProposal)
			proposals.GET("/:id", proposalHandler.GetProposal)
			proposals.PATCH("/:id", proposalHandler.UpdateProposal)
			proposals.DELETE("/:id", proposalHandler.DeleteProposal)
			proposals.POST("/:id/vote", proposalHandler.Vote)
			proposals.GET("/:id/tally", proposalHandler.GetProposalTally)
		}

		nftHandler := handler.NewNFTHandler(storage)
		nfts := api.Group("/nfts")
		{
			nfts.GET("", nftHandler.GetNFTs)
			nfts.POST("", nftHandler.CreateNFT)
			nfts.GET("/:id", nftHandler.GetNFT)
			nfts.PATCH("/:id", nftHandler.UpdateNFT)
			nfts.DELETE("/:id", nftHandler.DeleteNFT)
		}

		userHandler := handler.NewUserHandler(storage)
		users := api.Group("/users")
		{
			users.POST("", userHandler.Register)
			users.GET("", userHandler.GetUserByWallet)
			users.POST("/login", userHandler.Login)
			users.GET("/:id", userHandler.GetUser)
		}

		walletHandler := handler.NewWalletHandler(provider, cfg.Chain.PoolSize)
		api.GET("/wallet/balances", walletHandler.GetBalances)
	}

	return r
}
