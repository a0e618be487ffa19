package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blues/spacedao/internal/config"
	"github.com/blues/spacedao/internal/logger"
	"github.com/blues/spacedao/internal/repository"
	"github.com/blues/spacedao/internal/router"
	"github.com/blues/spacedao/internal/scheduler"
	"github.com/blues/spacedao/internal/wallet"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	if err := logger.Init(cfg.Log); err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 初始化存储
	storage, err := newStorage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage: %v", err)
	}
	defer storage.Close()

	if cfg.Storage.Seed {
		if err := seed(storage); err != nil {
			logger.Fatal("Failed to seed storage: %v", err)
		}
	}

	// 初始化钱包余额查询
	provider, closeProvider, err := newProvider(cfg.Chain)
	if err != nil {
		logger.Fatal("Failed to initialize wallet provider: %v", err)
	}
	defer closeProvider()

	// 设置Gin模式
	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(storage, provider, cfg)

	// 启动定时任务
	tasks := scheduler.NewManager(storage, cfg)
	tasks.Start()
	defer tasks.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting on port %s with %s storage", cfg.Server.Port, cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown: %v", err)
	}
}

func newStorage(cfg *config.Config) (repository.Storage, error) {
	if cfg.Storage.Driver != config.StoragePostgres {
		return repository.NewMemStorage(), nil
	}

	db, err := repository.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	return repository.NewPgStorage(db)
}

// seed 只在没有任务时写入示例数据，避免数据库重启后重复写入
func seed(storage repository.Storage) error {
	ctx := context.Background()
	missions, err := storage.ListMissions(ctx)
	if err != nil {
		return err
	}
	if len(missions) > 0 {
		logger.Info("Storage already has %d missions, skipping seed", len(missions))
		return nil
	}
	return repository.Seed(ctx, storage)
}

func newProvider(cfg config.ChainConfig) (wallet.Provider, func(), error) {
	if cfg.Provider != config.ChainProviderEthereum {
		return wallet.NewMockProvider(), func() {}, nil
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	provider, err := wallet.NewEthProvider(ctx, cfg.RpcUrl, timeout)
	if err != nil {
		return nil, nil, err
	}
	return provider, provider.Close, nil
}
