package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/blues/spacedao/internal/config"
	"github.com/blues/spacedao/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/clause"
)

// PgStorage 基于 gorm 的 PostgreSQL 存储
type PgStorage struct {
	db *gorm.DB
}

// Open 连接数据库
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent), // 禁用 GORM 的默认日志输出
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// NewPgStorage 自动迁移并确保统计行存在
func NewPgStorage(db *gorm.DB) (*PgStorage, error) {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Mission{},
		&model.Proposal{},
		&model.NFT{},
		&model.Stats{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	stats := model.Stats{Id: model.StatsId}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to initialize stats: %w", err)
	}

	return &PgStorage{db: db}, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// first 按主键读取一行
func first[T any](ctx context.Context, db *gorm.DB, id int64) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

// updates 按主键更新后重新读取
func updates[T any](ctx context.Context, db *gorm.DB, id int64, fields map[string]interface{}) (*T, error) {
	if len(fields) > 0 {
		res := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return first[T](ctx, db, id)
}

// remove 按主键删除
func remove[T any](ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PgStorage) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return first[model.User](ctx, s.db, id)
}

func (s *PgStorage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *PgStorage) GetUserByWalletAddress(ctx context.Context, walletAddress string) (*model.User, error) {
	var u model.User
	if err := s.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *PgStorage) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	user.Id = 0
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *PgStorage) ListMissions(ctx context.Context) ([]model.Mission, error) {
	var missions []model.Mission
	if err := s.db.WithContext(ctx).Order("id").Find(&missions).Error; err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return missions, nil
}

func (s *PgStorage) GetMission(ctx context.Context, id int64) (*model.Mission, error) {
	return first[model.Mission](ctx, s.db, id)
}

func (s *PgStorage) CreateMission(ctx context.Context, in model.MissionInput) (*model.Mission, error) {
	m := model.NewMission(in)
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}
	return &m, nil
}

func (s *PgStorage) UpdateMission(ctx context.Context, id int64, patch model.MissionPatch) (*model.Mission, error) {
	return updates[model.Mission](ctx, s.db, id, patch.Updates())
}

func (s *PgStorage) DeleteMission(ctx context.Context, id int64) error {
	return remove[model.Mission](ctx, s.db, id)
}

func (s *PgStorage) ListProposals(ctx context.Context) ([]model.Proposal, error) {
	var proposals []model.Proposal
	if err := s.db.WithContext(ctx).Order("id").Find(&proposals).Error; err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return proposals, nil
}

func (s *PgStorage) GetProposal(ctx context.Context, id int64) (*model.Proposal, error) {
	return first[model.Proposal](ctx, s.db, id)
}

func (s *PgStorage) CreateProposal(ctx context.Context, in model.ProposalInput) (*model.Proposal, error) {
	p := model.NewProposal(in)
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}
	return &p, nil
}

func (s *PgStorage) UpdateProposal(ctx context.Context, id int64, patch model.ProposalPatch) (*model.Proposal, error) {
	return updates[model.Proposal](ctx, s.db, id, patch.Updates())
}

// VoteOnProposal 单条 UPDATE 原子累加票数
func (s *PgStorage) VoteOnProposal(ctx context.Context, id int64, side model.VoteSide, weight float64) (*model.Proposal, error) {
	column := "no_votes"
	if side == model.VoteYes {
		column = "yes_votes"
	}

	res := s.db.WithContext(ctx).Model(&model.Proposal{}).
		Where("id = ?", id).
		Update(column, gorm.Expr(column+" + ?", weight))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to vote on proposal %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return first[model.Proposal](ctx, s.db, id)
}

func (s *PgStorage) DeleteProposal(ctx context.Context, id int64) error {
	return remove[model.Proposal](ctx, s.db, id)
}

func (s *PgStorage) ListNFTs(ctx context.Context, ownerAddress string) ([]model.NFT, error) {
	var nfts []model.NFT
	q := s.db.WithContext(ctx).Order("id")
	if ownerAddress != "" {
		q = q.Where("owner_address = ?", ownerAddress)
	}
	if err := q.Find(&nfts).Error; err != nil {
		return nil, fmt.Errorf("failed to list nfts: %w", err)
	}
	return nfts, nil
}

func (s *PgStorage) GetNFT(ctx context.Context, id int64) (*model.NFT, error) {
	return first[model.NFT](ctx, s.db, id)
}

func (s *PgStorage) CreateNFT(ctx context.Context, in model.NFTInput) (*model.NFT, error) {
	n := model.NewNFT(in)
	if err := s.db.WithContext(ctx).Create(&n).Error; err != nil {
		return nil, fmt.Errorf("failed to create nft: %w", err)
	}
	return &n, nil
}

func (s *PgStorage) UpdateNFT(ctx context.Context, id int64, patch model.NFTPatch) (*model.NFT, error) {
	return updates[model.NFT](ctx, s.db, id, patch.Updates())
}

func (s *PgStorage) DeleteNFT(ctx context.Context, id int64) error {
	return remove[model.NFT](ctx, s.db, id)
}

func (s *PgStorage) GetStats(ctx context.Context) (*model.Stats, error) {
	return first[model.Stats](ctx, s.db, model.StatsId)
}

func (s *PgStorage) UpdateStats(ctx context.Context, patch model.StatsPatch) (*model.Stats, error) {
	return updates[model.Stats](ctx, s.db, model.StatsId, patch.Updates())
}

// Close 关闭底层连接池
func (s *PgStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ Storage = (*PgStorage)(nil)
