package repository

import (
	"context"
	"sync"
	"time"

	"github.com/blues/spacedao/internal/model"
)

// table 单个实体的内存表，order 记录插入顺序
type table[T any] struct {
	rows  map[int64]T
	order []int64
	next  int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T), next: 1}
}

// insert 分配新 id 并保存，id 不会复用
func (t *table[T]) insert(build func(id int64) T) T {
	id := t.next
	t.next++
	row := build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row
}

func (t *table[T]) get(id int64) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) update(id int64, mutate func(*T)) (T, bool) {
	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	mutate(&row)
	t.rows[id] = row
	return row, true
}

func (t *table[T]) remove(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) list(keep func(T) bool) []T {
	result := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(row) {
			result = append(result, row)
		}
	}
	return result
}

// MemStorage 进程内存储，所有写操作持有同一把写锁
type MemStorage struct {
	mu sync.RWMutex

	users     *table[model.User]
	missions  *table[model.Mission]
	proposals *table[model.Proposal]
	nfts      *table[model.NFT]
	stats     model.Stats

	now func() time.Time
}

// NewMemStorage 创建空的内存存储，统计行已存在且为零值
func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:     newTable[model.User](),
		missions:  newTable[model.Mission](),
		proposals: newTable[model.Proposal](),
		nfts:      newTable[model.NFT](),
		stats:     model.Stats{Id: model.StatsId},
		now:       time.Now,
	}
}

func cloneUser(u model.User) *model.User {
	if u.WalletAddress != nil {
		addr := *u.WalletAddress
		u.WalletAddress = &addr
	}
	return &u
}

func cloneStats(s model.Stats) *model.Stats {
	if s.NextLaunch != nil {
		t := *s.NextLaunch
		s.NextLaunch = &t
	}
	return &s
}

// GetUser 根据 id 获取用户
func (s *MemStorage) GetUser(_ context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(u), nil
}

// GetUserByUsername 根据用户名获取用户
func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users.list(nil) {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, ErrNotFound
}

// GetUserByWalletAddress 根据钱包地址获取用户
func (s *MemStorage) GetUserByWalletAddress(_ context.Context, walletAddress string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users.list(nil) {
		if u.WalletAddress != nil && *u.WalletAddress == walletAddress {
			return cloneUser(u), nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser 保存用户，忽略传入的 id
func (s *MemStorage) CreateUser(_ context.Context, user model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.users.insert(func(id int64) model.User {
		u := *cloneUser(user)
		u.Id = id
		return u
	})
	return cloneUser(created), nil
}

// ListMissions 按插入顺序返回全部任务
func (s *MemStorage) ListMissions(_ context.Context) ([]model.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.missions.list(nil), nil
}

// GetMission 获取任务
func (s *MemStorage) GetMission(_ context.Context, id int64) (*model.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.missions.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

// CreateMission 创建任务
func (s *MemStorage) CreateMission(_ context.Context, in model.MissionInput) (*model.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.missions.insert(func(id int64) model.Mission {
		m := model.NewMission(in)
		m.Id = id
		m.CreatedAt = s.now()
		return m
	})
	return &m, nil
}

// UpdateMission 浅合并更新任务
func (s *MemStorage) UpdateMission(_ context.Context, id int64, patch model.MissionPatch) (*model.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.missions.update(id, patch.Apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

// DeleteMission 删除任务
func (s *MemStorage) DeleteMission(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.missions.remove(id) {
		return ErrNotFound
	}
	return nil
}

// ListProposals 按插入顺序返回全部提案
func (s *MemStorage) ListProposals(_ context.Context) ([]model.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.proposals.list(nil), nil
}

// GetProposal 获取提案
func (s *MemStorage) GetProposal(_ context.Context, id int64) (*model.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.proposals.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// CreateProposal 创建提案，票数从 0 开始
func (s *MemStorage) CreateProposal(_ context.Context, in model.ProposalInput) (*model.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.proposals.insert(func(id int64) model.Proposal {
		p := model.NewProposal(in)
		p.Id = id
		p.CreatedAt = s.now()
		return p
	})
	return &p, nil
}

// UpdateProposal 浅合并更新提案
func (s *MemStorage) UpdateProposal(_ context.Context, id int64, patch model.ProposalPatch) (*model.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proposals.update(id, patch.Apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// VoteOnProposal 累加票数，side 为 yes 时加到赞成票，否则加到反对票。
// 重复调用会重复累加，调用方需要保证一次投票只提交一次。
func (s *MemStorage) VoteOnProposal(_ context.Context, id int64, side model.VoteSide, weight float64) (*model.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proposals.update(id, func(p *model.Proposal) {
		if side == model.VoteYes {
			p.YesVotes += weight
		} else {
			p.NoVotes += weight
		}
	})
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// DeleteProposal 删除提案
func (s *MemStorage) DeleteProposal(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.proposals.remove(id) {
		return ErrNotFound
	}
	return nil
}

// ListNFTs 按插入顺序返回份额，可按持有人过滤
func (s *MemStorage) ListNFTs(_ context.Context, ownerAddress string) ([]model.NFT, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ownerAddress == "" {
		return s.nfts.list(nil), nil
	}
	return s.nfts.list(func(n model.NFT) bool {
		return n.OwnerAddress == ownerAddress
	}), nil
}

// GetNFT 获取份额
func (s *MemStorage) GetNFT(_ context.Context, id int64) (*model.NFT, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nfts.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &n, nil
}

// CreateNFT 创建份额，acquisitionDate 由服务端设置
func (s *MemStorage) CreateNFT(_ context.Context, in model.NFTInput) (*model.NFT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.nfts.insert(func(id int64) model.NFT {
		n := model.NewNFT(in)
		n.Id = id
		n.AcquisitionDate = s.now()
		return n
	})
	return &n, nil
}

// UpdateNFT 浅合并更新份额
func (s *MemStorage) UpdateNFT(_ context.Context, id int64, patch model.NFTPatch) (*model.NFT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nfts.update(id, patch.Apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &n, nil
}

// DeleteNFT 删除份额
func (s *MemStorage) DeleteNFT(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.nfts.remove(id) {
		return ErrNotFound
	}
	return nil
}

// GetStats 获取统计
func (s *MemStorage) GetStats(_ context.Context) (*model.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneStats(s.stats), nil
}

// UpdateStats 合并更新统计
func (s *MemStorage) UpdateStats(_ context.Context, patch model.StatsPatch) (*model.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch.Apply(&s.stats)
	return cloneStats(s.stats), nil
}

// Close 内存存储无需释放资源
func (s *MemStorage) Close() error {
	return nil
}

var _ Storage = (*MemStorage)(nil)
