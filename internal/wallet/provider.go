package wallet

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Provider 查询地址余额，单位 wei
type Provider interface {
	Balance(ctx context.Context, address string) (*big.Int, error)
}

// MockProvider 演示用的余额，按地址哈希生成，同一地址结果固定
type MockProvider struct {
	mu       sync.RWMutex
	balances map[string]*big.Int
}

// NewMockProvider 创建演示余额查询
func NewMockProvider() *MockProvider {
	return &MockProvider{balances: make(map[string]*big.Int)}
}

// SetBalance 指定某个地址的余额
func (p *MockProvider) SetBalance(address string, wei *big.Int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.balances[strings.ToLower(address)] = new(big.Int).Set(wei)
}

// Balance 返回指定余额，未指定时为 0 到 10 ETH 之间的固定值
func (p *MockProvider) Balance(ctx context.Context, address string) (*big.Int, error) {
	if !ValidAddress(address) {
		return nil, fmt.Errorf("invalid address %q", address)
	}

	key := strings.ToLower(address)
	p.mu.RLock()
	b, ok := p.balances[key]
	p.mu.RUnlock()
	if ok {
		return new(big.Int).Set(b), nil
	}

	// 以 0.0001 ETH 为步长
	h := crypto.Keccak256([]byte(key))
	steps := binary.BigEndian.Uint64(h[:8]) % 100000
	return new(big.Int).Mul(new(big.Int).SetUint64(steps), big.NewInt(1e14)), nil
}

// EthProvider 通过以太坊 RPC 节点查询余额
type EthProvider struct {
	client  *ethclient.Client
	timeout time.Duration
}

// NewEthProvider 连接 RPC 节点
func NewEthProvider(ctx context.Context, rpcUrl string, timeout time.Duration) (*EthProvider, error) {
	client, err := ethclient.DialContext(ctx, rpcUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ethereum client: %w", err)
	}
	return &EthProvider{client: client, timeout: timeout}, nil
}

// Balance 查询最新区块上的余额
func (p *EthProvider) Balance(ctx context.Context, address string) (*big.Int, error) {
	if !ValidAddress(address) {
		return nil, fmt.Errorf("invalid address %q", address)
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	balance, err := p.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance of %s: %w", address, err)
	}
	return balance, nil
}

// Close 关闭 RPC 连接
func (p *EthProvider) Close() {
	p.client.Close()
}
