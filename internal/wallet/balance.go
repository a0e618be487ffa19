package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/panjf2000/ants/v2"
)

var weiPerEther = new(big.Float).SetInt(big.NewInt(1e18))

// Balance 单个地址的余额
type Balance struct {
	Address string `json:"address"`
	Short   string `json:"short"`
	Wei     string `json:"wei"`
	Balance string `json:"balance"`
}

// Balances 并发查询多个地址余额，结果顺序与 addresses 一致。
// 任一地址查询失败时返回第一个错误
func Balances(ctx context.Context, provider Provider, addresses []string, size int) ([]Balance, error) {
	if len(addresses) == 0 {
		return []Balance{}, nil
	}
	if size <= 0 || size > len(addresses) {
		size = len(addresses)
	}

	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool of size %d: %w", size, err)
	}
	defer pool.Release()

	var (
		wg      sync.WaitGroup
		results = make([]Balance, len(addresses))
		errs    = make([]error, len(addresses))
	)
	for i, address := range addresses {
		i, address := i, address
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			wei, err := provider.Balance(ctx, address)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = Balance{
				Address: address,
				Short:   FormatAddress(address),
				Wei:     wei.String(),
				Balance: FormatEther(wei),
			}
		})
		if err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("failed to submit task to pool: %w", err)
		}
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}

// FormatEther wei 转换为保留 4 位小数的 ETH 字符串
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0000"
	}
	f := new(big.Float).SetPrec(256).SetInt(wei)
	return f.Quo(f, weiPerEther).Text('f', 4)
}

// ValidAddress 校验 0x 开头的 20 字节十六进制地址
func ValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// FormatAddress 缩写地址，例如 0x1234...abcd
func FormatAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
