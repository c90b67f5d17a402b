package pool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/Autonomanetwork/arcadify-test/pkg/cpamm"
)

// ErrTokenMismatch indicates the configured pair contract does not hold the
// requested tokens.
var ErrTokenMismatch = errors.New("pair does not match requested tokens")

// Pair contract storage layout (UniswapV2Pair):
//
//	slot 6: address token0
//	slot 7: address token1
//	slot 8: uint112 reserve0 | uint112 reserve1 | uint32 blockTimestampLast
const (
	slotToken0   = 6
	slotToken1   = 7
	slotReserves = 8
)

// ChainProvider reads pair reserves directly from contract storage at the
// latest block. Token IDs must be hex contract addresses; the pair contract
// per token pair comes from the pool specs.
type ChainProvider struct {
	logger *slog.Logger
	client *ethclient.Client
	pairs  map[pairKey]pairInfo
}

type pairKey struct {
	a, b string
}

type pairInfo struct {
	address common.Address
	feeBps  int64
}

// canonical orders a pair key so lookups are direction-agnostic.
func canonical(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// NewChainProvider builds a provider over the specs that carry a pair
// contract address.
func NewChainProvider(logger *slog.Logger, client *ethclient.Client, specs []Spec) *ChainProvider {
	pairs := make(map[pairKey]pairInfo)
	for _, s := range specs {
		if s.Address == "" || !common.IsHexAddress(s.Address) {
			continue
		}
		pairs[canonical(s.Base, s.Quote)] = pairInfo{
			address: common.HexToAddress(s.Address),
			feeBps:  s.FeeBps,
		}
	}
	return &ChainProvider{logger: logger, client: client, pairs: pairs}
}

// Reserves fetches and orients the pair's reserves at the latest block.
func (p *ChainProvider) Reserves(ctx context.Context, tokenInID, tokenOutID string) (cpamm.Reserves, error) {
	info, ok := p.pairs[canonical(tokenInID, tokenOutID)]
	if !ok {
		return cpamm.Reserves{}, ErrPoolUnavailable
	}
	if !common.IsHexAddress(tokenInID) || !common.IsHexAddress(tokenOutID) {
		return cpamm.Reserves{}, ErrPoolUnavailable
	}
	src := common.HexToAddress(tokenInID)
	dst := common.HexToAddress(tokenOutID)

	bn, err := p.client.BlockNumber(ctx)
	if err != nil {
		return cpamm.Reserves{}, fmt.Errorf("block number: %w", err)
	}
	blockNum := new(big.Int).SetUint64(bn)

	token0, token1, err := p.loadTokens(ctx, info.address, blockNum)
	if err != nil {
		return cpamm.Reserves{}, err
	}

	br, err := p.readSlot(ctx, info.address, blockNum, slotReserves)
	if err != nil {
		return cpamm.Reserves{}, err
	}
	reserve0, reserve1 := unpackReserves(br)

	var reserveIn, reserveOut *big.Int
	switch {
	case src == token0 && dst == token1:
		reserveIn, reserveOut = reserve0, reserve1
	case src == token1 && dst == token0:
		reserveIn, reserveOut = reserve1, reserve0
	default:
		return cpamm.Reserves{}, ErrTokenMismatch
	}

	if reserveIn.Sign() == 0 || reserveOut.Sign() == 0 {
		return cpamm.Reserves{}, ErrPoolUnavailable
	}

	p.logger.Debug("reserves fetched", "pair", info.address.Hex(), "block", blockNum.String(), "in", reserveIn.String(), "out", reserveOut.String())
	return cpamm.Reserves{In: reserveIn, Out: reserveOut, FeeBps: info.feeBps}, nil
}

func (p *ChainProvider) readSlot(ctx context.Context, pair common.Address, blockNum *big.Int, slot uint64) ([]byte, error) {
	key := common.BigToHash(new(big.Int).SetUint64(slot))
	b, err := p.client.StorageAt(ctx, pair, key, blockNum)
	if err != nil {
		return nil, fmt.Errorf("storageAt slot %d (pair %s, block %s): %w",
			slot, pair.Hex(), blockNum.String(), err)
	}
	return b, nil
}

func (p *ChainProvider) loadTokens(ctx context.Context, pair common.Address, blockNum *big.Int) (common.Address, common.Address, error) {
	b0, err := p.readSlot(ctx, pair, blockNum, slotToken0)
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	b1, err := p.readSlot(ctx, pair, blockNum, slotToken1)
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	return common.BytesToAddress(b0), common.BytesToAddress(b1), nil
}

// unpackReserves splits two uint112 reserves out of the packed 32-byte
// storage word. The word layout, from the low bits up, is reserve0,
// reserve1, then the 32-bit timestamp.
func unpackReserves(b []byte) (reserve0, reserve1 *big.Int) {
	v := new(big.Int).SetBytes(b)
	one := big.NewInt(1)
	mask112 := new(big.Int).Sub(new(big.Int).Lsh(one, 112), one)

	reserve0 = new(big.Int).And(v, mask112)
	tmp := new(big.Int).Rsh(v, 112)
	reserve1 = new(big.Int).And(tmp, mask112)
	return
}
