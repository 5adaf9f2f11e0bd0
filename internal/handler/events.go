package handler

import (
	"context"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"v3pricing/internal/model"
	"v3pricing/internal/pricing"
)

func (h *Handler) onInitialize(ctx context.Context, tx *txn, pool model.Pool, ev model.InitializeEventData) (Outcome, error) {
	token0, token1, err := tokenPair(ctx, tx, pool)
	if err != nil {
		return Outcome{}, err
	}

	pool.SqrtPrice = new(uint256.Int).Set(ev.SqrtPriceX96)
	pool.Tick = ev.Tick
	pool.Token0Price, pool.Token1Price = pricing.SqrtPriceX96ToTokenPrices(pool.SqrtPrice, token0.Decimals, token1.Decimals)
	tx.putPool(pool)

	if _, _, _, err := h.refreshPrices(ctx, tx, pool); err != nil {
		return Outcome{}, err
	}
	return Outcome{Status: StatusApplied}, nil
}

func (h *Handler) onSwap(ctx context.Context, tx *txn, event *model.TypedEvent, pool model.Pool, ev model.SwapEventData) (Outcome, error) {
	token0, token1, err := tokenPair(ctx, tx, pool)
	if err != nil {
		return Outcome{}, err
	}

	amount0 := pricing.ConvertTokenToDecimal(ev.Amount0, token0.Decimals)
	amount1 := pricing.ConvertTokenToDecimal(ev.Amount1, token1.Decimals)

	pool.TotalValueLockedToken0 = pool.TotalValueLockedToken0.Add(amount0)
	pool.TotalValueLockedToken1 = pool.TotalValueLockedToken1.Add(amount1)
	pool.Liquidity = new(uint256.Int).Set(ev.Liquidity)
	pool.SqrtPrice = new(uint256.Int).Set(ev.SqrtPriceX96)
	pool.Tick = ev.Tick
	pool.Token0Price, pool.Token1Price = pricing.SqrtPriceX96ToTokenPrices(pool.SqrtPrice, token0.Decimals, token1.Decimals)
	tx.putPool(pool)

	bundle, token0, token1, err := h.refreshPrices(ctx, tx, pool)
	if err != nil {
		return Outcome{}, err
	}

	abs0, abs1 := amount0.Abs(), amount1.Abs()
	swap := &model.PricedSwap{
		ChainID:             event.ChainID,
		BlockNumber:         event.BlockNumber,
		TxHash:              event.TxHash,
		LogIndex:            event.LogIndex,
		Timestamp:           event.Timestamp,
		Pool:                pool.ID,
		Token0:              token0.ID,
		Token1:              token1.ID,
		Amount0:             amount0,
		Amount1:             amount1,
		AmountUSDTracked:    pricing.TrackedAmountUSD(abs0, token0, abs1, token1, bundle, h.chain.WhitelistTokens),
		AmountUSDUntracked:  pricing.UntrackedAmountUSD(abs0, token0, abs1, token1, bundle),
		NativePriceUSD:      bundle.EthPriceUSD,
		Token0DerivedNative: token0.DerivedNative,
		Token1DerivedNative: token1.DerivedNative,
		Token0Price:         pool.Token0Price,
		Token1Price:         pool.Token1Price,
	}
	return Outcome{Status: StatusApplied, Swap: swap}, nil
}

// inRange reports whether a position spanning [tickLower, tickUpper) holds
// active liquidity at the pool's current tick.
func inRange(pool model.Pool, tickLower, tickUpper int32) bool {
	return tickLower <= pool.Tick && pool.Tick < tickUpper
}

func (h *Handler) onMint(ctx context.Context, tx *txn, pool model.Pool, ev model.MintEventData) (Outcome, error) {
	token0, token1, err := tokenPair(ctx, tx, pool)
	if err != nil {
		return Outcome{}, err
	}
	pool.TotalValueLockedToken0 = pool.TotalValueLockedToken0.Add(pricing.ConvertTokenToDecimal(ev.Amount0, token0.Decimals))
	pool.TotalValueLockedToken1 = pool.TotalValueLockedToken1.Add(pricing.ConvertTokenToDecimal(ev.Amount1, token1.Decimals))
	if ev.Amount != nil && inRange(pool, ev.TickLower, ev.TickUpper) {
		pool.Liquidity = new(uint256.Int).Add(pool.Liquidity, ev.Amount)
	}
	tx.putPool(pool)
	return Outcome{Status: StatusApplied}, nil
}

// onBurn only moves active liquidity. Burned principal stays in the pool as
// owed tokens until the position is collected.
func (h *Handler) onBurn(_ context.Context, tx *txn, pool model.Pool, ev model.BurnEventData) (Outcome, error) {
	if ev.Amount != nil && inRange(pool, ev.TickLower, ev.TickUpper) {
		pool.Liquidity = h.subLiquidity(pool, ev.Amount)
	}
	tx.putPool(pool)
	return Outcome{Status: StatusApplied}, nil
}

func (h *Handler) subLiquidity(pool model.Pool, amount *uint256.Int) *uint256.Int {
	out, underflow := new(uint256.Int).SubOverflow(pool.Liquidity, amount)
	if underflow {
		// Only possible when replay started after the matching mint.
		h.logger.Warn("burn exceeds pool liquidity",
			zap.String("pool", pool.ID),
			zap.String("liquidity", model.FormatUint256(pool.Liquidity)),
			zap.String("amount", model.FormatUint256(amount)),
		)
		return new(uint256.Int)
	}
	return out
}

func (h *Handler) onCollect(ctx context.Context, tx *txn, pool model.Pool, ev model.CollectEventData) (Outcome, error) {
	token0, token1, err := tokenPair(ctx, tx, pool)
	if err != nil {
		return Outcome{}, err
	}
	pool.TotalValueLockedToken0 = pool.TotalValueLockedToken0.Sub(pricing.ConvertTokenToDecimal(ev.Amount0, token0.Decimals))
	pool.TotalValueLockedToken1 = pool.TotalValueLockedToken1.Sub(pricing.ConvertTokenToDecimal(ev.Amount1, token1.Decimals))
	tx.putPool(pool)
	return Outcome{Status: StatusApplied}, nil
}
