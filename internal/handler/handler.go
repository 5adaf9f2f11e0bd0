package handler

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"v3pricing/internal/config"
	"v3pricing/internal/model"
	"v3pricing/internal/pricing"
	"v3pricing/internal/storage"
)

// DefaultCursorName is the cursor key used when Config.CursorName is empty.
const DefaultCursorName = "replay"

// ErrUnknownPool is returned when an event references a pool that is not in
// the store and cannot be read from chain.
var ErrUnknownPool = errors.New("unknown pool")

// ChainReader reads pool and token state from chain. *dex.MetaReader satisfies it.
type ChainReader interface {
	PoolMeta(ctx context.Context, pool string) (model.PoolMeta, error)
	TokenMeta(ctx context.Context, token string) (model.TokenMeta, error)
	PoolBalances(ctx context.Context, pool, token0, token1 string, blockNumber uint64) (*big.Int, *big.Int, error)
}

// Config controls event handling.
type Config struct {
	Chain      config.ChainConfig
	SeedTVL    bool
	CursorName string
}

// Status describes what Apply did with an event.
type Status int

const (
	StatusApplied Status = iota
	// StatusStale means the event is at or before the store cursor.
	StatusStale
	// StatusSkipped means the pool is excluded by configuration.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusStale:
		return "stale"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome is the result of applying one event. Swap is set for applied swaps.
type Outcome struct {
	Status Status
	Swap   *model.PricedSwap
}

// Handler applies decoded pool events to an entity store in log order.
// It is not safe for concurrent use.
type Handler struct {
	store      storage.EntityStore
	reader     ChainReader
	chain      config.ChainConfig
	params     pricing.ResolverParams
	seedTVL    bool
	cursorName string
	logger     *zap.Logger

	// skipped remembers pools rejected at discovery so they are not read again.
	skipped map[string]struct{}
	cursor  *model.Cursor
}

// New builds a Handler. reader may be nil when every pool is already in the store.
func New(store storage.EntityStore, reader ChainReader, cfg Config, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	cursorName := cfg.CursorName
	if cursorName == "" {
		cursorName = DefaultCursorName
	}
	return &Handler{
		store:      store,
		reader:     reader,
		chain:      cfg.Chain,
		params:     cfg.Chain.ResolverParams(),
		seedTVL:    cfg.SeedTVL,
		cursorName: cursorName,
		logger:     logger,
		skipped:    make(map[string]struct{}),
	}
}

// Apply applies one decoded event and advances the store cursor. Entity
// writes and the cursor are committed together, so a failed event leaves the
// store untouched and can be replayed.
func (h *Handler) Apply(ctx context.Context, event *model.TypedEvent) (Outcome, error) {
	if event == nil {
		return Outcome{}, fmt.Errorf("event is nil")
	}
	position := model.Cursor{BlockNumber: event.BlockNumber, LogIndex: event.LogIndex}

	last, ok, err := h.lastCursor(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if ok && !position.After(last) {
		return Outcome{Status: StatusStale}, nil
	}

	tx := newTxn(h.store)
	outcome, err := h.apply(ctx, tx, event)
	if err != nil {
		return Outcome{}, err
	}

	changes := tx.changes()
	changes.CursorName = h.cursorName
	changes.Cursor = &position
	if err := h.store.Commit(ctx, changes); err != nil {
		return Outcome{}, fmt.Errorf("commit block %d log %d: %w", position.BlockNumber, position.LogIndex, err)
	}
	h.cursor = &position
	return outcome, nil
}

func (h *Handler) lastCursor(ctx context.Context) (model.Cursor, bool, error) {
	if h.cursor != nil {
		return *h.cursor, true, nil
	}
	cursor, ok, err := h.store.Cursor(ctx, h.cursorName)
	if err != nil {
		return model.Cursor{}, false, fmt.Errorf("load cursor: %w", err)
	}
	if ok {
		h.cursor = &cursor
	}
	return cursor, ok, nil
}

func (h *Handler) apply(ctx context.Context, tx *txn, event *model.TypedEvent) (Outcome, error) {
	poolID := event.Address
	if h.chain.PoolsToSkip.Contains(poolID) {
		return Outcome{Status: StatusSkipped}, nil
	}
	if _, ok := h.skipped[poolID]; ok {
		return Outcome{Status: StatusSkipped}, nil
	}

	pool, ok, err := tx.Pool(ctx, poolID)
	if err != nil {
		return Outcome{}, fmt.Errorf("load pool %s: %w", poolID, err)
	}
	if !ok {
		pool, ok, err = h.discoverPool(ctx, tx, poolID, event.BlockNumber)
		if err != nil {
			return Outcome{}, err
		}
		if !ok {
			h.skipped[poolID] = struct{}{}
			return Outcome{Status: StatusSkipped}, nil
		}
	}

	switch decoded := event.Decoded.(type) {
	case model.InitializeEventData:
		return h.onInitialize(ctx, tx, pool, decoded)
	case model.SwapEventData:
		return h.onSwap(ctx, tx, event, pool, decoded)
	case model.MintEventData:
		return h.onMint(ctx, tx, pool, decoded)
	case model.BurnEventData:
		return h.onBurn(ctx, tx, pool, decoded)
	case model.CollectEventData:
		return h.onCollect(ctx, tx, pool, decoded)
	default:
		return Outcome{}, fmt.Errorf("unsupported event payload %T", event.Decoded)
	}
}

// discoverPool creates the pool and any missing tokens. It reports false when
// the pool belongs to a different factory.
func (h *Handler) discoverPool(ctx context.Context, tx *txn, poolID string, blockNumber uint64) (model.Pool, bool, error) {
	if h.reader == nil {
		return model.Pool{}, false, fmt.Errorf("%w: %s", ErrUnknownPool, poolID)
	}

	meta, err := h.reader.PoolMeta(ctx, poolID)
	if err != nil {
		return model.Pool{}, false, fmt.Errorf("%w %s: %w", ErrUnknownPool, poolID, err)
	}
	if h.chain.FactoryAddress != "" && meta.Factory != "" && meta.Factory != h.chain.FactoryAddress {
		h.logger.Debug("pool from foreign factory skipped",
			zap.String("pool", poolID),
			zap.String("factory", meta.Factory),
		)
		return model.Pool{}, false, nil
	}

	token0, err := h.loadOrCreateToken(ctx, tx, meta.Token0)
	if err != nil {
		return model.Pool{}, false, err
	}
	token1, err := h.loadOrCreateToken(ctx, tx, meta.Token1)
	if err != nil {
		return model.Pool{}, false, err
	}

	if h.chain.WhitelistTokens.Contains(token0.ID) {
		token1.AddWhitelistPool(poolID)
	}
	if h.chain.WhitelistTokens.Contains(token1.ID) {
		token0.AddWhitelistPool(poolID)
	}

	pool := model.NewPool(poolID, meta, blockNumber)
	if h.seedTVL {
		h.seedPoolTVL(ctx, &pool, token0, token1, blockNumber)
	}

	tx.putToken(token0)
	tx.putToken(token1)
	tx.putPool(pool)

	h.logger.Info("pool discovered",
		zap.String("pool", poolID),
		zap.String("token0", token0.Symbol),
		zap.String("token1", token1.Symbol),
		zap.Uint32("fee", pool.FeeTier),
	)
	return pool, true, nil
}

func (h *Handler) loadOrCreateToken(ctx context.Context, tx *txn, id string) (model.Token, error) {
	token, ok, err := tx.Token(ctx, id)
	if err != nil {
		return model.Token{}, fmt.Errorf("load token %s: %w", id, err)
	}
	if ok {
		return token, nil
	}

	meta, ok := h.chain.TokenOverrides[id]
	if !ok {
		meta, err = h.reader.TokenMeta(ctx, id)
		if err != nil {
			return model.Token{}, fmt.Errorf("read token %s: %w", id, err)
		}
	}
	return model.NewToken(id, meta), nil
}

// seedPoolTVL sets TVL from the pool's balances just before the discovering
// block. Failures leave TVL at zero.
func (h *Handler) seedPoolTVL(ctx context.Context, pool *model.Pool, token0, token1 model.Token, blockNumber uint64) {
	if blockNumber > 0 {
		blockNumber--
	}
	bal0, bal1, err := h.reader.PoolBalances(ctx, pool.ID, token0.ID, token1.ID, blockNumber)
	if err != nil {
		h.logger.Warn("seed tvl failed", zap.String("pool", pool.ID), zap.Error(err))
		return
	}
	pool.TotalValueLockedToken0 = pricing.ConvertTokenToDecimal(bal0, token0.Decimals)
	pool.TotalValueLockedToken1 = pricing.ConvertTokenToDecimal(bal1, token1.Decimals)
}

// refreshPrices recomputes the bundle and both tokens' native prices after a
// pool price change. The pool must already be staged.
func (h *Handler) refreshPrices(ctx context.Context, tx *txn, pool model.Pool) (model.Bundle, model.Token, model.Token, error) {
	bundle, err := tx.Bundle(ctx)
	if err != nil {
		return model.Bundle{}, model.Token{}, model.Token{}, fmt.Errorf("load bundle: %w", err)
	}
	bundle.EthPriceUSD, err = pricing.NativePriceInUSD(ctx, tx, h.chain.StablecoinWrappedNativePoolAddress, h.chain.StablecoinIsToken0)
	if err != nil {
		return model.Bundle{}, model.Token{}, model.Token{}, err
	}
	tx.putBundle(bundle)

	token0, token1, err := tokenPair(ctx, tx, pool)
	if err != nil {
		return model.Bundle{}, model.Token{}, model.Token{}, err
	}

	derived0, err := pricing.FindNativePerToken(ctx, tx, token0, bundle, h.params)
	if err != nil {
		return model.Bundle{}, model.Token{}, model.Token{}, err
	}
	derived1, err := pricing.FindNativePerToken(ctx, tx, token1, bundle, h.params)
	if err != nil {
		return model.Bundle{}, model.Token{}, model.Token{}, err
	}
	token0.DerivedNative = derived0
	token1.DerivedNative = derived1

	tx.putToken(token0)
	tx.putToken(token1)
	return bundle, token0, token1, nil
}

func mustToken(ctx context.Context, tx *txn, id string) (model.Token, error) {
	token, ok, err := tx.Token(ctx, id)
	if err != nil {
		return model.Token{}, fmt.Errorf("load token %s: %w", id, err)
	}
	if !ok {
		return model.Token{}, fmt.Errorf("token %s missing from store", id)
	}
	return token, nil
}

func tokenPair(ctx context.Context, tx *txn, pool model.Pool) (model.Token, model.Token, error) {
	token0, err := mustToken(ctx, tx, pool.Token0)
	if err != nil {
		return model.Token{}, model.Token{}, err
	}
	token1, err := mustToken(ctx, tx, pool.Token1)
	if err != nil {
		return model.Token{}, model.Token{}, err
	}
	return token0, token1, nil
}
