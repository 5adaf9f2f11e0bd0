package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"v3pricing/internal/model"
)

//go:embed schema.sql
var schemaSQL string

// Store provides Postgres persistence for pricing entities.
type Store struct {
	pool *pgxpool.Pool
}

// execer is satisfied by both the pool and a transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// EnsureSchema creates the entity tables when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := splitStatements(schemaSQL)
	batch := &pgx.Batch{}
	for _, stmt := range statements {
		batch.Queue(stmt)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range statements {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func splitStatements(sql string) []string {
	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

func (s *Store) Token(ctx context.Context, id string) (model.Token, bool, error) {
	var (
		token   model.Token
		decs    int16
		derived string
	)
	row := s.pool.QueryRow(ctx, `
		SELECT id, symbol, name, decimals, derived_native::text, whitelist_pools
		FROM tokens WHERE id=$1
	`, id)
	if err := row.Scan(&token.ID, &token.Symbol, &token.Name, &decs, &derived, &token.WhitelistPools); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Token{}, false, nil
		}
		return model.Token{}, false, err
	}
	if decs < 0 || decs > 255 {
		return model.Token{}, false, fmt.Errorf("token %s: decimals %d out of range", id, decs)
	}
	token.Decimals = uint8(decs)

	value, err := model.ParseDecimal(derived)
	if err != nil {
		return model.Token{}, false, fmt.Errorf("token %s derived_native: %w", id, err)
	}
	token.DerivedNative = value
	if token.WhitelistPools == nil {
		token.WhitelistPools = []string{}
	}
	return token, true, nil
}

// SaveToken inserts or updates a token.
func (s *Store) SaveToken(ctx context.Context, token model.Token) error {
	return saveToken(ctx, s.pool, token)
}

func saveToken(ctx context.Context, db execer, token model.Token) error {
	pools := token.WhitelistPools
	if pools == nil {
		pools = []string{}
	}
	_, err := db.Exec(ctx, `
		INSERT INTO tokens (id, symbol, name, decimals, derived_native, whitelist_pools, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::text::numeric, $6, now(), now())
		ON CONFLICT (id) DO UPDATE SET
			symbol = EXCLUDED.symbol,
			name = EXCLUDED.name,
			decimals = EXCLUDED.decimals,
			derived_native = EXCLUDED.derived_native,
			whitelist_pools = EXCLUDED.whitelist_pools,
			updated_at = now()
	`,
		token.ID,
		token.Symbol,
		token.Name,
		int16(token.Decimals),
		token.DerivedNative.String(),
		pools,
	)
	return err
}

func (s *Store) Pool(ctx context.Context, id string) (model.Pool, bool, error) {
	var (
		pool                           model.Pool
		fee                            int64
		createdAt                      int64
		liquidity, sqrtPrice           string
		tvl0, tvl1, token0Px, token1Px string
	)
	row := s.pool.QueryRow(ctx, `
		SELECT id, token0, token1, fee_tier, tick_spacing, created_at_block,
			liquidity::text, sqrt_price::text, tick,
			tvl_token0::text, tvl_token1::text, token0_price::text, token1_price::text
		FROM pools WHERE id=$1
	`, id)
	err := row.Scan(
		&pool.ID, &pool.Token0, &pool.Token1, &fee, &pool.TickSpacing, &createdAt,
		&liquidity, &sqrtPrice, &pool.Tick,
		&tvl0, &tvl1, &token0Px, &token1Px,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Pool{}, false, nil
		}
		return model.Pool{}, false, err
	}
	pool.FeeTier = uint32(fee)
	pool.CreatedAtBlock = uint64(createdAt)

	if pool.Liquidity, err = model.ParseUint256(liquidity); err != nil {
		return model.Pool{}, false, fmt.Errorf("pool %s liquidity: %w", id, err)
	}
	if pool.SqrtPrice, err = model.ParseUint256(sqrtPrice); err != nil {
		return model.Pool{}, false, fmt.Errorf("pool %s sqrt_price: %w", id, err)
	}

	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"tvl_token0", tvl0, &pool.TotalValueLockedToken0},
		{"tvl_token1", tvl1, &pool.TotalValueLockedToken1},
		{"token0_price", token0Px, &pool.Token0Price},
		{"token1_price", token1Px, &pool.Token1Price},
	}
	for _, f := range fields {
		value, err := model.ParseDecimal(f.raw)
		if err != nil {
			return model.Pool{}, false, fmt.Errorf("pool %s %s: %w", id, f.name, err)
		}
		*f.dst = value
	}
	return pool, true, nil
}

// SavePool inserts or updates a pool.
func (s *Store) SavePool(ctx context.Context, pool model.Pool) error {
	return savePool(ctx, s.pool, pool)
}

func savePool(ctx context.Context, db execer, pool model.Pool) error {
	_, err := db.Exec(ctx, `
		INSERT INTO pools (
			id, token0, token1, fee_tier, tick_spacing, created_at_block,
			liquidity, sqrt_price, tick, tvl_token0, tvl_token1, token0_price, token1_price,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7::text::numeric, $8::text::numeric, $9,
			$10::text::numeric, $11::text::numeric, $12::text::numeric, $13::text::numeric,
			now(), now()
		)
		ON CONFLICT (id) DO UPDATE SET
			liquidity = EXCLUDED.liquidity,
			sqrt_price = EXCLUDED.sqrt_price,
			tick = EXCLUDED.tick,
			tvl_token0 = EXCLUDED.tvl_token0,
			tvl_token1 = EXCLUDED.tvl_token1,
			token0_price = EXCLUDED.token0_price,
			token1_price = EXCLUDED.token1_price,
			created_at_block = LEAST(pools.created_at_block, EXCLUDED.created_at_block),
			updated_at = now()
	`,
		pool.ID,
		pool.Token0,
		pool.Token1,
		int64(pool.FeeTier),
		pool.TickSpacing,
		int64(pool.CreatedAtBlock),
		model.FormatUint256(pool.Liquidity),
		model.FormatUint256(pool.SqrtPrice),
		pool.Tick,
		pool.TotalValueLockedToken0.String(),
		pool.TotalValueLockedToken1.String(),
		pool.Token0Price.String(),
		pool.Token1Price.String(),
	)
	return err
}

// Bundle returns the singleton bundle or an unpriced one when missing.
func (s *Store) Bundle(ctx context.Context) (model.Bundle, error) {
	var price string
	row := s.pool.QueryRow(ctx, `SELECT eth_price_usd::text FROM bundles WHERE id=$1`, model.BundleID)
	if err := row.Scan(&price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.NewBundle(), nil
		}
		return model.Bundle{}, err
	}
	value, err := model.ParseDecimal(price)
	if err != nil {
		return model.Bundle{}, fmt.Errorf("bundle eth_price_usd: %w", err)
	}
	return model.Bundle{ID: model.BundleID, EthPriceUSD: value}, nil
}

func (s *Store) SaveBundle(ctx context.Context, bundle model.Bundle) error {
	return saveBundle(ctx, s.pool, bundle)
}

func saveBundle(ctx context.Context, db execer, bundle model.Bundle) error {
	_, err := db.Exec(ctx, `
		INSERT INTO bundles (id, eth_price_usd, updated_at)
		VALUES ($1, $2::text::numeric, now())
		ON CONFLICT (id) DO UPDATE
		SET eth_price_usd = EXCLUDED.eth_price_usd, updated_at = now()
	`, model.BundleID, bundle.EthPriceUSD.String())
	return err
}

// Cursor returns the last applied log position for a name.
func (s *Store) Cursor(ctx context.Context, name string) (model.Cursor, bool, error) {
	if name == "" {
		return model.Cursor{}, false, fmt.Errorf("state name required")
	}
	var block, logIndex int64
	row := s.pool.QueryRow(ctx, `SELECT block_number, log_index FROM indexer_state WHERE name=$1`, name)
	if err := row.Scan(&block, &logIndex); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Cursor{}, false, nil
		}
		return model.Cursor{}, false, err
	}
	return model.Cursor{BlockNumber: uint64(block), LogIndex: uint64(logIndex)}, true, nil
}

// SaveCursor upserts the last applied log position for a name.
func (s *Store) SaveCursor(ctx context.Context, name string, cursor model.Cursor) error {
	return saveCursor(ctx, s.pool, name, cursor)
}

func saveCursor(ctx context.Context, db execer, name string, cursor model.Cursor) error {
	if name == "" {
		return fmt.Errorf("state name required")
	}
	_, err := db.Exec(ctx, `
		INSERT INTO indexer_state (name, block_number, log_index, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (name) DO UPDATE
		SET block_number = EXCLUDED.block_number, log_index = EXCLUDED.log_index, updated_at = now()
	`, name, int64(cursor.BlockNumber), int64(cursor.LogIndex))
	return err
}

// Commit writes a change set inside one transaction.
func (s *Store) Commit(ctx context.Context, changes model.ChangeSet) error {
	if changes.Empty() {
		return nil
	}
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for _, token := range changes.Tokens {
			if err := saveToken(ctx, tx, token); err != nil {
				return fmt.Errorf("save token %s: %w", token.ID, err)
			}
		}
		for _, pool := range changes.Pools {
			if err := savePool(ctx, tx, pool); err != nil {
				return fmt.Errorf("save pool %s: %w", pool.ID, err)
			}
		}
		if changes.Bundle != nil {
			if err := saveBundle(ctx, tx, *changes.Bundle); err != nil {
				return fmt.Errorf("save bundle: %w", err)
			}
		}
		if changes.Cursor != nil {
			if err := saveCursor(ctx, tx, changes.CursorName, *changes.Cursor); err != nil {
				return fmt.Errorf("save cursor: %w", err)
			}
		}
		return nil
	})
}
