package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"v3pricing/internal/model"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "v3pricing"

// Store keeps pricing entities as JSON documents under "<prefix>:<kind>:<id>".
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore connects using a redis:// URL and verifies the connection.
func NewStore(ctx context.Context, url, prefix string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis at %s: %w", opts.Addr, err)
	}
	return NewStoreWithClient(client, prefix), nil
}

// NewStoreWithClient wraps an existing client.
func NewStoreWithClient(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) key(kind, id string) string {
	return s.prefix + ":" + kind + ":" + id
}

type tokenDoc struct {
	ID             string   `json:"id"`
	Symbol         string   `json:"symbol"`
	Name           string   `json:"name"`
	Decimals       uint8    `json:"decimals"`
	DerivedNative  string   `json:"derived_native"`
	WhitelistPools []string `json:"whitelist_pools"`
}

type poolDoc struct {
	ID             string `json:"id"`
	Token0         string `json:"token0"`
	Token1         string `json:"token1"`
	FeeTier        uint32 `json:"fee_tier"`
	TickSpacing    int32  `json:"tick_spacing"`
	CreatedAtBlock uint64 `json:"created_at_block"`
	Liquidity      string `json:"liquidity"`
	SqrtPrice      string `json:"sqrt_price"`
	Tick           int32  `json:"tick"`
	TVLToken0      string `json:"tvl_token0"`
	TVLToken1      string `json:"tvl_token1"`
	Token0Price    string `json:"token0_price"`
	Token1Price    string `json:"token1_price"`
}

type bundleDoc struct {
	ID          string `json:"id"`
	EthPriceUSD string `json:"eth_price_usd"`
}

// load reads and unmarshals a document, reporting false when the key is absent.
func (s *Store) load(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, key string, value interface{}) error {
	return s.queue(ctx, s.client, key, value)
}

// queue issues a SET on c. Inside a pipeline the error surfaces on Exec.
func (s *Store) queue(ctx context.Context, c redis.Cmdable, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Token(ctx context.Context, id string) (model.Token, bool, error) {
	var doc tokenDoc
	ok, err := s.load(ctx, s.key("token", id), &doc)
	if err != nil || !ok {
		return model.Token{}, false, err
	}
	derived, err := model.ParseDecimal(doc.DerivedNative)
	if err != nil {
		return model.Token{}, false, fmt.Errorf("token %s derived_native: %w", id, err)
	}
	pools := doc.WhitelistPools
	if pools == nil {
		pools = []string{}
	}
	return model.Token{
		ID:             doc.ID,
		Symbol:         doc.Symbol,
		Name:           doc.Name,
		Decimals:       doc.Decimals,
		DerivedNative:  derived,
		WhitelistPools: pools,
	}, true, nil
}

func (s *Store) SaveToken(ctx context.Context, token model.Token) error {
	return s.save(ctx, s.key("token", token.ID), newTokenDoc(token))
}

func newTokenDoc(token model.Token) tokenDoc {
	return tokenDoc{
		ID:             token.ID,
		Symbol:         token.Symbol,
		Name:           token.Name,
		Decimals:       token.Decimals,
		DerivedNative:  token.DerivedNative.String(),
		WhitelistPools: token.WhitelistPools,
	}
}

func (s *Store) Pool(ctx context.Context, id string) (model.Pool, bool, error) {
	var doc poolDoc
	ok, err := s.load(ctx, s.key("pool", id), &doc)
	if err != nil || !ok {
		return model.Pool{}, false, err
	}

	pool := model.Pool{
		ID:             doc.ID,
		Token0:         doc.Token0,
		Token1:         doc.Token1,
		FeeTier:        doc.FeeTier,
		TickSpacing:    doc.TickSpacing,
		CreatedAtBlock: doc.CreatedAtBlock,
		Tick:           doc.Tick,
	}
	if pool.Liquidity, err = model.ParseUint256(doc.Liquidity); err != nil {
		return model.Pool{}, false, fmt.Errorf("pool %s liquidity: %w", id, err)
	}
	if pool.SqrtPrice, err = model.ParseUint256(doc.SqrtPrice); err != nil {
		return model.Pool{}, false, fmt.Errorf("pool %s sqrt_price: %w", id, err)
	}
	if pool.TotalValueLockedToken0, err = model.ParseDecimal(doc.TVLToken0); err != nil {
		return model.Pool{}, false, fmt.Errorf("pool %s tvl_token0: %w", id, err)
	}
	if pool.TotalValueLockedToken1, err = model.ParseDecimal(doc.TVLToken1); err != nil {
		return model.Pool{}, false, fmt.Errorf("pool %s tvl_token1: %w", id, err)
	}
	if pool.Token0Price, err = model.ParseDecimal(doc.Token0Price); err != nil {
		return model.Pool{}, false, fmt.Errorf("pool %s token0_price: %w", id, err)
	}
	if pool.Token1Price, err = model.ParseDecimal(doc.Token1Price); err != nil {
		return model.Pool{}, false, fmt.Errorf("pool %s token1_price: %w", id, err)
	}
	return pool, true, nil
}

func (s *Store) SavePool(ctx context.Context, pool model.Pool) error {
	return s.save(ctx, s.key("pool", pool.ID), newPoolDoc(pool))
}

func newPoolDoc(pool model.Pool) poolDoc {
	return poolDoc{
		ID:             pool.ID,
		Token0:         pool.Token0,
		Token1:         pool.Token1,
		FeeTier:        pool.FeeTier,
		TickSpacing:    pool.TickSpacing,
		CreatedAtBlock: pool.CreatedAtBlock,
		Liquidity:      model.FormatUint256(pool.Liquidity),
		SqrtPrice:      model.FormatUint256(pool.SqrtPrice),
		Tick:           pool.Tick,
		TVLToken0:      pool.TotalValueLockedToken0.String(),
		TVLToken1:      pool.TotalValueLockedToken1.String(),
		Token0Price:    pool.Token0Price.String(),
		Token1Price:    pool.Token1Price.String(),
	}
}

func (s *Store) Bundle(ctx context.Context) (model.Bundle, error) {
	var doc bundleDoc
	ok, err := s.load(ctx, s.key("bundle", model.BundleID), &doc)
	if err != nil {
		return model.Bundle{}, err
	}
	if !ok {
		return model.NewBundle(), nil
	}
	price, err := model.ParseDecimal(doc.EthPriceUSD)
	if err != nil {
		return model.Bundle{}, fmt.Errorf("bundle eth_price_usd: %w", err)
	}
	return model.Bundle{ID: model.BundleID, EthPriceUSD: price}, nil
}

func (s *Store) SaveBundle(ctx context.Context, bundle model.Bundle) error {
	return s.save(ctx, s.key("bundle", model.BundleID), newBundleDoc(bundle))
}

func newBundleDoc(bundle model.Bundle) bundleDoc {
	return bundleDoc{ID: model.BundleID, EthPriceUSD: bundle.EthPriceUSD.String()}
}

func (s *Store) Cursor(ctx context.Context, name string) (model.Cursor, bool, error) {
	if name == "" {
		return model.Cursor{}, false, fmt.Errorf("state name required")
	}
	var cursor model.Cursor
	ok, err := s.load(ctx, s.key("cursor", name), &cursor)
	if err != nil || !ok {
		return model.Cursor{}, false, err
	}
	return cursor, true, nil
}

func (s *Store) SaveCursor(ctx context.Context, name string, cursor model.Cursor) error {
	if name == "" {
		return fmt.Errorf("state name required")
	}
	return s.save(ctx, s.key("cursor", name), cursor)
}

// Commit writes a change set in one MULTI/EXEC transaction.
func (s *Store) Commit(ctx context.Context, changes model.ChangeSet) error {
	if changes.Empty() {
		return nil
	}
	if changes.Cursor != nil && changes.CursorName == "" {
		return fmt.Errorf("state name required")
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, token := range changes.Tokens {
			if err := s.queue(ctx, pipe, s.key("token", token.ID), newTokenDoc(token)); err != nil {
				return err
			}
		}
		for _, pool := range changes.Pools {
			if err := s.queue(ctx, pipe, s.key("pool", pool.ID), newPoolDoc(pool)); err != nil {
				return err
			}
		}
		if changes.Bundle != nil {
			if err := s.queue(ctx, pipe, s.key("bundle", model.BundleID), newBundleDoc(*changes.Bundle)); err != nil {
				return err
			}
		}
		if changes.Cursor != nil {
			return s.queue(ctx, pipe, s.key("cursor", changes.CursorName), *changes.Cursor)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("commit changes: %w", err)
	}
	return nil
}
