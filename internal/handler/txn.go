package handler

import (
	"context"

	"v3pricing/internal/model"
	"v3pricing/internal/storage"
)

// txn stages the writes of one log on top of the store. Reads see staged
// records first. Nothing reaches the store until the change set is committed.
type txn struct {
	store storage.EntityStore

	tokens     map[string]model.Token
	tokenOrder []string
	pools      map[string]model.Pool
	poolOrder  []string
	bundle     *model.Bundle
}

func newTxn(store storage.EntityStore) *txn {
	return &txn{
		store:  store,
		tokens: make(map[string]model.Token),
		pools:  make(map[string]model.Pool),
	}
}

func (t *txn) Token(ctx context.Context, id string) (model.Token, bool, error) {
	if token, ok := t.tokens[id]; ok {
		return token.Clone(), true, nil
	}
	return t.store.Token(ctx, id)
}

func (t *txn) Pool(ctx context.Context, id string) (model.Pool, bool, error) {
	if pool, ok := t.pools[id]; ok {
		return pool.Clone(), true, nil
	}
	return t.store.Pool(ctx, id)
}

func (t *txn) Bundle(ctx context.Context) (model.Bundle, error) {
	if t.bundle != nil {
		return *t.bundle, nil
	}
	return t.store.Bundle(ctx)
}

func (t *txn) putToken(token model.Token) {
	if _, ok := t.tokens[token.ID]; !ok {
		t.tokenOrder = append(t.tokenOrder, token.ID)
	}
	t.tokens[token.ID] = token.Clone()
}

func (t *txn) putPool(pool model.Pool) {
	if _, ok := t.pools[pool.ID]; !ok {
		t.poolOrder = append(t.poolOrder, pool.ID)
	}
	t.pools[pool.ID] = pool.Clone()
}

func (t *txn) putBundle(bundle model.Bundle) {
	bundle.ID = model.BundleID
	t.bundle = &bundle
}

// changes returns the staged writes in first-write order.
func (t *txn) changes() model.ChangeSet {
	changes := model.ChangeSet{Bundle: t.bundle}
	for _, id := range t.tokenOrder {
		changes.Tokens = append(changes.Tokens, t.tokens[id])
	}
	for _, id := range t.poolOrder {
		changes.Pools = append(changes.Pools, t.pools[id])
	}
	return changes
}
