// Package postgres routes every database operation to the physical store of
// the tenant carried by the request context. Each tenant gets its own pool;
// there is no default and no fallback, so a missing or unknown tenant id can
// never touch another tenant's data.
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/docvisit/practice-api/internal/model"
	"github.com/docvisit/practice-api/internal/tenant"
)

// TenantPools holds one sqlx pool per configured tenant. The map is built at
// boot and read-only afterwards, so lookups need no locking.
type TenantPools struct {
	pools map[string]*sqlx.DB
}

func NewTenantPools(registry *tenant.Registry) (*TenantPools, error) {
	pools := make(map[string]*sqlx.DB, len(registry.IDs()))
	for _, id := range registry.IDs() {
		tc, _ := registry.Get(id)
		db, err := sqlx.Open("postgres", tc.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open pool for tenant %s: %w", id, err)
		}
		pools[id] = db
	}
	return &TenantPools{pools: pools}, nil
}

// Resolve returns the pool for the ambient tenant. The tenant filter rejects
// unresolvable requests before any handler runs; this re-checks anyway so a
// code path that skips the filter fails loudly instead of picking a database.
func (p *TenantPools) Resolve(ctx context.Context) (*sqlx.DB, error) {
	id, ok := tenant.ID(ctx)
	if !ok {
		return nil, model.ErrNoTenant
	}
	db, ok := p.pools[id]
	if !ok {
		return nil, &model.InvalidTenantError{TenantID: id}
	}
	return db, nil
}

// Ping checks connectivity of every tenant pool. Used by the readiness probe.
func (p *TenantPools) Ping(ctx context.Context) error {
	for id, db := range p.pools {
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("tenant %s unreachable: %w", id, err)
		}
	}
	return nil
}

func (p *TenantPools) Close() {
	for _, db := range p.pools {
		db.Close()
	}
}

type txKey struct{}

// InTx resolves the ambient tenant's pool, begins a transaction and runs fn
// with a context that routes nested repository calls into that transaction.
// Statements within fn execute sequentially on one connection, but no
// serializable isolation is assumed.
func (p *TenantPools) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	db, err := p.Resolve(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// runner returns the enclosing transaction when ctx carries one, otherwise
// the tenant's pool.
func (p *TenantPools) runner(ctx context.Context) (sqlx.ExtContext, error) {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx, nil
	}
	return p.Resolve(ctx)
}
