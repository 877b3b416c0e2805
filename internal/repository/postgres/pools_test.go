package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docvisit/practice-api/internal/config"
	"github.com/docvisit/practice-api/internal/model"
	"github.com/docvisit/practice-api/internal/tenant"
)

// sqlx.Open does not dial, so pools for fake tenants are safe to build here.
func newTestPools(t *testing.T, ids ...string) *TenantPools {
	t.Helper()
	tenants := make(map[string]config.TenantConfig, len(ids))
	for _, id := range ids {
		tenants[id] = config.TenantConfig{
			Host: "localhost", Port: 5432,
			User: id, Password: id, Name: id, SSLMode: "disable",
		}
	}
	pools, err := NewTenantPools(tenant.NewRegistry(tenants))
	require.NoError(t, err)
	t.Cleanup(pools.Close)
	return pools
}

func TestResolveWithoutTenant(t *testing.T) {
	pools := newTestPools(t, "tenantA")

	_, err := pools.Resolve(context.Background())
	assert.ErrorIs(t, err, model.ErrNoTenant)
}

func TestResolveUnknownTenant(t *testing.T) {
	pools := newTestPools(t, "tenantA")

	_, err := pools.Resolve(tenant.WithID(context.Background(), "tenantC"))

	var invalid *model.InvalidTenantError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "tenantC", invalid.TenantID)
}

func TestResolvePicksTenantPool(t *testing.T) {
	pools := newTestPools(t, "tenantA", "tenantB")

	a, err := pools.Resolve(tenant.WithID(context.Background(), "tenantA"))
	require.NoError(t, err)
	b, err := pools.Resolve(tenant.WithID(context.Background(), "tenantB"))
	require.NoError(t, err)

	assert.NotNil(t, a)
	assert.NotNil(t, b)
	assert.NotSame(t, a, b)
}

func TestRunnerFallsBackToPool(t *testing.T) {
	pools := newTestPools(t, "tenantA")

	ext, err := pools.runner(tenant.WithID(context.Background(), "tenantA"))
	require.NoError(t, err)
	assert.NotNil(t, ext)

	_, err = pools.runner(context.Background())
	assert.ErrorIs(t, err, model.ErrNoTenant)
}
