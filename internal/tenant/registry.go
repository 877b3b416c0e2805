package tenant

import (
	"sort"

	"github.com/docvisit/practice-api/internal/config"
)

// Registry is the static tenant catalogue, loaded once at boot and never
// mutated afterwards.
type Registry struct {
	tenants map[string]config.TenantConfig
}

func NewRegistry(tenants map[string]config.TenantConfig) *Registry {
	copied := make(map[string]config.TenantConfig, len(tenants))
	for id, tc := range tenants {
		copied[id] = tc
	}
	return &Registry{tenants: copied}
}

func (r *Registry) Has(id string) bool {
	_, ok := r.tenants[id]
	return ok
}

func (r *Registry) Get(id string) (config.TenantConfig, bool) {
	tc, ok := r.tenants[id]
	return tc, ok
}

// IDs returns the configured tenant ids in stable order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.tenants))
	for id := range r.tenants {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
