// Package health collects the readiness checks of the service's catalogs and
// registries. The readiness endpoint reports the service ready only when
// every registered check passes.
package health

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/bibtypes/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry implements [ports.HealthRegistry]. Checkers are keyed by name;
// registering a second checker under a name replaces the first. Safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	names    []string
	checkers map[string]ports.HealthChecker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{checkers: make(map[string]ports.HealthChecker)}
}

// Register adds checker under checker.Name().
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.checkers[name]; !ok {
		r.names = append(r.names, name)
	}
	r.checkers[name] = checker
}

// Names returns the registered check names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names)
}

// CheckAll runs every check and returns the results keyed by name; nil means
// healthy. Checks run without the lock held.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, 0, len(r.names))
	names := slices.Clone(r.names)
	for _, name := range names {
		checkers = append(checkers, r.checkers[name])
	}
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[names[i]] = c.HealthCheck(ctx)
	}
	return results
}
