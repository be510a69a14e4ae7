// Package health holds the checkers consulted by the readiness endpoint.
package health

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-todo-web/internal/ports"
)

// DefaultCheckTimeout bounds a single checker when New is given zero.
const DefaultCheckTimeout = 2 * time.Second

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a concurrency-safe [ports.HealthRegistry]. Checkers are keyed by
// name; registering a second checker under the same name replaces the first.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty registry. Each check run by CheckAll is given at most
// timeout to finish.
func New(timeout time.Duration) *Registry {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	return &Registry{
		checkers: make(map[string]ports.HealthChecker),
		timeout:  timeout,
	}
}

// Register adds or replaces a checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.checkers[name] = checker
}

// CheckAll runs every registered check concurrently and returns the results
// keyed by checker name. A nil value means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make(map[string]ports.HealthChecker, len(r.checkers))
	maps.Copy(checkers, r.checkers)
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]error, len(checkers))
	)

	for name, c := range checkers {
		wg.Go(func() {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			err := c.HealthCheck(checkCtx)

			mu.Lock()
			results[name] = err
			mu.Unlock()
		})
	}

	wg.Wait()
	return results
}
