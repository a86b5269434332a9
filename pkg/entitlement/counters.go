package entitlement

import (
	"fmt"

	"github.com/ajisdzalparo/finsmart-entitlement/pkg/plan"
)

// CounterFunc returns the current count of a limited resource. Counts are
// derived live from the owning resource list (e.g. number of non-deleted
// categories), so the function must be cheap and synchronous: it is called
// on every evaluation of a quota-gated surface. The engine never caches the
// result.
type CounterFunc func() int64

// CounterRegistry maps a Resource to its CounterFunc.
// Not thread-safe: register all counters at startup only.
type CounterRegistry map[plan.Resource]CounterFunc

// NewRegistry returns a new, empty CounterRegistry.
func NewRegistry() CounterRegistry {
	return make(CounterRegistry)
}

// Register sets or replaces the CounterFunc for the given resource. Panics if fn is nil.
func (r CounterRegistry) Register(res plan.Resource, fn CounterFunc) {
	if fn == nil {
		panic(fmt.Sprintf("entitlement: CounterFunc for resource %q cannot be nil", res))
	}
	r[res] = fn
}
