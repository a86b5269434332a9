package entitlement

import (
	"github.com/ajisdzalparo/finsmart-entitlement/pkg/plan"
	"github.com/ajisdzalparo/finsmart-entitlement/pkg/snapshot"
)

// SnapshotSource exposes the latest resolved subscription and its loading
// state. *snapshot.Service satisfies it; tests inject fixtures.
type SnapshotSource interface {
	Current() (*snapshot.Subscription, snapshot.State)
}

// Evaluator combines the plan catalog, feature requirements, subscription
// snapshot and usage counters into entitlement decisions. It holds no mutable
// state and performs no I/O: every evaluation is a pure function of its
// inputs, cheap enough to run on every render of every gated surface.
type Evaluator struct {
	catalog      plan.Catalog
	requirements plan.Requirements
	snapshots    SnapshotSource
	counters     CounterRegistry

	// pessimisticLoading flips the loading-state policy from fail-open to
	// fail-closed. Default is fail-open: gated surfaces must not flash a
	// locked state while the subscription fetch is in flight.
	pessimisticLoading bool
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithCounter registers a counter function for a resource. Panics if a
// counter for the same resource has already been registered to keep wiring
// explicit.
func WithCounter(res plan.Resource, fn CounterFunc) Option {
	return func(e *Evaluator) {
		if fn == nil {
			return
		}
		if _, exists := e.counters[res]; exists {
			panic("entitlement: counter for resource " + string(res) + " already registered")
		}
		e.counters[res] = fn
	}
}

// WithPessimisticLoading makes the evaluator deny access while the snapshot
// is still loading instead of the default optimistic grant. Gate adapters
// using this policy typically render a skeleton until the snapshot resolves.
func WithPessimisticLoading() Option {
	return func(e *Evaluator) {
		e.pessimisticLoading = true
	}
}

// NewEvaluator creates an Evaluator. Panics if snapshots is nil to fail fast
// during initialization.
func NewEvaluator(catalog plan.Catalog, requirements plan.Requirements, snapshots SnapshotSource, opts ...Option) *Evaluator {
	if snapshots == nil {
		panic("entitlement: SnapshotSource is required")
	}
	if requirements == nil {
		requirements = plan.NewRequirements()
	}

	e := &Evaluator{
		catalog:      catalog,
		requirements: requirements,
		snapshots:    snapshots,
		counters:     NewRegistry(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// CheckFeature decides whether the current user may use a feature.
//
// While the snapshot is loading the decision is indeterminate and resolves
// per the loading policy. In the error state, and for users without a
// subscription record, the user is treated as free/active: optimistic while
// unknown-pending, least-privilege once known-failed. Features requiring the
// free tier are always granted regardless of subscription status.
func (e *Evaluator) CheckFeature(f plan.Feature) Decision {
	required := e.requirements.RequiredTier(f)

	sub, state := e.snapshots.Current()
	if state == snapshot.StateLoading {
		if e.pessimisticLoading {
			return Decision{Allowed: false, Reason: ReasonIndeterminate}
		}
		return Decision{Allowed: true, Reason: ReasonIndeterminate}
	}
	if state == snapshot.StateError {
		sub = nil // known-failed: fall back to the implicit free plan
	}

	// The free baseline is always available, whatever the status.
	if required == plan.TierFree {
		return Decision{Allowed: true, Reason: ReasonGranted}
	}

	if !sub.IsActive() {
		return Decision{Allowed: false, Reason: ReasonSubscriptionInactive}
	}

	tier := plan.TierFree
	if sub != nil {
		tier = e.catalog.TierOf(sub.PlanName)
	}
	if tier < required {
		return Decision{
			Allowed:      false,
			Reason:       ReasonPlanTooLow,
			RequiredPlan: e.planNameForTier(required),
		}
	}

	return Decision{Allowed: true, Reason: ReasonGranted}
}

// HasFeatureAccess is the boolean shorthand for CheckFeature.
func (e *Evaluator) HasFeatureAccess(f plan.Feature) bool {
	return e.CheckFeature(f).Allowed
}

// CheckCapacity decides whether the current user may create one more
// instance of a limited resource, reading the count from the registered
// counter.
func (e *Evaluator) CheckCapacity(res plan.Resource) Decision {
	sub, state := e.snapshots.Current()
	if state == snapshot.StateLoading {
		if e.pessimisticLoading {
			return Decision{Allowed: false, Reason: ReasonIndeterminate}
		}
		return Decision{Allowed: true, Reason: ReasonIndeterminate}
	}

	limit := e.effectivePlan(sub, state).LimitOf(res)
	if limit == plan.Unlimited {
		return Decision{Allowed: true, Reason: ReasonGranted}
	}

	counter, ok := e.counters[res]
	if !ok {
		// The engine never blocks on its own missing wiring; callers that
		// care should log unregistered resources.
		return Decision{Allowed: true, Reason: ReasonGranted}
	}

	return e.capacityDecision(counter(), limit)
}

// HasCapacity is the boolean shorthand for CheckCapacity.
func (e *Evaluator) HasCapacity(res plan.Resource) bool {
	return e.CheckCapacity(res).Allowed
}

// HasCapacityCount is the pure form of the capacity check: the caller
// supplies the current count instead of relying on a registered counter.
func (e *Evaluator) HasCapacityCount(res plan.Resource, current int64) bool {
	sub, state := e.snapshots.Current()
	if state == snapshot.StateLoading {
		return !e.pessimisticLoading
	}

	limit := e.effectivePlan(sub, state).LimitOf(res)
	if limit == plan.Unlimited {
		return true
	}
	return e.capacityDecision(current, limit).Allowed
}

// Usage returns the current count and limit for a resource under the
// current plan, for dashboard display. The count is zero when no counter is
// registered.
func (e *Evaluator) Usage(res plan.Resource) UsageInfo {
	sub, state := e.snapshots.Current()
	info := UsageInfo{Limit: e.effectivePlan(sub, state).LimitOf(res)}
	if counter, ok := e.counters[res]; ok {
		info.Current = counter()
	}
	return info
}

// PlanFeatures returns the display projection of the named plan. Unknown
// names project the free plan.
func (e *Evaluator) PlanFeatures(name string) LimitsView {
	p, ok := e.catalog.ByName(name)
	if !ok {
		p = e.catalog.FreePlan()
	}
	return limitsView(p)
}

// CurrentPlanFeatures returns the display projection of the current user's
// plan, resolving loading and error states to the free plan.
func (e *Evaluator) CurrentPlanFeatures() LimitsView {
	sub, state := e.snapshots.Current()
	return limitsView(e.effectivePlan(sub, state))
}

// effectivePlan resolves the snapshot to a catalog plan: error state and
// missing records mean the implicit free plan, as do unknown plan names.
func (e *Evaluator) effectivePlan(sub *snapshot.Subscription, state snapshot.State) plan.Plan {
	if state != snapshot.StateReady || sub == nil {
		return e.catalog.FreePlan()
	}
	p, ok := e.catalog.ByTier(e.catalog.TierOf(sub.PlanName))
	if !ok {
		return e.catalog.FreePlan()
	}
	return p
}

// capacityDecision applies the strict-less-than quota policy: the count
// reflects resources already created, so count == limit means the last slot
// is taken.
func (e *Evaluator) capacityDecision(current, limit int64) Decision {
	if current < limit {
		return Decision{Allowed: true, Reason: ReasonGranted}
	}
	return Decision{Allowed: false, Reason: ReasonQuotaExceeded}
}

// planNameForTier names the cheapest plan satisfying a tier requirement.
func (e *Evaluator) planNameForTier(t plan.Tier) string {
	if p, ok := e.catalog.ByTier(t); ok {
		if p.Name != "" {
			return p.Name
		}
	}
	return ""
}

func limitsView(p plan.Plan) LimitsView {
	view := LimitsView{
		PlanName:        p.Name,
		Tier:            p.Tier,
		MaxTransactions: finiteLimit(p.LimitOf(plan.ResourceTransactions)),
		MaxGoals:        finiteLimit(p.LimitOf(plan.ResourceGoals)),
		MaxCategories:   finiteLimit(p.LimitOf(plan.ResourceCategories)),
	}
	if len(p.Features) > 0 {
		view.Features = append([]plan.Feature(nil), p.Features...)
	}
	return view
}

// finiteLimit converts the -1 sentinel back to nil for display consumers,
// which use the billing API's null-means-unlimited convention.
func finiteLimit(limit int64) *int64 {
	if limit == plan.Unlimited {
		return nil
	}
	return &limit
}
