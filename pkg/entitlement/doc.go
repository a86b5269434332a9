// Package entitlement decides, for the current user and a given feature or
// resource, whether access is granted under the user's subscription plan.
//
// The Evaluator combines three inputs, all owned and mutated elsewhere: the
// plan catalog and feature requirements (configuration, loaded once), the
// subscription snapshot (fetched per session, invalidated on billing
// mutations) and live usage counters. Evaluation is synchronous, re-entrant
// and side-effect-free, so gate adapters can call it on every render.
//
// Two independent gating axes:
//
//   - Feature access: granted iff the subscription is active and the plan's
//     tier is at least the feature's minimum tier. A premium user can still
//     be capacity-blocked, and a free user under quota is still plan-blocked
//     on premium-only features.
//   - Capacity: granted iff the current count is strictly below the plan's
//     ceiling for the resource. count == limit denies; Unlimited always
//     grants.
//
// Indeterminate and failure states are asymmetric: while the snapshot is
// still loading the evaluator fails open (the UI must not flash a locked
// state mid-fetch; WithPessimisticLoading flips this), but once a fetch has
// failed it falls back to the free plan. Unknown feature keys and plan names
// resolve to the free tier and never block.
//
//	eval := entitlement.NewEvaluator(catalog, reqs, snapshotSvc,
//	    entitlement.WithCounter(plan.ResourceCategories, func() int64 {
//	        return int64(len(categories.Active()))
//	    }),
//	)
//
//	if eval.HasFeatureAccess(plan.FeatureAIChat) { ... }
//	if d := eval.CheckCapacity(plan.ResourceCategories); !d.Allowed { ... }
package entitlement
