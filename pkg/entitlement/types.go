package entitlement

import "github.com/ajisdzalparo/finsmart-entitlement/pkg/plan"

// Reason explains an entitlement decision.
type Reason string

const (
	// ReasonGranted means access is allowed.
	ReasonGranted Reason = "granted"
	// ReasonPlanTooLow means the current plan's tier is below the feature's
	// minimum tier.
	ReasonPlanTooLow Reason = "plan_too_low"
	// ReasonSubscriptionInactive means the plan tier would suffice but the
	// subscription status does not grant access.
	ReasonSubscriptionInactive Reason = "subscription_inactive"
	// ReasonIndeterminate means the subscription snapshot has not resolved
	// yet. Whether it allows or denies depends on the loading policy.
	ReasonIndeterminate Reason = "indeterminate"
	// ReasonQuotaExceeded means the resource count has reached the plan's
	// ceiling.
	ReasonQuotaExceeded Reason = "quota_exceeded"
)

// Decision is the evaluator's output. It is a derived value recomputed on
// every evaluation and never persisted.
type Decision struct {
	Allowed bool
	Reason  Reason
	// RequiredPlan names the cheapest plan that would satisfy the feature's
	// tier requirement. Set only for plan_too_low denials, for upsell copy.
	RequiredPlan string
}

// UsageInfo contains the current usage and limit for a resource.
type UsageInfo struct {
	Current int64
	Limit   int64 // -1 for unlimited
}

// LimitsView is the display-oriented projection of a plan, using nil for
// unlimited ceilings the way the billing API does.
type LimitsView struct {
	PlanName        string
	Tier            plan.Tier
	MaxTransactions *int64
	MaxGoals        *int64
	MaxCategories   *int64
	Features        []plan.Feature
}
