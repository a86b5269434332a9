// Package plan provides the plan catalog and feature requirement registry
// for subscription-tier gating.
//
// Plans are totally ordered by Tier (free=0 < premium=1 < enterprise=2) and
// carry per-resource quota limits, with -1 (Unlimited) removing the ceiling.
// The Requirements registry maps feature keys to the minimum tier that
// unlocks them.
//
// Both structures are plain lookup tables: they perform no I/O, never panic
// on unknown input, and resolve unknown plan names and feature keys to the
// free tier. That least-privilege default is deliberate — a typo in a gate
// call site must degrade gracefully instead of locking users out.
//
// Basic usage:
//
//	catalog := plan.MustCatalog(map[string]plan.Plan{
//	    "free": {
//	        Tier: plan.TierFree,
//	        Limits: map[plan.Resource]int64{
//	            plan.ResourceTransactions: 100,
//	            plan.ResourceGoals:        3,
//	            plan.ResourceCategories:   5,
//	        },
//	    },
//	    "premium": {
//	        Tier: plan.TierPremium,
//	        Limits: map[plan.Resource]int64{
//	            plan.ResourceTransactions: plan.Unlimited,
//	            plan.ResourceGoals:        20,
//	            plan.ResourceCategories:   plan.Unlimited,
//	        },
//	        Features: []plan.Feature{plan.FeatureAIChat, plan.FeatureDataExport},
//	    },
//	    "enterprise": {
//	        Tier:     plan.TierEnterprise,
//	        Features: []plan.Feature{plan.FeatureAIChat, plan.FeatureSchedulerDaily},
//	    },
//	})
//
//	reqs := plan.NewRequirements()
//	reqs.Register(plan.FeatureAIChat, plan.TierPremium)
//	reqs.Register(plan.FeatureSchedulerDaily, plan.TierEnterprise)
//
// Catalogs can also be loaded from YAML via NewYAMLSource / NewYAMLFileSource,
// where a null limit means unlimited.
package plan
