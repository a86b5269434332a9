package plan

// Tier is the ordinal rank of a subscription plan. Higher tiers include
// everything the lower tiers offer, so "at least tier X" comparisons are
// plain integer comparisons.
type Tier int

const (
	TierFree       Tier = 0
	TierPremium    Tier = 1
	TierEnterprise Tier = 2
)

// Resource represents a countable user resource type subject to plan quotas.
type Resource string

const (
	ResourceTransactions Resource = "transactions"
	ResourceGoals        Resource = "goals"
	ResourceCategories   Resource = "categories"
)

// Limit constants
const (
	// Unlimited represents a resource with no limit (-1). The billing API
	// uses null for the same thing; the wire decoder maps it to this value.
	Unlimited int64 = -1
)

// Feature is a string type representing a gated capability. The set is open:
// gate call sites may probe keys the catalog has never heard of, and those
// resolve to the free tier.
type Feature string

const (
	FeatureAICategorization Feature = "ai_categorization"
	FeatureAIChat           Feature = "ai_chat"
	FeatureOCRUpload        Feature = "ocr_upload"
	FeatureReports          Feature = "reports"
	FeatureDataExport       Feature = "data_export"
	FeatureSchedulerDaily   Feature = "scheduler_daily"
	FeaturePrioritySupport  Feature = "priority_support"
)
