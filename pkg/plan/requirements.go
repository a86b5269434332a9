package plan

// Requirements maps feature keys to the minimum plan tier required to use
// them. Many features may map to the same tier.
// Not thread-safe: register all requirements at startup only.
type Requirements map[Feature]Tier

// NewRequirements returns a new, empty Requirements registry.
func NewRequirements() Requirements {
	return make(Requirements)
}

// Register sets or replaces the minimum tier for a feature.
func (r Requirements) Register(f Feature, minTier Tier) {
	r[f] = minTier
}

// RequiredTier returns the minimum tier for a feature. Unregistered features
// resolve to TierFree so an unknown key can never block a surface; callers
// that care should log the miss.
func (r Requirements) RequiredTier(f Feature) Tier {
	t, ok := r[f]
	if !ok {
		return TierFree
	}
	return t
}

// Known reports whether a feature key is registered. Useful for callers that
// want to log probes for unregistered keys.
func (r Requirements) Known(f Feature) bool {
	_, ok := r[f]
	return ok
}
