package plan

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Plan describes a subscription plan and its resource/feature constraints.
type Plan struct {
	ID          string
	Name        string
	Description string
	Tier        Tier
	Limits      map[Resource]int64 // -1 represents unlimited
	Features    []Feature
}

// HasFeature reports whether the plan includes the given feature.
func (p Plan) HasFeature(f Feature) bool {
	return slices.Contains(p.Features, f)
}

// LimitOf returns the plan's limit for a resource. Resources the plan does
// not mention are unlimited: the plan simply has nothing to say about them.
func (p Plan) LimitOf(res Resource) int64 {
	limit, ok := p.Limits[res]
	if !ok {
		return Unlimited
	}
	return limit
}

// Catalog is the set of plans available to the application, keyed by name.
// It is treated as immutable after construction; lookups never mutate it.
type Catalog struct {
	plans  map[string]Plan
	byTier map[Tier]string
}

// NewCatalog builds a Catalog from the given plans and validates it.
// The input map is deep-copied so later mutation by the caller has no effect.
func NewCatalog(plans map[string]Plan) (Catalog, error) {
	plansCopy := make(map[string]Plan, len(plans))
	byTier := make(map[Tier]string, len(plans))

	for name, p := range plans {
		if p.Name == "" {
			p.Name = name
		}
		plansCopy[name] = Plan{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Tier:        p.Tier,
			Limits:      maps.Clone(p.Limits),
			Features:    slices.Clone(p.Features),
		}
	}

	c := Catalog{plans: plansCopy, byTier: byTier}
	if err := c.validate(); err != nil {
		return Catalog{}, err
	}

	for name, p := range plansCopy {
		byTier[p.Tier] = name
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on invalid configuration.
// Intended for static catalogs defined at startup.
func MustCatalog(plans map[string]Plan) Catalog {
	c, err := NewCatalog(plans)
	if err != nil {
		panic(fmt.Sprintf("plan: invalid catalog: %v", err))
	}
	return c
}

// TierOf returns the tier level of the named plan. Unknown plan names resolve
// to TierFree rather than an error: a typo at a call site must degrade to the
// least-privilege plan, never crash an evaluation or lock the UI.
func (c Catalog) TierOf(name string) Tier {
	p, ok := c.plans[name]
	if !ok {
		return TierFree
	}
	return p.Tier
}

// ByName returns the named plan.
func (c Catalog) ByName(name string) (Plan, bool) {
	p, ok := c.plans[name]
	return p, ok
}

// ByTier returns the plan at the given tier level.
func (c Catalog) ByTier(t Tier) (Plan, bool) {
	name, ok := c.byTier[t]
	if !ok {
		return Plan{}, false
	}
	return c.plans[name], true
}

// FreePlan returns the tier-0 plan, the implicit plan of users without a
// subscription record. A validated catalog always has one.
func (c Catalog) FreePlan() Plan {
	p, _ := c.ByTier(TierFree)
	return p
}

// Names returns all plan names in ascending tier order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.plans))
	for t := Tier(0); int(t) < len(c.plans); t++ {
		if name, ok := c.byTier[t]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Len returns the number of plans in the catalog.
func (c Catalog) Len() int {
	return len(c.plans)
}

// validate enforces the catalog invariants: at least one plan, exactly one
// plan per tier level, tier levels dense starting at 0, no negative limits
// other than the Unlimited sentinel.
func (c Catalog) validate() error {
	if len(c.plans) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[Tier]string, len(c.plans))
	for name, p := range c.plans {
		if p.Name != "" && p.Name != name {
			return errors.Join(ErrInvalidCatalog,
				fmt.Errorf("plan name mismatch: map key %q != plan.Name %q", name, p.Name))
		}
		if p.Tier < 0 {
			return errors.Join(ErrInvalidCatalog,
				fmt.Errorf("plan %q has negative tier level %d", name, p.Tier))
		}
		if other, dup := seen[p.Tier]; dup {
			return errors.Join(ErrInvalidCatalog,
				fmt.Errorf("plans %q and %q share tier level %d", other, name, p.Tier))
		}
		seen[p.Tier] = name

		for res, limit := range p.Limits {
			if limit < 0 && limit != Unlimited {
				return errors.Join(ErrInvalidCatalog,
					fmt.Errorf("plan %q has invalid limit %d for resource %q", name, limit, res))
			}
		}
	}

	for t := Tier(0); int(t) < len(c.plans); t++ {
		if _, ok := seen[t]; !ok {
			return errors.Join(ErrInvalidCatalog,
				fmt.Errorf("tier levels are not dense: missing tier %d", t))
		}
	}

	return nil
}
