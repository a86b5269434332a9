package plan_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajisdzalparo/finsmart-entitlement/pkg/plan"
)

func testPlans() map[string]plan.Plan {
	return map[string]plan.Plan{
		"free": {
			ID:   "plan_free",
			Tier: plan.TierFree,
			Limits: map[plan.Resource]int64{
				plan.ResourceTransactions: 100,
				plan.ResourceGoals:        3,
				plan.ResourceCategories:   5,
			},
		},
		"premium": {
			ID:   "plan_premium",
			Tier: plan.TierPremium,
			Limits: map[plan.Resource]int64{
				plan.ResourceTransactions: plan.Unlimited,
				plan.ResourceGoals:        20,
				plan.ResourceCategories:   plan.Unlimited,
			},
			Features: []plan.Feature{plan.FeatureAIChat, plan.FeatureDataExport},
		},
		"enterprise": {
			ID:   "plan_enterprise",
			Tier: plan.TierEnterprise,
			Limits: map[plan.Resource]int64{
				plan.ResourceTransactions: plan.Unlimited,
				plan.ResourceGoals:        plan.Unlimited,
				plan.ResourceCategories:   plan.Unlimited,
			},
			Features: []plan.Feature{plan.FeatureAIChat, plan.FeatureSchedulerDaily},
		},
	}
}

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("valid catalog", func(t *testing.T) {
		t.Parallel()

		c, err := plan.NewCatalog(testPlans())
		require.NoError(t, err)
		assert.Equal(t, 3, c.Len())
		assert.Equal(t, []string{"free", "premium", "enterprise"}, c.Names())
	})

	t.Run("fills plan name from map key", func(t *testing.T) {
		t.Parallel()

		c, err := plan.NewCatalog(testPlans())
		require.NoError(t, err)

		p, ok := c.ByName("premium")
		require.True(t, ok)
		assert.Equal(t, "premium", p.Name)
	})

	t.Run("empty catalog", func(t *testing.T) {
		t.Parallel()

		_, err := plan.NewCatalog(nil)
		assert.ErrorIs(t, err, plan.ErrEmptyCatalog)
	})

	t.Run("duplicate tier level", func(t *testing.T) {
		t.Parallel()

		plans := testPlans()
		p := plans["premium"]
		p.Tier = plan.TierFree
		plans["premium"] = p

		_, err := plan.NewCatalog(plans)
		assert.ErrorIs(t, err, plan.ErrInvalidCatalog)
	})

	t.Run("non-dense tier levels", func(t *testing.T) {
		t.Parallel()

		plans := testPlans()
		delete(plans, "premium")

		_, err := plan.NewCatalog(plans)
		assert.ErrorIs(t, err, plan.ErrInvalidCatalog)
	})

	t.Run("negative limit other than unlimited", func(t *testing.T) {
		t.Parallel()

		plans := testPlans()
		p := plans["free"]
		p.Limits = map[plan.Resource]int64{plan.ResourceGoals: -2}
		plans["free"] = p

		_, err := plan.NewCatalog(plans)
		assert.ErrorIs(t, err, plan.ErrInvalidCatalog)
	})

	t.Run("name mismatch", func(t *testing.T) {
		t.Parallel()

		plans := testPlans()
		p := plans["free"]
		p.Name = "basic"
		plans["free"] = p

		_, err := plan.NewCatalog(plans)
		assert.ErrorIs(t, err, plan.ErrInvalidCatalog)
	})

	t.Run("deep copies input", func(t *testing.T) {
		t.Parallel()

		plans := testPlans()
		c, err := plan.NewCatalog(plans)
		require.NoError(t, err)

		plans["free"].Limits[plan.ResourceGoals] = 999

		p, ok := c.ByName("free")
		require.True(t, ok)
		assert.Equal(t, int64(3), p.LimitOf(plan.ResourceGoals))
	})
}

func TestCatalog_TierOf(t *testing.T) {
	t.Parallel()

	c := plan.MustCatalog(testPlans())

	assert.Equal(t, plan.TierFree, c.TierOf("free"))
	assert.Equal(t, plan.TierPremium, c.TierOf("premium"))
	assert.Equal(t, plan.TierEnterprise, c.TierOf("enterprise"))

	t.Run("unknown plan name resolves to free tier", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, plan.TierFree, c.TierOf("premum")) // typo must not lock anyone out
		assert.Equal(t, plan.TierFree, c.TierOf(""))
	})
}

func TestCatalog_ByTier(t *testing.T) {
	t.Parallel()

	c := plan.MustCatalog(testPlans())

	p, ok := c.ByTier(plan.TierPremium)
	require.True(t, ok)
	assert.Equal(t, "premium", p.Name)

	_, ok = c.ByTier(plan.Tier(99))
	assert.False(t, ok)

	assert.Equal(t, "free", c.FreePlan().Name)
}

func TestPlan_LimitOf(t *testing.T) {
	t.Parallel()

	c := plan.MustCatalog(testPlans())
	p, _ := c.ByName("premium")

	assert.Equal(t, int64(20), p.LimitOf(plan.ResourceGoals))
	assert.Equal(t, plan.Unlimited, p.LimitOf(plan.ResourceTransactions))

	t.Run("unmentioned resource is unlimited", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, plan.Unlimited, p.LimitOf(plan.Resource("widgets")))
	})
}

func TestPlan_HasFeature(t *testing.T) {
	t.Parallel()

	c := plan.MustCatalog(testPlans())
	p, _ := c.ByName("premium")

	assert.True(t, p.HasFeature(plan.FeatureAIChat))
	assert.False(t, p.HasFeature(plan.FeatureSchedulerDaily))
}

func TestInMemSource(t *testing.T) {
	t.Parallel()

	src := plan.NewInMemSource(testPlans())

	c, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	t.Run("invalid plans fail on load", func(t *testing.T) {
		t.Parallel()

		_, err := plan.NewInMemSource(nil).Load(context.Background())
		assert.ErrorIs(t, err, plan.ErrEmptyCatalog)
	})
}
