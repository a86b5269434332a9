package plan_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajisdzalparo/finsmart-entitlement/pkg/plan"
)

const catalogYAML = `
plans:
  free:
    id: plan_free
    tier: 0
    limits:
      transactions: 100
      goals: 3
      categories: 5
  premium:
    id: plan_premium
    tier: 1
    limits:
      transactions: null
      goals: 20
      categories: null
    features:
      - ai_chat
      - data_export
  enterprise:
    id: plan_enterprise
    tier: 2
    limits:
      transactions: null
      goals: null
      categories: null
    features:
      - ai_chat
      - scheduler_daily
`

func TestYAMLSource_Load(t *testing.T) {
	t.Parallel()

	t.Run("parses catalog with null meaning unlimited", func(t *testing.T) {
		t.Parallel()

		src := plan.NewYAMLSource(strings.NewReader(catalogYAML))
		c, err := src.Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 3, c.Len())

		premium, ok := c.ByName("premium")
		require.True(t, ok)
		assert.Equal(t, plan.TierPremium, premium.Tier)
		assert.Equal(t, plan.Unlimited, premium.LimitOf(plan.ResourceTransactions))
		assert.Equal(t, int64(20), premium.LimitOf(plan.ResourceGoals))
		assert.True(t, premium.HasFeature(plan.FeatureAIChat))

		free, ok := c.ByName("free")
		require.True(t, ok)
		assert.Equal(t, int64(5), free.LimitOf(plan.ResourceCategories))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		src := plan.NewYAMLSource(strings.NewReader("plans: [not a map"))
		_, err := src.Load(context.Background())
		assert.ErrorIs(t, err, plan.ErrFailedToLoadCatalog)
	})

	t.Run("valid yaml with invalid catalog", func(t *testing.T) {
		t.Parallel()

		src := plan.NewYAMLSource(strings.NewReader(`
plans:
  free:
    tier: 0
  premium:
    tier: 2
`))
		_, err := src.Load(context.Background())
		assert.ErrorIs(t, err, plan.ErrInvalidCatalog)
	})
}

func TestYAMLFileSource_Load(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plans.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o600))

	src := plan.NewYAMLFileSource(path)

	c, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	t.Run("file source is reusable", func(t *testing.T) {
		t.Parallel()

		c, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, c.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := plan.NewYAMLFileSource(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
		assert.ErrorIs(t, err, plan.ErrFailedToLoadCatalog)
	})
}
