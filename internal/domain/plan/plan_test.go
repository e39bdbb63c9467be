package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefviral/internal/domain/content"
)

func TestConfigFor_KnownTiers(t *testing.T) {
	tests := []struct {
		name          string
		tier          Tier
		wantName      string
		wantPrice     int
		wantProducts  int
		wantGens      int
		wantModeCount int
	}{
		{"free", TierFree, "Trial Grátis", 0, 5, 5, 1},
		{"solo", TierSolo, "Plano Solo", 29, 20, 10, 2},
		{"pro", TierPro, "Plano Pro", 59, Unlimited, Unlimited, 3},
		{"agency", TierAgency, "Plano Agency", 99, Unlimited, Unlimited, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := ConfigFor(tc.tier)
			assert.Equal(t, tc.wantName, cfg.DisplayName)
			assert.Equal(t, tc.wantPrice, cfg.MonthlyPrice)
			assert.Equal(t, tc.wantProducts, cfg.Limits.MaxProducts)
			assert.Equal(t, tc.wantGens, cfg.Limits.MaxGenerations)
			assert.Len(t, cfg.Limits.Modes, tc.wantModeCount)
		})
	}
}

func TestConfigFor_UnknownTierFallsBackToFree(t *testing.T) {
	cfg := ConfigFor(Tier("ENTERPRISE"))

	assert.Equal(t, ConfigFor(TierFree), cfg)
}

func TestLimits_AllowsMode(t *testing.T) {
	free := ConfigFor(TierFree).Limits
	pro := ConfigFor(TierPro).Limits

	assert.True(t, free.AllowsMode(content.ModeWeeklyPack))
	assert.False(t, free.AllowsMode(content.ModeDailyOffer))
	assert.False(t, free.AllowsMode(content.ModeCustomerReply))

	assert.True(t, pro.AllowsMode(content.ModeWeeklyPack))
	assert.True(t, pro.AllowsMode(content.ModeDailyOffer))
	assert.True(t, pro.AllowsMode(content.ModeCustomerReply))
}

func TestAll_OrderedByPrice(t *testing.T) {
	entries := All()
	require.Len(t, entries, 4)

	prev := -1
	for _, e := range entries {
		assert.GreaterOrEqual(t, e.Config.MonthlyPrice, prev)
		prev = e.Config.MonthlyPrice
	}
	assert.Equal(t, TierFree, entries[0].Tier)
	assert.Equal(t, TierAgency, entries[3].Tier)
}

func TestTier_IsValid(t *testing.T) {
	assert.True(t, TierFree.IsValid())
	assert.True(t, TierAgency.IsValid())
	assert.False(t, Tier("GOLD").IsValid())
	assert.False(t, Tier("").IsValid())
}
