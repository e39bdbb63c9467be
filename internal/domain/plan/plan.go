// Package plan holds the static subscription tier table. Every mutating
// operation (adding a product, running a generation) consults this table
// before performing the write.
package plan

import "chefviral/internal/domain/content"

// Tier identifies a subscription level.
type Tier string

const (
	TierFree   Tier = "FREE"
	TierSolo   Tier = "SOLO"
	TierPro    Tier = "PRO"
	TierAgency Tier = "AGENCY"
)

// Unlimited is the sentinel used for tiers without a practical cap.
const Unlimited = 9999

// ValidTiers enumerates the known tiers.
var ValidTiers = map[Tier]bool{
	TierFree:   true,
	TierSolo:   true,
	TierPro:    true,
	TierAgency: true,
}

// IsValid reports whether t is a known tier.
func (t Tier) IsValid() bool {
	return ValidTiers[t]
}

// Limits are the numeric caps and enabled generation modes for one tier.
type Limits struct {
	MaxProducts    int
	MaxGenerations int
	Modes          []content.Mode
}

// AllowsMode reports whether the tier's limits include the given mode.
func (l Limits) AllowsMode(mode content.Mode) bool {
	for _, m := range l.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// Config describes one tier: display name, monthly price in BRL, and limits.
type Config struct {
	DisplayName  string
	MonthlyPrice int
	Limits       Limits
}

var table = map[Tier]Config{
	TierFree: {
		DisplayName:  "Trial Grátis",
		MonthlyPrice: 0,
		Limits: Limits{
			MaxProducts:    5,
			MaxGenerations: 5,
			Modes:          []content.Mode{content.ModeWeeklyPack},
		},
	},
	TierSolo: {
		DisplayName:  "Plano Solo",
		MonthlyPrice: 29,
		Limits: Limits{
			MaxProducts:    20,
			MaxGenerations: 10,
			Modes:          []content.Mode{content.ModeWeeklyPack, content.ModeDailyOffer},
		},
	},
	TierPro: {
		DisplayName:  "Plano Pro",
		MonthlyPrice: 59,
		Limits: Limits{
			MaxProducts:    Unlimited,
			MaxGenerations: Unlimited,
			Modes:          []content.Mode{content.ModeWeeklyPack, content.ModeDailyOffer, content.ModeCustomerReply},
		},
	},
	TierAgency: {
		DisplayName:  "Plano Agency",
		MonthlyPrice: 99,
		Limits: Limits{
			MaxProducts:    Unlimited,
			MaxGenerations: Unlimited,
			Modes:          []content.Mode{content.ModeWeeklyPack, content.ModeDailyOffer, content.ModeCustomerReply},
		},
	},
}

// ConfigFor returns the configuration for a tier. Unknown tiers fall back to
// FREE so a corrupted subscription row can never unlock paid features.
func ConfigFor(tier Tier) Config {
	if cfg, ok := table[tier]; ok {
		return cfg
	}
	return table[TierFree]
}

// Entry pairs a tier with its configuration.
type Entry struct {
	Tier   Tier
	Config Config
}

// All returns the tier table in ascending price order.
func All() []Entry {
	ordered := []Tier{TierFree, TierSolo, TierPro, TierAgency}
	out := make([]Entry, 0, len(ordered))
	for _, t := range ordered {
		out = append(out, Entry{Tier: t, Config: table[t]})
	}
	return out
}
