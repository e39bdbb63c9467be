package usecases

import (
	"context"

	"chefviral/internal/application/billing/dto"
	"chefviral/internal/domain/plan"
	"chefviral/internal/shared/config"
)

// GetPlansUseCase exposes the tier table for the pricing page. The tier
// limits come from the static plan table; only the payment provider
// identifiers are configuration.
type GetPlansUseCase struct {
	billing config.BillingConfig
}

// NewGetPlansUseCase creates the use case.
func NewGetPlansUseCase(billing config.BillingConfig) *GetPlansUseCase {
	return &GetPlansUseCase{billing: billing}
}

// Execute returns all tiers in ascending price order.
func (uc *GetPlansUseCase) Execute(_ context.Context) *dto.PlansResponse {
	priceIDs := map[plan.Tier]string{
		plan.TierSolo:   uc.billing.PriceIDSolo,
		plan.TierPro:    uc.billing.PriceIDPro,
		plan.TierAgency: uc.billing.PriceIDAgency,
	}

	plans := make([]dto.PlanResponse, 0)
	for _, entry := range plan.All() {
		modes := make([]string, 0, len(entry.Config.Limits.Modes))
		for _, m := range entry.Config.Limits.Modes {
			modes = append(modes, string(m))
		}
		plans = append(plans, dto.PlanResponse{
			Tier:           string(entry.Tier),
			DisplayName:    entry.Config.DisplayName,
			MonthlyPrice:   entry.Config.MonthlyPrice,
			MaxProducts:    entry.Config.Limits.MaxProducts,
			MaxGenerations: entry.Config.Limits.MaxGenerations,
			Modes:          modes,
			PriceID:        priceIDs[entry.Tier],
		})
	}

	return &dto.PlansResponse{
		Plans:          plans,
		PublishableKey: uc.billing.PublishableKey,
		TrialDays:      uc.billing.TrialDays,
	}
}
