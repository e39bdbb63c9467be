package usecases

import (
	"context"
	"fmt"

	"chefviral/internal/application/generation/dto"
	"chefviral/internal/domain/catalog"
	"chefviral/internal/domain/content"
	"chefviral/internal/domain/plan"
	"chefviral/internal/domain/profile"
	"chefviral/internal/shared/biztime"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

// GenerateContentUseCase runs the full generation pipeline: plan gates,
// monthly quota, the model calls and history persistence.
type GenerateContentUseCase struct {
	profileRepo profile.Repository
	productRepo catalog.Repository
	contentRepo content.Repository
	generator   CampaignGenerator
	logger      logger.Interface
}

// NewGenerateContentUseCase creates the use case.
func NewGenerateContentUseCase(
	profileRepo profile.Repository,
	productRepo catalog.Repository,
	contentRepo content.Repository,
	generator CampaignGenerator,
	logger logger.Interface,
) *GenerateContentUseCase {
	return &GenerateContentUseCase{
		profileRepo: profileRepo,
		productRepo: productRepo,
		contentRepo: contentRepo,
		generator:   generator,
		logger:      logger,
	}
}

// Execute runs one generation for the tenant. Mode and quota gates fire
// before any model call. Persistence failures of individual items are
// logged and the items still returned.
func (uc *GenerateContentUseCase) Execute(ctx context.Context, userID uint, request dto.GenerateContentRequest) (*dto.GenerateContentResponse, error) {
	mode := content.Mode(request.Mode)
	if !mode.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("modo de geração desconhecido: %s", request.Mode))
	}

	businessProfile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if businessProfile == nil {
		return nil, errors.NewNotFoundError("complete o cadastro antes de gerar conteúdo")
	}

	subscription := businessProfile.Subscription()
	limits := subscription.Limits()

	if !limits.AllowsMode(mode) {
		return nil, errors.NewPlanLimitError(
			fmt.Sprintf("o modo %s não está incluído no plano %s", mode, plan.ConfigFor(subscription.Tier).DisplayName),
			string(subscription.Tier),
		)
	}

	used, err := uc.contentRepo.CountItemsSince(ctx, userID, biztime.StartOfMonth(biztime.NowUTC()))
	if err != nil {
		uc.logger.Errorw("failed to count generations", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to count generations: %w", err)
	}
	if used >= limits.MaxGenerations {
		uc.logger.Infow("generation quota reached",
			"user_id", userID,
			"used", used,
			"max", limits.MaxGenerations,
			"tier", subscription.Tier,
		)
		return nil, errors.NewPlanLimitError(
			fmt.Sprintf("limite de %d gerações mensais atingido no seu plano", limits.MaxGenerations),
			string(subscription.Tier),
		)
	}

	products, err := uc.productRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list products", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	cmd := CampaignCommand{
		BusinessName:  businessProfile.Name(),
		City:          businessProfile.City(),
		Category:      businessProfile.Category(),
		Tone:          businessProfile.Tone(),
		Phone:         businessProfile.Phone(),
		Mode:          mode,
		CustomContext: request.CustomContext,
	}
	for _, p := range products {
		cmd.Products = append(cmd.Products, CampaignProduct{
			Name:        p.Name(),
			Category:    p.Category(),
			Price:       p.Price(),
			Description: p.Description(),
		})
	}

	items, err := uc.generator.GenerateCampaign(ctx, cmd)
	if err != nil {
		return nil, err
	}

	runSID := content.NewRunSID()
	responses := make([]dto.ContentItemResponse, 0, len(items))
	saved := 0
	for _, item := range items {
		generated, err := content.NewGeneratedContent(userID, runSID, item.Kind, item.Hook, item.Caption, item.CTA, item.Hashtags)
		if err != nil {
			uc.logger.Warnw("skipping malformed generated item", "kind", item.Kind, "error", err)
			continue
		}
		generated.WithScript(item.Script).WithVisualPrompt(item.Suggestion)
		if item.ImageBase64 != "" {
			generated.AttachImage(item.ImageBase64)
		}

		if err := uc.contentRepo.Save(ctx, generated); err != nil {
			uc.logger.Warnw("failed to persist generated item, returning it anyway",
				"content_sid", generated.SID(),
				"error", err,
			)
		} else {
			saved++
		}
		responses = append(responses, dto.ToContentItemResponse(generated))
	}

	uc.logger.Infow("generation completed",
		"user_id", userID,
		"mode", mode,
		"items", len(responses),
	)

	remaining := limits.MaxGenerations - used - saved
	if remaining < 0 {
		remaining = 0
	}
	return &dto.GenerateContentResponse{
		Items:                responses,
		GenerationsUsed:      used + saved,
		GenerationsRemaining: remaining,
	}, nil
}
