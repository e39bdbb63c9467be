package usecases

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"chefviral/internal/application/menu/dto"
	"chefviral/internal/domain/analytics"
	"chefviral/internal/domain/catalog"
	"chefviral/internal/domain/profile"
	"chefviral/internal/shared/constants"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

// recordTimeout bounds the background insert after the handler has
// already answered 202.
const recordTimeout = 10 * time.Second

// TrackEventUseCase records public page interactions. The write is
// fire-and-forget: the caller gets an answer before the insert runs, and
// insert failures are only logged.
type TrackEventUseCase struct {
	profileRepo   profile.Repository
	productRepo   catalog.Repository
	analyticsRepo analytics.Repository
	logger        logger.Interface
}

// NewTrackEventUseCase creates the use case.
func NewTrackEventUseCase(
	profileRepo profile.Repository,
	productRepo catalog.Repository,
	analyticsRepo analytics.Repository,
	logger logger.Interface,
) *TrackEventUseCase {
	return &TrackEventUseCase{
		profileRepo:   profileRepo,
		productRepo:   productRepo,
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

// Execute validates the slug and event type, schedules the insert in the
// background and, for WhatsApp clicks, returns the prefilled deep link.
func (uc *TrackEventUseCase) Execute(ctx context.Context, slug string, request dto.TrackEventRequest) (*dto.TrackEventResponse, error) {
	kind := analytics.EventKind(request.Type)
	if !kind.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("tipo de evento desconhecido: %s", request.Type))
	}

	businessProfile, err := uc.profileRepo.GetBySlug(ctx, slug)
	if err != nil {
		uc.logger.Errorw("failed to resolve slug for event", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to resolve slug: %w", err)
	}
	if businessProfile == nil {
		return nil, errors.NewNotFoundError("cardápio não encontrado")
	}

	event, err := analytics.NewEvent(businessProfile.DBID(), kind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	go func() {
		recordCtx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := uc.analyticsRepo.Record(recordCtx, event); err != nil {
			uc.logger.Warnw("failed to record analytics event",
				"slug", slug,
				"kind", kind,
				"error", err,
			)
		}
	}()

	response := &dto.TrackEventResponse{}
	if kind == analytics.EventClickWhatsApp {
		response.WhatsAppLink = uc.buildWhatsAppLink(ctx, businessProfile, request.ProductID)
	}
	return response, nil
}

func (uc *TrackEventUseCase) buildWhatsAppLink(ctx context.Context, businessProfile *profile.BusinessProfile, productSID string) string {
	message := fmt.Sprintf("Olá, %s! Vi o cardápio online e quero fazer um pedido.", businessProfile.Name())
	if productSID != "" {
		if product, err := uc.productRepo.GetBySID(ctx, productSID); err == nil &&
			product != nil && product.UserID() == businessProfile.UserID() {
			message = fmt.Sprintf("Olá, %s! Vi o cardápio online e quero pedir: %s.", businessProfile.Name(), product.Name())
		}
	}
	return constants.WhatsAppLinkPrefix + businessProfile.WhatsAppDigits() + "?text=" + url.QueryEscape(message)
}
