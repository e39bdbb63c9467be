package usecases

import (
	"context"
	"fmt"

	"chefviral/internal/application/auth/dto"
	"chefviral/internal/domain/profile"
	domainUser "chefviral/internal/domain/user"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

// LoginTokenConsumer exchanges a single-use token for the user ID it was
// issued to.
type LoginTokenConsumer interface {
	Consume(ctx context.Context, token string) (uint, error)
}

// SessionIssuer signs session tokens.
type SessionIssuer interface {
	Generate(userID uint, userSID, email string) (string, error)
	ExpiresInSeconds() int64
}

// VerifyLoginTokenUseCase exchanges a login token for a signed session.
type VerifyLoginTokenUseCase struct {
	userRepo    domainUser.Repository
	profileRepo profile.Repository
	tokens      LoginTokenConsumer
	sessions    SessionIssuer
	logger      logger.Interface
}

// NewVerifyLoginTokenUseCase creates the use case.
func NewVerifyLoginTokenUseCase(
	userRepo domainUser.Repository,
	profileRepo profile.Repository,
	tokens LoginTokenConsumer,
	sessions SessionIssuer,
	logger logger.Interface,
) *VerifyLoginTokenUseCase {
	return &VerifyLoginTokenUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
		sessions:    sessions,
		logger:      logger,
	}
}

// Execute consumes the token, records the login and issues a session.
func (uc *VerifyLoginTokenUseCase) Execute(ctx context.Context, request dto.VerifyLoginTokenRequest) (*dto.SessionResponse, error) {
	userID, err := uc.tokens.Consume(ctx, request.Token)
	if err != nil {
		return nil, err
	}

	account, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load account after token consume", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account == nil {
		return nil, errors.NewUnauthorizedError("conta não encontrada")
	}

	account.TouchLogin()
	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Warnw("failed to record login time", "user_sid", account.SID(), "error", err)
	}

	accessToken, err := uc.sessions.Generate(account.DBID(), account.SID(), account.Email())
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	businessProfile, err := uc.profileRepo.GetByUserID(ctx, account.DBID())
	if err != nil {
		uc.logger.Warnw("failed to check onboarding state", "user_sid", account.SID(), "error", err)
	}

	uc.logger.Infow("login verified", "user_sid", account.SID())
	return &dto.SessionResponse{
		AccessToken: accessToken,
		ExpiresIn:   uc.sessions.ExpiresInSeconds(),
		User: dto.UserInfo{
			ID:                 account.SID(),
			Email:              account.Email(),
			OnboardingComplete: businessProfile != nil,
		},
	}, nil
}
