package usecases

import (
	"context"
	"fmt"

	"chefviral/internal/application/auth/dto"
	domainUser "chefviral/internal/domain/user"
	"chefviral/internal/shared/logger"
)

// LoginTokenIssuer issues single-use login tokens bound to a user ID.
type LoginTokenIssuer interface {
	Issue(ctx context.Context, userID uint) (string, error)
}

// LoginLinkSender delivers a login link to an email address.
type LoginLinkSender interface {
	SendLoginLinkEmail(to, token string) error
}

// RequestLoginLinkUseCase handles passwordless sign-in requests. Unknown
// emails get an account created on the fly; there is no separate signup.
type RequestLoginLinkUseCase struct {
	userRepo domainUser.Repository
	tokens   LoginTokenIssuer
	sender   LoginLinkSender
	logger   logger.Interface
}

// NewRequestLoginLinkUseCase creates the use case.
func NewRequestLoginLinkUseCase(
	userRepo domainUser.Repository,
	tokens LoginTokenIssuer,
	sender LoginLinkSender,
	logger logger.Interface,
) *RequestLoginLinkUseCase {
	return &RequestLoginLinkUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		sender:   sender,
		logger:   logger,
	}
}

// Execute finds or creates the account and emails it a login link.
func (uc *RequestLoginLinkUseCase) Execute(ctx context.Context, request dto.RequestLoginLinkRequest) error {
	email := domainUser.NormalizeEmail(request.Email)

	account, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to look up account", "email", email, "error", err)
		return fmt.Errorf("failed to look up account: %w", err)
	}

	if account == nil {
		account, err = domainUser.NewUser(email)
		if err != nil {
			return err
		}
		if err := uc.userRepo.Create(ctx, account); err != nil {
			uc.logger.Errorw("failed to create account", "email", email, "error", err)
			return fmt.Errorf("failed to create account: %w", err)
		}
		uc.logger.Infow("account created for first login", "user_sid", account.SID())
	}

	token, err := uc.tokens.Issue(ctx, account.DBID())
	if err != nil {
		return err
	}

	if err := uc.sender.SendLoginLinkEmail(account.Email(), token); err != nil {
		uc.logger.Errorw("failed to send login link", "user_sid", account.SID(), "error", err)
		return fmt.Errorf("failed to send login link: %w", err)
	}

	uc.logger.Infow("login link sent", "user_sid", account.SID())
	return nil
}
