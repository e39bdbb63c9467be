package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefviral/internal/application/auth/dto"
	"chefviral/internal/domain/profile"
	vo "chefviral/internal/domain/profile/valueobjects"
	domainUser "chefviral/internal/domain/user"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

type fakeUserRepo struct {
	domainUser.Repository
	byEmail   map[string]*domainUser.User
	byID      map[uint]*domainUser.User
	created   []*domainUser.User
	updated   []*domainUser.User
	updateErr error
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uint) (*domainUser.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domainUser.User) error {
	u.SetDBID(uint(len(f.created) + 100))
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domainUser.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, u)
	return nil
}

type fakeTokenStore struct {
	issued     map[string]uint
	issueErr   error
	consumeErr error
	nextToken  string
}

func (f *fakeTokenStore) Issue(ctx context.Context, userID uint) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	if f.issued == nil {
		f.issued = map[string]uint{}
	}
	f.issued[f.nextToken] = userID
	return f.nextToken, nil
}

func (f *fakeTokenStore) Consume(ctx context.Context, token string) (uint, error) {
	if f.consumeErr != nil {
		return 0, f.consumeErr
	}
	userID, ok := f.issued[token]
	if !ok {
		return 0, errors.NewUnauthorizedError("link inválido ou expirado")
	}
	delete(f.issued, token)
	return userID, nil
}

type fakeLinkSender struct {
	to    string
	token string
	err   error
}

func (f *fakeLinkSender) SendLoginLinkEmail(to, token string) error {
	if f.err != nil {
		return f.err
	}
	f.to = to
	f.token = token
	return nil
}

func existingUser(t *testing.T, dbID uint, email string) *domainUser.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := domainUser.ReconstructUser(dbID, "usr_k3m9p2q7", email, nil, now, now)
	require.NoError(t, err)
	return u
}

func TestRequestLoginLink_SendsLinkToExistingAccount(t *testing.T) {
	account := existingUser(t, 7, "ze@hamburgueria.com.br")
	users := &fakeUserRepo{byEmail: map[string]*domainUser.User{"ze@hamburgueria.com.br": account}}
	tokens := &fakeTokenStore{nextToken: "tok123"}
	sender := &fakeLinkSender{}
	uc := NewRequestLoginLinkUseCase(users, tokens, sender, logger.NewNopLogger())

	err := uc.Execute(context.Background(), dto.RequestLoginLinkRequest{Email: "ze@hamburgueria.com.br"})
	require.NoError(t, err)

	assert.Empty(t, users.created, "existing account must not be recreated")
	assert.Equal(t, "ze@hamburgueria.com.br", sender.to)
	assert.Equal(t, "tok123", sender.token)
	assert.Equal(t, uint(7), tokens.issued["tok123"])
}

func TestRequestLoginLink_UnknownEmailCreatesAccount(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*domainUser.User{}}
	tokens := &fakeTokenStore{nextToken: "tok456"}
	sender := &fakeLinkSender{}
	uc := NewRequestLoginLinkUseCase(users, tokens, sender, logger.NewNopLogger())

	err := uc.Execute(context.Background(), dto.RequestLoginLinkRequest{Email: "Nova@Pizzaria.COM"})
	require.NoError(t, err)

	require.Len(t, users.created, 1)
	assert.Equal(t, "nova@pizzaria.com", users.created[0].Email(), "email is normalized before lookup")
	assert.Equal(t, "nova@pizzaria.com", sender.to)
	assert.Equal(t, users.created[0].DBID(), tokens.issued["tok456"])
}

func TestRequestLoginLink_IssueFailurePropagates(t *testing.T) {
	account := existingUser(t, 7, "ze@hamburgueria.com.br")
	users := &fakeUserRepo{byEmail: map[string]*domainUser.User{"ze@hamburgueria.com.br": account}}
	tokens := &fakeTokenStore{issueErr: errors.NewRateLimitedError("aguarde antes de pedir outro link")}
	sender := &fakeLinkSender{}
	uc := NewRequestLoginLinkUseCase(users, tokens, sender, logger.NewNopLogger())

	err := uc.Execute(context.Background(), dto.RequestLoginLinkRequest{Email: "ze@hamburgueria.com.br"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeRateLimited))
	assert.Empty(t, sender.to, "no email goes out without a token")
}

type fakeOnboardedProfileRepo struct {
	profile.Repository
	byUserID map[uint]*profile.BusinessProfile
}

func (f *fakeOnboardedProfileRepo) GetByUserID(ctx context.Context, userID uint) (*profile.BusinessProfile, error) {
	return f.byUserID[userID], nil
}

type fakeSessionIssuer struct {
	token string
	err   error
}

func (f *fakeSessionIssuer) Generate(userID uint, userSID, email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func (f *fakeSessionIssuer) ExpiresInSeconds() int64 { return 259200 }

func onboardedProfile(t *testing.T, userID uint) *profile.BusinessProfile {
	t.Helper()
	p, err := profile.NewBusinessProfile(
		userID, "Pizzaria da Nona", "pizzaria-da-nona-t5r2", "Campinas", "",
		vo.CategoryPizzaria, vo.ToneCasual, "19944443333",
		vo.NewTrialSubscription(7),
	)
	require.NoError(t, err)
	return p
}

func TestVerifyLoginToken_IssuesSession(t *testing.T) {
	account := existingUser(t, 7, "nona@pizzaria.com")
	users := &fakeUserRepo{byID: map[uint]*domainUser.User{7: account}}
	tokens := &fakeTokenStore{issued: map[string]uint{"tok123": 7}}
	profiles := &fakeOnboardedProfileRepo{byUserID: map[uint]*profile.BusinessProfile{7: onboardedProfile(t, 7)}}
	sessions := &fakeSessionIssuer{token: "signed.jwt.here"}
	uc := NewVerifyLoginTokenUseCase(users, profiles, tokens, sessions, logger.NewNopLogger())

	session, err := uc.Execute(context.Background(), dto.VerifyLoginTokenRequest{Token: "tok123"})
	require.NoError(t, err)

	assert.Equal(t, "signed.jwt.here", session.AccessToken)
	assert.Equal(t, int64(259200), session.ExpiresIn)
	assert.Equal(t, "usr_k3m9p2q7", session.User.ID)
	assert.Equal(t, "nona@pizzaria.com", session.User.Email)
	assert.True(t, session.User.OnboardingComplete)

	require.Len(t, users.updated, 1)
	assert.NotNil(t, users.updated[0].LastLoginAt())

	_, empty := tokens.issued["tok123"]
	assert.False(t, empty, "token is single use")
}

func TestVerifyLoginToken_NewAccountHasOnboardingPending(t *testing.T) {
	account := existingUser(t, 7, "nova@pizzaria.com")
	users := &fakeUserRepo{byID: map[uint]*domainUser.User{7: account}}
	tokens := &fakeTokenStore{issued: map[string]uint{"tok789": 7}}
	profiles := &fakeOnboardedProfileRepo{byUserID: map[uint]*profile.BusinessProfile{}}
	uc := NewVerifyLoginTokenUseCase(users, profiles, tokens, &fakeSessionIssuer{token: "jwt"}, logger.NewNopLogger())

	session, err := uc.Execute(context.Background(), dto.VerifyLoginTokenRequest{Token: "tok789"})
	require.NoError(t, err)
	assert.False(t, session.User.OnboardingComplete)
}

func TestVerifyLoginToken_RejectsUnknownToken(t *testing.T) {
	uc := NewVerifyLoginTokenUseCase(
		&fakeUserRepo{}, &fakeOnboardedProfileRepo{}, &fakeTokenStore{},
		&fakeSessionIssuer{}, logger.NewNopLogger(),
	)

	_, err := uc.Execute(context.Background(), dto.VerifyLoginTokenRequest{Token: "forged"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnauthorized))
}

func TestVerifyLoginToken_MissingAccountIsUnauthorized(t *testing.T) {
	tokens := &fakeTokenStore{issued: map[string]uint{"tok123": 42}}
	uc := NewVerifyLoginTokenUseCase(
		&fakeUserRepo{byID: map[uint]*domainUser.User{}}, &fakeOnboardedProfileRepo{}, tokens,
		&fakeSessionIssuer{}, logger.NewNopLogger(),
	)

	_, err := uc.Execute(context.Background(), dto.VerifyLoginTokenRequest{Token: "tok123"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnauthorized))
}

func TestVerifyLoginToken_LoginTimestampFailureIsNotFatal(t *testing.T) {
	account := existingUser(t, 7, "nona@pizzaria.com")
	users := &fakeUserRepo{
		byID:      map[uint]*domainUser.User{7: account},
		updateErr: errors.NewInternalError("db timeout"),
	}
	tokens := &fakeTokenStore{issued: map[string]uint{"tok123": 7}}
	uc := NewVerifyLoginTokenUseCase(users, &fakeOnboardedProfileRepo{}, tokens, &fakeSessionIssuer{token: "jwt"}, logger.NewNopLogger())

	session, err := uc.Execute(context.Background(), dto.VerifyLoginTokenRequest{Token: "tok123"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", session.AccessToken)
}
