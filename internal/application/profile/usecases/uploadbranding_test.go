package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefviral/internal/application/profile/dto"
	"chefviral/internal/domain/profile"
	vo "chefviral/internal/domain/profile/valueobjects"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

type fakeProfileRepo struct {
	profile.Repository
	profiles map[uint]*profile.BusinessProfile
	updates  int
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uint) (*profile.BusinessProfile, error) {
	return f.profiles[userID], nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, p *profile.BusinessProfile) error {
	f.updates++
	return nil
}

type fakeBrandingStore struct {
	saved map[string][]byte
}

func (f *fakeBrandingStore) SaveBrandingAsset(userSID, slot string, data []byte) (string, error) {
	if f.saved == nil {
		f.saved = map[string][]byte{}
	}
	f.saved[slot] = data
	return "/public/assets/" + userSID + "/" + slot + ".png", nil
}

func brandedProfile(t *testing.T) *profile.BusinessProfile {
	t.Helper()
	p, err := profile.NewBusinessProfile(
		7, "Lanchonete do Tião", "lanchonete-do-tiao-b4n7", "Belo Horizonte", "Savassi",
		vo.CategoryLanchonete, vo.ToneEnergico, "31966665555",
		vo.NewTrialSubscription(7),
	)
	require.NoError(t, err)
	return p
}

func TestUploadBranding_BannerSurvivesLogoUpload(t *testing.T) {
	p := brandedProfile(t)
	repo := &fakeProfileRepo{profiles: map[uint]*profile.BusinessProfile{7: p}}
	uc := NewUploadBrandingUseCase(repo, &fakeBrandingStore{}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), 7, "banner", []byte("banner-bytes"))
	require.NoError(t, err)
	require.NotEmpty(t, p.BannerURL())

	result, err := uc.Execute(context.Background(), 7, "logo", []byte("logo-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "logo", result.Slot)
	assert.NotEmpty(t, p.LogoURL())
	assert.NotEmpty(t, p.BannerURL(), "banner must survive a logo upload")
	assert.Equal(t, 2, repo.updates)
}

func TestUploadBranding_RejectsUnknownSlot(t *testing.T) {
	repo := &fakeProfileRepo{profiles: map[uint]*profile.BusinessProfile{7: brandedProfile(t)}}
	uc := NewUploadBrandingUseCase(repo, &fakeBrandingStore{}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), 7, "favicon", []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
	assert.Zero(t, repo.updates)
}

func TestUpdateProfile_ThemeColorKeepsBrandingURLs(t *testing.T) {
	p := brandedProfile(t)
	p.SetLogoURL("https://cdn.example.com/logo.png")
	p.SetBannerURL("https://cdn.example.com/banner.png")
	repo := &fakeProfileRepo{profiles: map[uint]*profile.BusinessProfile{7: p}}
	uc := NewUpdateProfileUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), 7, dto.UpdateProfileRequest{
		Name:       "Lanchonete do Tião",
		City:       "Belo Horizonte",
		Category:   string(vo.CategoryLanchonete),
		Tone:       string(vo.ToneEnergico),
		Phone:      "31966665555",
		ThemeColor: "#1d4ed8",
	})
	require.NoError(t, err)

	assert.Equal(t, "#1d4ed8", result.ThemeColor)
	assert.Equal(t, "https://cdn.example.com/logo.png", result.LogoURL)
	assert.Equal(t, "https://cdn.example.com/banner.png", result.BannerURL)
}

func TestUpdateProfile_AcceptsVerbatimBrandingURLs(t *testing.T) {
	p := brandedProfile(t)
	repo := &fakeProfileRepo{profiles: map[uint]*profile.BusinessProfile{7: p}}
	uc := NewUpdateProfileUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), 7, dto.UpdateProfileRequest{
		Name:      "Lanchonete do Tião",
		City:      "Belo Horizonte",
		Category:  string(vo.CategoryLanchonete),
		Tone:      string(vo.ToneEnergico),
		Phone:     "31966665555",
		LogoURL:   "https://instagram.cdn/logo.jpg",
		BannerURL: "https://instagram.cdn/banner.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://instagram.cdn/logo.jpg", result.LogoURL)
	assert.Equal(t, "https://instagram.cdn/banner.jpg", result.BannerURL)
}
