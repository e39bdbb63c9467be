package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefviral/internal/domain/plan"
	vo "chefviral/internal/domain/profile/valueobjects"
)

func newValidProfile(t *testing.T) *BusinessProfile {
	t.Helper()
	p, err := NewBusinessProfile(
		7,
		"Zé's Burger", "ze-s-burger-a1b2", "São Paulo", "Pinheiros",
		vo.CategoryHamburgueria,
		vo.ToneCasual,
		"(11) 99999-0000",
		vo.NewTrialSubscription(7),
	)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func TestNewBusinessProfile_ValidInput(t *testing.T) {
	p := newValidProfile(t)

	assert.Contains(t, p.SID(), "biz_")
	assert.Equal(t, uint(7), p.UserID())
	assert.Equal(t, "Zé's Burger", p.Name())
	assert.Equal(t, "ze-s-burger-a1b2", p.Slug())
	assert.Equal(t, "São Paulo", p.City())
	assert.Equal(t, "Pinheiros", p.Neighborhood())
	assert.Equal(t, vo.CategoryHamburgueria, p.Category())
	assert.Equal(t, vo.ToneCasual, p.Tone())
	assert.Equal(t, "#f97316", p.ThemeColor())
	assert.Equal(t, plan.TierFree, p.Subscription().Tier)
	assert.Equal(t, vo.StatusTrial, p.Subscription().Status)
	assert.False(t, p.Subscription().PeriodEnd.IsZero())
}

func TestNewBusinessProfile_Invalid(t *testing.T) {
	sub := vo.NewTrialSubscription(7)

	tests := []struct {
		name     string
		userID   uint
		bizName  string
		slug     string
		city     string
		category vo.BusinessCategory
		tone     vo.ToneOfVoice
		phone    string
	}{
		{"zero user", 0, "Bar do João", "bar-do-joao-xxxx", "Recife", vo.CategoryBar, vo.ToneCasual, "81 98888-7777"},
		{"missing name", 1, "", "bar-do-joao-xxxx", "Recife", vo.CategoryBar, vo.ToneCasual, "81 98888-7777"},
		{"missing slug", 1, "Bar do João", "", "Recife", vo.CategoryBar, vo.ToneCasual, "81 98888-7777"},
		{"missing city", 1, "Bar do João", "bar-do-joao-xxxx", "", vo.CategoryBar, vo.ToneCasual, "81 98888-7777"},
		{"bad category", 1, "Bar do João", "bar-do-joao-xxxx", "Recife", vo.BusinessCategory("Padaria Industrial"), vo.ToneCasual, "81 98888-7777"},
		{"bad tone", 1, "Bar do João", "bar-do-joao-xxxx", "Recife", vo.CategoryBar, vo.ToneOfVoice("Formal"), "81 98888-7777"},
		{"phone without digits", 1, "Bar do João", "bar-do-joao-xxxx", "Recife", vo.CategoryBar, vo.ToneCasual, "sem telefone"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewBusinessProfile(tc.userID, tc.bizName, tc.slug, tc.city, "", tc.category, tc.tone, tc.phone, sub)
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestBusinessProfile_WhatsAppDigits(t *testing.T) {
	p := newValidProfile(t)

	assert.Equal(t, "11999990000", p.WhatsAppDigits())
}

func TestBusinessProfile_SetThemeColor(t *testing.T) {
	p := newValidProfile(t)

	require.NoError(t, p.SetThemeColor("#1d4ed8"))
	assert.Equal(t, "#1d4ed8", p.ThemeColor())

	assert.Error(t, p.SetThemeColor("blue"))
	assert.Equal(t, "#1d4ed8", p.ThemeColor())
}

func TestBusinessProfile_BrandingSlotsAreIndependent(t *testing.T) {
	p := newValidProfile(t)

	p.SetBannerURL("banner.png")
	p.SetLogoURL("logo.png")

	assert.Equal(t, "#f97316", p.ThemeColor())
	assert.Equal(t, "logo.png", p.LogoURL())
	assert.Equal(t, "banner.png", p.BannerURL())
}

func TestBusinessProfile_SetDBIDOnce(t *testing.T) {
	p := newValidProfile(t)

	require.NoError(t, p.SetDBID(10))
	assert.Equal(t, uint(10), p.DBID())

	err := p.SetDBID(11)
	assert.Error(t, err)
	assert.Equal(t, uint(10), p.DBID())
}

func TestBusinessProfile_UpdateDetailsKeepsSlug(t *testing.T) {
	p := newValidProfile(t)

	err := p.UpdateDetails("Hamburgueria do Zé", "Campinas", "", vo.CategoryHamburgueria, vo.TonePremium, "19 97777-1234")

	require.NoError(t, err)
	assert.Equal(t, "Hamburgueria do Zé", p.Name())
	assert.Equal(t, "Campinas", p.City())
	assert.Equal(t, "ze-s-burger-a1b2", p.Slug())
}

func TestBusinessProfile_ChangeSubscription(t *testing.T) {
	p := newValidProfile(t)

	sub, err := vo.NewSubscription(plan.TierPro, vo.StatusActive, p.Subscription().PeriodEnd.AddDate(0, 1, 0))
	require.NoError(t, err)

	p.ChangeSubscription(sub)

	assert.Equal(t, plan.TierPro, p.Subscription().Tier)
	assert.Equal(t, plan.Unlimited, p.Subscription().Limits().MaxProducts)
}
