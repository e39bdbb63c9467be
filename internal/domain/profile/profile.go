// Package profile models the business profile aggregate: the single tenant
// record that owns the catalog, content history and analytics events, and
// carries the public slug and the embedded subscription.
package profile

import (
	"fmt"
	"time"

	vo "chefviral/internal/domain/profile/valueobjects"
	"chefviral/internal/shared/id"
	"chefviral/internal/shared/utils"
)

// BusinessProfile is the aggregate root for one tenant.
type BusinessProfile struct {
	dbID         uint
	sid          string
	userID       uint
	name         string
	slug         string
	city         string
	neighborhood string
	category     vo.BusinessCategory
	tone         vo.ToneOfVoice
	phone        string
	instagram    string
	address      string
	deliveryInfo string
	themeColor   string
	logoURL      string
	bannerURL    string
	subscription vo.Subscription
	createdAt    time.Time
	updatedAt    time.Time
}

// NewBusinessProfile creates a profile for a newly onboarded tenant. The
// slug must already be derived; it is immutable once assigned.
func NewBusinessProfile(
	userID uint,
	name, slug, city, neighborhood string,
	category vo.BusinessCategory,
	tone vo.ToneOfVoice,
	phone string,
	subscription vo.Subscription,
) (*BusinessProfile, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("business name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}
	if city == "" {
		return nil, fmt.Errorf("city is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid business category: %s", category)
	}
	if !tone.IsValid() {
		return nil, fmt.Errorf("invalid tone of voice: %s", tone)
	}
	if utils.DigitsOnly(phone) == "" {
		return nil, fmt.Errorf("whatsapp phone is required")
	}

	now := time.Now().UTC()
	return &BusinessProfile{
		sid:          id.MustGenerateWithPrefix(id.PrefixBusiness, id.DefaultLength),
		userID:       userID,
		name:         name,
		slug:         slug,
		city:         city,
		neighborhood: neighborhood,
		category:     category,
		tone:         tone,
		phone:        phone,
		themeColor:   "#f97316",
		subscription: subscription,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructBusinessProfile rebuilds a profile from persistence.
func ReconstructBusinessProfile(
	dbID uint,
	sid string,
	userID uint,
	name, slug, city, neighborhood string,
	category vo.BusinessCategory,
	tone vo.ToneOfVoice,
	phone, instagram, address, deliveryInfo, themeColor, logoURL, bannerURL string,
	subscription vo.Subscription,
	createdAt, updatedAt time.Time,
) (*BusinessProfile, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid business category: %s", category)
	}
	if !tone.IsValid() {
		return nil, fmt.Errorf("invalid tone of voice: %s", tone)
	}
	return &BusinessProfile{
		dbID:         dbID,
		sid:          sid,
		userID:       userID,
		name:         name,
		slug:         slug,
		city:         city,
		neighborhood: neighborhood,
		category:     category,
		tone:         tone,
		phone:        phone,
		instagram:    instagram,
		address:      address,
		deliveryInfo: deliveryInfo,
		themeColor:   themeColor,
		logoURL:      logoURL,
		bannerURL:    bannerURL,
		subscription: subscription,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *BusinessProfile) DBID() uint                    { return p.dbID }
func (p *BusinessProfile) SID() string                   { return p.sid }
func (p *BusinessProfile) UserID() uint                  { return p.userID }
func (p *BusinessProfile) Name() string                  { return p.name }
func (p *BusinessProfile) Slug() string                  { return p.slug }
func (p *BusinessProfile) City() string                  { return p.city }
func (p *BusinessProfile) Neighborhood() string          { return p.neighborhood }
func (p *BusinessProfile) Category() vo.BusinessCategory { return p.category }
func (p *BusinessProfile) Tone() vo.ToneOfVoice          { return p.tone }
func (p *BusinessProfile) Phone() string                 { return p.phone }
func (p *BusinessProfile) Instagram() string             { return p.instagram }
func (p *BusinessProfile) Address() string               { return p.address }
func (p *BusinessProfile) DeliveryInfo() string          { return p.deliveryInfo }
func (p *BusinessProfile) ThemeColor() string            { return p.themeColor }
func (p *BusinessProfile) LogoURL() string               { return p.logoURL }
func (p *BusinessProfile) BannerURL() string             { return p.bannerURL }
func (p *BusinessProfile) Subscription() vo.Subscription { return p.subscription }
func (p *BusinessProfile) CreatedAt() time.Time          { return p.createdAt }
func (p *BusinessProfile) UpdatedAt() time.Time          { return p.updatedAt }

// SetDBID records the database identity after the first insert.
func (p *BusinessProfile) SetDBID(dbID uint) error {
	if p.dbID != 0 {
		return fmt.Errorf("profile ID already set")
	}
	p.dbID = dbID
	return nil
}

// WhatsAppDigits returns the contact phone reduced to bare digits for
// wa.me deep links.
func (p *BusinessProfile) WhatsAppDigits() string {
	return utils.DigitsOnly(p.phone)
}

// UpdateDetails mutates the owner-editable attributes. The slug is the
// public identity and deliberately cannot change here.
func (p *BusinessProfile) UpdateDetails(name, city, neighborhood string, category vo.BusinessCategory, tone vo.ToneOfVoice, phone string) error {
	if name == "" {
		return fmt.Errorf("business name is required")
	}
	if city == "" {
		return fmt.Errorf("city is required")
	}
	if !category.IsValid() {
		return fmt.Errorf("invalid business category: %s", category)
	}
	if !tone.IsValid() {
		return fmt.Errorf("invalid tone of voice: %s", tone)
	}
	if utils.DigitsOnly(phone) == "" {
		return fmt.Errorf("whatsapp phone is required")
	}
	p.name = name
	p.city = city
	p.neighborhood = neighborhood
	p.category = category
	p.tone = tone
	p.phone = phone
	p.updatedAt = time.Now().UTC()
	return nil
}

// SetThemeColor replaces the menu accent color.
func (p *BusinessProfile) SetThemeColor(color string) error {
	if !utils.IsValidHexColor(color) {
		return fmt.Errorf("invalid theme color: %s", color)
	}
	p.themeColor = color
	p.updatedAt = time.Now().UTC()
	return nil
}

// SetLogoURL points the logo slot at a new asset. The banner slot is
// untouched.
func (p *BusinessProfile) SetLogoURL(url string) {
	p.logoURL = url
	p.updatedAt = time.Now().UTC()
}

// SetBannerURL points the banner slot at a new asset. The logo slot is
// untouched.
func (p *BusinessProfile) SetBannerURL(url string) {
	p.bannerURL = url
	p.updatedAt = time.Now().UTC()
}

// SetSocial updates the optional social and delivery attributes.
func (p *BusinessProfile) SetSocial(instagram, address, deliveryInfo string) {
	p.instagram = instagram
	p.address = address
	p.deliveryInfo = deliveryInfo
	p.updatedAt = time.Now().UTC()
}

// ChangeSubscription replaces the embedded subscription state.
func (p *BusinessProfile) ChangeSubscription(sub vo.Subscription) {
	p.subscription = sub
	p.updatedAt = time.Now().UTC()
}
