package dto

// MenuBusiness is the public header of a menu page.
type MenuBusiness struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Category     string `json:"category"`
	ThemeColor   string `json:"theme_color"`
	LogoURL      string `json:"logo_url,omitempty"`
	BannerURL    string `json:"banner_url,omitempty"`
	Instagram    string `json:"instagram,omitempty"`
	Address      string `json:"address,omitempty"`
	DeliveryInfo string `json:"delivery_info,omitempty"`
}

// MenuProduct is one public menu item.
type MenuProduct struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
	IsPopular   bool    `json:"is_popular"`
}

// MenuSection groups products under one category, in order of first
// appearance in the catalog.
type MenuSection struct {
	Category string        `json:"category"`
	Products []MenuProduct `json:"products"`
}

// PublicMenuResponse is the full public menu payload.
type PublicMenuResponse struct {
	Business     MenuBusiness  `json:"business"`
	Sections     []MenuSection `json:"sections"`
	WhatsAppLink string        `json:"whatsapp_link"`
	QRCodeURL    string        `json:"qr_code_url"`
	MenuURL      string        `json:"menu_url"`
}

// TrackEventRequest records one public page interaction.
type TrackEventRequest struct {
	Type      string `json:"type" binding:"required"`
	ProductID string `json:"product_id"`
}

// TrackEventResponse acknowledges the event. For WhatsApp clicks it
// carries the prefilled deep link.
type TrackEventResponse struct {
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
}
