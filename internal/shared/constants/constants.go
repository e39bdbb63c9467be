package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage        = 1
	DefaultPageSize    = 20
	MaxPageSize        = 100
	DiscoveryPageSize  = 50
	DefaultHistorySize = 20

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserSID   = "user_sid"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers             = "users"
	TableBusinessProfiles  = "business_profiles"
	TableProducts          = "products"
	TableGeneratedContents = "generated_contents"
	TableAnalyticsEvents   = "analytics_events"

	// WhatsApp deep link prefix (Brazil country code)
	WhatsAppLinkPrefix = "https://wa.me/55"

	// QR rendering endpoint; the public menu URL goes in the data parameter
	QRCodeEndpoint = "https://api.qrserver.com/v1/create-qr-code/?size=300x300&data="

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgValidationFailed    = "Validation failed"
)
