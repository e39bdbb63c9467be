package dto

// RequestLoginLinkRequest asks for a single-use login link by email.
type RequestLoginLinkRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyLoginTokenRequest exchanges a login token for a session.
type VerifyLoginTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// UserInfo is the account snapshot returned with a session.
type UserInfo struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	OnboardingComplete bool   `json:"onboarding_complete"`
}

// SessionResponse carries a signed session token and its owner.
type SessionResponse struct {
	AccessToken string   `json:"access_token"`
	ExpiresIn   int64    `json:"expires_in"`
	User        UserInfo `json:"user"`
}
