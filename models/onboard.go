package models

// OnboardRequest is the data received in the body of the incoming onboard
// request. SkipOnboarding is a pointer so that supplying the field at all can
// be rejected outside demo mode.
type OnboardRequest struct {
	BusinessName   string `json:"businessName" validate:"required"`
	SkipOnboarding *bool  `json:"skipOnboarding"`
}

// OnboardResponseData is returned in the data block of a successful onboard
// response
type OnboardResponseData struct {
	RedirectURL string `json:"redirectUrl"`
}
