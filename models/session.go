package models

// Platform identifies which Stripe platform account a connected account
// belongs to
type Platform string

// Enumeration of platform accounts
const (
	PlatformUS Platform = "us"
	PlatformEU Platform = "eu"
)

// FinancialProduct is the product configuration a connected account was
// onboarded under
type FinancialProduct string

// Enumeration of financial products
const (
	// EmbeddedFinance includes treasury features
	EmbeddedFinance FinancialProduct = "embedded-finance"

	// ExpenseManagement is issuing-only
	ExpenseManagement FinancialProduct = "expense-management"
)

// StripeAccount binds a connected account to its platform
type StripeAccount struct {
	AccountID string
	Platform  Platform
}

// Session is the demo user session supplied by the session collaborator. It
// is immutable for the duration of a request and never persisted here.
type Session struct {
	Email            string
	Country          SupportedCountry
	StripeAccount    StripeAccount
	FinancialProduct FinancialProduct
}
