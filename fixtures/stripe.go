package fixtures

import (
	stripe "github.com/stripe/stripe-go/v76"

	"github.com/acmeplatform/embedded-finance.api/models"
)

// EmbeddedFinanceSession returns a US embedded-finance demo session
func EmbeddedFinanceSession() *models.Session {
	return &models.Session{
		Email:   "demo@example.com",
		Country: models.US,
		StripeAccount: models.StripeAccount{
			AccountID: "acct_123",
			Platform:  models.PlatformUS,
		},
		FinancialProduct: models.EmbeddedFinance,
	}
}

// ExpenseManagementSession returns an expense-management demo session for the
// given country
func ExpenseManagementSession(country models.SupportedCountry) *models.Session {
	return &models.Session{
		Email:   "demo@example.com",
		Country: country,
		StripeAccount: models.StripeAccount{
			AccountID: "acct_456",
			Platform:  models.PlatformEU,
		},
		FinancialProduct: models.ExpenseManagement,
	}
}

// GetFinancialAccount returns a treasury financial account with the given id
func GetFinancialAccount(id string) *stripe.TreasuryFinancialAccount {
	return &stripe.TreasuryFinancialAccount{ID: id}
}

// GetOutboundPayment returns an outbound payment with the given id
func GetOutboundPayment(id string) *stripe.TreasuryOutboundPayment {
	return &stripe.TreasuryOutboundPayment{ID: id}
}

// GetAccountLink returns an onboarding account link pointing at the given URL
func GetAccountLink(url string) *stripe.AccountLink {
	return &stripe.AccountLink{URL: url}
}
