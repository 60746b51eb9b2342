package helpers

import (
	"fmt"
	"net/http"

	"github.com/acmeplatform/embedded-finance.api/models"
)

// Headers set by the session collaborator in front of this service. The
// collaborator authenticates the demo user and forwards the resolved session
// fields on every request.
const (
	sessionEmail    = "Demo-Session-Email"
	sessionCountry  = "Demo-Session-Country"
	sessionAccount  = "Demo-Session-Account"
	sessionPlatform = "Demo-Session-Platform"
	sessionProduct  = "Demo-Session-Product"
)

// GetSession builds the demo session from the collaborator headers on the
// request. It fails when any mandatory field is missing or names an
// unsupported value.
func GetSession(r *http.Request) (*models.Session, error) {
	email := r.Header.Get(sessionEmail)
	if email == "" {
		return nil, fmt.Errorf("no session email supplied")
	}

	country := r.Header.Get(sessionCountry)
	if !models.IsSupportedCountry(country) {
		return nil, fmt.Errorf("unsupported session country [%s]", country)
	}

	accountID := r.Header.Get(sessionAccount)
	if accountID == "" {
		return nil, fmt.Errorf("no session account supplied")
	}

	platform := models.Platform(r.Header.Get(sessionPlatform))
	if platform != models.PlatformUS && platform != models.PlatformEU {
		return nil, fmt.Errorf("unsupported session platform [%s]", platform)
	}

	product := models.FinancialProduct(r.Header.Get(sessionProduct))
	if product != "" && product != models.EmbeddedFinance && product != models.ExpenseManagement {
		return nil, fmt.Errorf("unsupported financial product [%s]", product)
	}

	return &models.Session{
		Email:   email,
		Country: models.SupportedCountry(country),
		StripeAccount: models.StripeAccount{
			AccountID: accountID,
			Platform:  platform,
		},
		FinancialProduct: product,
	}, nil
}
