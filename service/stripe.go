package service

import (
	"fmt"
	"sync"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/acmeplatform/embedded-finance.api/config"
	"github.com/acmeplatform/embedded-finance.api/models"
)

var stripeClients = map[models.Platform]*StripeClient{}
var stripeClientsMtx sync.Mutex

// StripeSDK is an interface for all the Stripe client methods that will be used
// in this service
type StripeSDK interface {
	UpdateAccount(accountID string, params *stripe.AccountParams) (*stripe.Account, error)
	CreateAccountLink(params *stripe.AccountLinkParams) (*stripe.AccountLink, error)
	ListFinancialAccounts(params *stripe.TreasuryFinancialAccountListParams) ([]*stripe.TreasuryFinancialAccount, error)
	CreateOutboundPayment(params *stripe.TreasuryOutboundPaymentParams) (*stripe.TreasuryOutboundPayment, error)
	PostOutboundPayment(id string, params *stripe.TestHelpersTreasuryOutboundPaymentPostParams) (*stripe.TreasuryOutboundPayment, error)
	FailOutboundPayment(id string, params *stripe.TestHelpersTreasuryOutboundPaymentFailParams) (*stripe.TreasuryOutboundPayment, error)
}

// StripeClientFor resolves the SDK bound to a platform account. Injected into
// the services so tests can substitute a mock client.
type StripeClientFor func(platform models.Platform) (StripeSDK, error)

// StripeClient implements StripeSDK against the Stripe API for one platform
// account
type StripeClient struct {
	api *client.API
}

// GetStripeClient returns the client bound to the given platform account,
// creating it on first use
func GetStripeClient(platform models.Platform, cfg *config.Config) (*StripeClient, error) {
	stripeClientsMtx.Lock()
	defer stripeClientsMtx.Unlock()

	if c, ok := stripeClients[platform]; ok {
		return c, nil
	}

	key, err := secretKeyForPlatform(platform, cfg)
	if err != nil {
		return nil, err
	}

	api := &client.API{}
	api.Init(key, nil)

	c := &StripeClient{api: api}
	stripeClients[platform] = c
	return c, nil
}

func secretKeyForPlatform(platform models.Platform, cfg *config.Config) (string, error) {
	var key string
	switch platform {
	case models.PlatformUS:
		key = cfg.StripeUSSecretKey
	case models.PlatformEU:
		key = cfg.StripeEUSecretKey
	default:
		return "", fmt.Errorf("invalid platform: %s", platform)
	}

	if key == "" {
		return "", fmt.Errorf("no stripe secret key configured for platform: %s", platform)
	}
	return key, nil
}

// UpdateAccount updates the connected account
func (s *StripeClient) UpdateAccount(accountID string, params *stripe.AccountParams) (*stripe.Account, error) {
	return s.api.Accounts.Update(accountID, params)
}

// CreateAccountLink creates a Connect Onboarding link for a connected account
func (s *StripeClient) CreateAccountLink(params *stripe.AccountLinkParams) (*stripe.AccountLink, error) {
	return s.api.AccountLinks.New(params)
}

// ListFinancialAccounts lists the treasury financial accounts visible to the
// params' connected account
func (s *StripeClient) ListFinancialAccounts(params *stripe.TreasuryFinancialAccountListParams) ([]*stripe.TreasuryFinancialAccount, error) {
	iter := s.api.TreasuryFinancialAccounts.List(params)

	var financialAccounts []*stripe.TreasuryFinancialAccount
	for iter.Next() {
		financialAccounts = append(financialAccounts, iter.TreasuryFinancialAccount())
	}
	return financialAccounts, iter.Err()
}

// CreateOutboundPayment creates a treasury outbound payment
func (s *StripeClient) CreateOutboundPayment(params *stripe.TreasuryOutboundPaymentParams) (*stripe.TreasuryOutboundPayment, error) {
	return s.api.TreasuryOutboundPayments.New(params)
}

// PostOutboundPayment forces an outbound payment to the posted state. Test
// helper, only valid against test-mode keys.
func (s *StripeClient) PostOutboundPayment(id string, params *stripe.TestHelpersTreasuryOutboundPaymentPostParams) (*stripe.TreasuryOutboundPayment, error) {
	return s.api.TestHelpersTreasuryOutboundPayments.Post(id, params)
}

// FailOutboundPayment forces an outbound payment to the failed state. Test
// helper, only valid against test-mode keys.
func (s *StripeClient) FailOutboundPayment(id string, params *stripe.TestHelpersTreasuryOutboundPaymentFailParams) (*stripe.TreasuryOutboundPayment, error) {
	return s.api.TestHelpersTreasuryOutboundPayments.Fail(id, params)
}
