package service

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/acmeplatform/embedded-finance.api/config"
	"github.com/acmeplatform/embedded-finance.api/models"
)

func createHTTPMockStripeClient() *StripeClient {
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)

	api := &client.API{}
	api.Init("sk_test_123", stripe.NewBackends(httpClient))

	return &StripeClient{api: api}
}

func TestUnitGetStripeClient(t *testing.T) {

	Convey("No secret key configured for platform", t, func() {
		stripeClients = map[models.Platform]*StripeClient{}
		c, err := GetStripeClient(models.PlatformUS, &config.Config{})
		So(c, ShouldBeNil)
		So(err.Error(), ShouldEqual, "no stripe secret key configured for platform: us")
	})

	Convey("Invalid platform", t, func() {
		stripeClients = map[models.Platform]*StripeClient{}
		c, err := GetStripeClient(models.Platform("apac"), &config.Config{})
		So(c, ShouldBeNil)
		So(err.Error(), ShouldEqual, "invalid platform: apac")
	})

	Convey("Client created once per platform", t, func() {
		stripeClients = map[models.Platform]*StripeClient{}
		cfg := &config.Config{StripeUSSecretKey: "sk_test_us", StripeEUSecretKey: "sk_test_eu"}

		usClient, err := GetStripeClient(models.PlatformUS, cfg)
		So(err, ShouldBeNil)
		So(usClient, ShouldNotBeNil)

		cached, err := GetStripeClient(models.PlatformUS, cfg)
		So(err, ShouldBeNil)
		So(cached, ShouldEqual, usClient)

		euClient, err := GetStripeClient(models.PlatformEU, cfg)
		So(err, ShouldBeNil)
		So(euClient, ShouldNotEqual, usClient)
	})
}

func TestUnitStripeClientCalls(t *testing.T) {

	Convey("UpdateAccount hits the accounts endpoint", t, func() {
		stripeClient := createHTTPMockStripeClient()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/accounts/acct_123",
			httpmock.NewStringResponder(http.StatusOK, `{"id": "acct_123"}`))

		account, err := stripeClient.UpdateAccount("acct_123", &stripe.AccountParams{})
		So(err, ShouldBeNil)
		So(account.ID, ShouldEqual, "acct_123")
	})

	Convey("ListFinancialAccounts flattens the list response", t, func() {
		stripeClient := createHTTPMockStripeClient()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("GET", `=~^https://api\.stripe\.com/v1/treasury/financial_accounts`,
			httpmock.NewStringResponder(http.StatusOK,
				`{"object": "list", "url": "/v1/treasury/financial_accounts", "has_more": false, "data": [{"id": "fa_1"}, {"id": "fa_2"}]}`))

		listParams := &stripe.TreasuryFinancialAccountListParams{}
		listParams.ListParams.StripeAccount = stripe.String("acct_123")

		financialAccounts, err := stripeClient.ListFinancialAccounts(listParams)
		So(err, ShouldBeNil)
		So(len(financialAccounts), ShouldEqual, 2)
		So(financialAccounts[0].ID, ShouldEqual, "fa_1")
	})

	Convey("CreateOutboundPayment hits the outbound payments endpoint", t, func() {
		stripeClient := createHTTPMockStripeClient()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/treasury/outbound_payments",
			httpmock.NewStringResponder(http.StatusOK, `{"id": "obp_1", "status": "processing"}`))

		payment, err := stripeClient.CreateOutboundPayment(&stripe.TreasuryOutboundPaymentParams{})
		So(err, ShouldBeNil)
		So(payment.ID, ShouldEqual, "obp_1")
	})

	Convey("PostOutboundPayment hits the test helper endpoint", t, func() {
		stripeClient := createHTTPMockStripeClient()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/test_helpers/treasury/outbound_payments/obp_1/post",
			httpmock.NewStringResponder(http.StatusOK, `{"id": "obp_1", "status": "posted"}`))

		payment, err := stripeClient.PostOutboundPayment("obp_1", &stripe.TestHelpersTreasuryOutboundPaymentPostParams{})
		So(err, ShouldBeNil)
		So(payment.ID, ShouldEqual, "obp_1")
	})

	Convey("FailOutboundPayment hits the test helper endpoint", t, func() {
		stripeClient := createHTTPMockStripeClient()
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("POST", "https://api.stripe.com/v1/test_helpers/treasury/outbound_payments/obp_1/fail",
			httpmock.NewStringResponder(http.StatusOK, `{"id": "obp_1", "status": "failed"}`))

		payment, err := stripeClient.FailOutboundPayment("obp_1", &stripe.TestHelpersTreasuryOutboundPaymentFailParams{})
		So(err, ShouldBeNil)
		So(payment.ID, ShouldEqual, "obp_1")
	})
}
