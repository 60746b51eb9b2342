package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	stripe "github.com/stripe/stripe-go/v76"

	"github.com/acmeplatform/embedded-finance.api/config"
	"github.com/acmeplatform/embedded-finance.api/models"
)

// Fixed values Stripe's test-mode verification heuristics accept, see
// https://stripe.com/docs/connect/testing
const (
	// verifiedAddressLine1 causes the address to be verified in test mode
	verifiedAddressLine1 = "address_full_match"

	// Merchant category code for "computer software stores"
	businessMCC = "5734"

	businessDescription = "Some demo product"
	businessURL         = "https://some-company.com"
	fiscalYearEnd       = "2023-12-31"

	// Fake business TIN accepted in test mode
	testTaxID = "000000000"

	// Germany expects a company-register-style identifier instead of a TIN
	germanTaxID = "HRA000000000"

	individualFirstName = "John"
	individualLastName  = "Smith"

	// Valid-format fake number. The 000-000-0000 test-mode sentinel is
	// currently rejected by Stripe's phone validation, so a plausible number
	// is used instead.
	individualPhone = "2015550123"

	// Day/month/year that together trigger automatic identity verification
	verifiedDOBDay   = 1
	verifiedDOBMonth = 1
	verifiedDOBYear  = 1901

	tosAcceptanceDate = 1691518261
	tosAcceptanceIP   = "127.0.0.1"
)

// OnboardService fills a connected account with KYC data and hands back the
// next onboarding redirect
type OnboardService struct {
	ClientFor StripeClientFor
	Config    *config.Config
}

type overrideKey struct {
	Country models.SupportedCountry
	Product models.FinancialProduct
}

type addressOverride struct {
	City       string
	State      string
	PostalCode string
}

// enrichmentOverrides enumerates every (country, product) pair whose
// individual address deviates from the country's fake-address default.
// Either the full override applies or the default does, never a mix.
var enrichmentOverrides = map[overrideKey]addressOverride{
	{models.US, models.EmbeddedFinance}:   {City: "South San Francisco", State: "CA", PostalCode: "94080"},
	{models.BE, models.ExpenseManagement}: {City: "Brussel", PostalCode: "1000"},
	{models.FI, models.ExpenseManagement}: {City: "Helsinki", PostalCode: "00100"},
	{models.FR, models.ExpenseManagement}: {City: "Paris", PostalCode: "75001"},
	{models.DE, models.ExpenseManagement}: {City: "Berlin", PostalCode: "10115"},
	{models.LU, models.ExpenseManagement}: {City: "Luxemburg", PostalCode: "1111"},
	{models.NL, models.ExpenseManagement}: {City: "Amsterdam", PostalCode: "1008 DG"},
	{models.PT, models.ExpenseManagement}: {City: "Lisbon", PostalCode: "1000"},
	{models.ES, models.ExpenseManagement}: {City: "Madrid", PostalCode: "28001"},
}

// Onboard validates the submitted business details, pushes the account update
// to Stripe and returns the redirect target for the caller
func (service *OnboardService) Onboard(req *http.Request, session *models.Session, body models.OnboardRequest) (*models.OnboardResponseData, ResponseType, error) {

	if err := validateOnboardRequest(body, service.Config.DemoMode); err != nil {
		return nil, InvalidData, err
	}

	skipOnboarding := body.SkipOnboarding != nil && *body.SkipOnboarding

	params := planEnrichment(session, body.BusinessName, skipOnboarding, service.Config.DemoMode)

	client, err := service.ClientFor(session.StripeAccount.Platform)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting stripe client: [%v]", err)
	}

	log.TraceR(req, "performing account update", log.Data{"account_id": session.StripeAccount.AccountID, "country": session.Country})

	_, err = client.UpdateAccount(session.StripeAccount.AccountID, params)
	if err != nil {
		return nil, Error, fmt.Errorf("error updating account: [%v]", err)
	}

	if service.Config.DemoMode && skipOnboarding {
		return &models.OnboardResponseData{RedirectURL: "/"}, Success, nil
	}

	linkParams := &stripe.AccountLinkParams{
		Account:    stripe.String(session.StripeAccount.AccountID),
		RefreshURL: stripe.String(service.Config.WebURL + "/onboard"),
		ReturnURL:  stripe.String(service.Config.WebURL),
		Type:       stripe.String("account_onboarding"),
	}

	link, err := client.CreateAccountLink(linkParams)
	if err != nil {
		return nil, Error, fmt.Errorf("error creating onboarding link: [%v]", err)
	}

	return &models.OnboardResponseData{RedirectURL: link.URL}, Success, nil
}

// validateOnboardRequest checks the submitted fields against the schema for
// the current mode. All violations are collected before failing.
func validateOnboardRequest(body models.OnboardRequest, demoMode bool) error {
	var violations []string

	validate := validator.New()
	if err := validate.Struct(body); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		for _, fieldError := range validationErrors {
			switch fieldError.Field() {
			case "BusinessName":
				violations = append(violations, "businessName is a required field")
			default:
				violations = append(violations, fmt.Sprintf("%s failed on the '%s' rule", fieldError.Field(), fieldError.Tag()))
			}
		}
	}

	// skipOnboarding is only part of the accepted shape in demo mode
	if !demoMode && body.SkipOnboarding != nil {
		violations = append(violations, "skipOnboarding is not a recognised field")
	}

	if len(violations) > 0 {
		return errors.New(strings.Join(violations, "; "))
	}
	return nil
}

// planEnrichment builds the account-update payload. Outside demo mode only
// the real business name is submitted; in demo mode every field Stripe's
// test-mode verification path requires is filled with fabricated data.
func planEnrichment(session *models.Session, businessName string, skipOnboarding, demoMode bool) *stripe.AccountParams {
	params := &stripe.AccountParams{
		BusinessProfile: &stripe.AccountBusinessProfileParams{
			Name: stripe.String(businessName),
		},
	}

	if !demoMode {
		return params
	}

	countryConfig := models.CountryConfigMap[session.Country]

	params.BusinessType = stripe.String("individual")
	params.BusinessProfile.MCC = stripe.String(businessMCC)
	params.BusinessProfile.ProductDescription = stripe.String(businessDescription)
	params.BusinessProfile.URL = stripe.String(businessURL)
	params.BusinessProfile.AnnualRevenue = &stripe.AccountBusinessProfileAnnualRevenueParams{
		Amount:        stripe.Int64(0),
		Currency:      stripe.String(countryConfig.Currency),
		FiscalYearEnd: stripe.String(fiscalYearEnd),
	}
	params.BusinessProfile.EstimatedWorkerCount = stripe.Int64(1)

	params.Company = &stripe.AccountCompanyParams{
		Name:  stripe.String(businessName),
		TaxID: stripe.String(taxIDForCountry(session.Country)),
	}

	params.Individual = &stripe.PersonParams{
		Address:   individualAddress(session.Country, session.FinancialProduct),
		DOB:       &stripe.PersonDOBParams{Day: stripe.Int64(verifiedDOBDay), Month: stripe.Int64(verifiedDOBMonth), Year: stripe.Int64(verifiedDOBYear)},
		Email:     stripe.String(session.Email),
		FirstName: stripe.String(individualFirstName),
		LastName:  stripe.String(individualLastName),
		Phone:     stripe.String(individualPhone),
	}

	if skipOnboarding {
		params.TOSAcceptance = &stripe.AccountTOSAcceptanceParams{
			Date: stripe.Int64(tosAcceptanceDate),
			IP:   stripe.String(tosAcceptanceIP),
		}
	}

	params.Settings = &stripe.AccountSettingsParams{
		CardIssuing: &stripe.AccountSettingsCardIssuingParams{
			TOSAcceptance: &stripe.AccountSettingsCardIssuingTOSAcceptanceParams{
				Date: stripe.Int64(tosAcceptanceDate),
				IP:   stripe.String(tosAcceptanceIP),
			},
		},
	}

	// Treasury terms only exist on the product variant with treasury features
	if session.FinancialProduct == models.EmbeddedFinance {
		params.Settings.Treasury = &stripe.AccountSettingsTreasuryParams{
			TOSAcceptance: &stripe.AccountSettingsTreasuryTOSAcceptanceParams{
				Date: stripe.Int64(tosAcceptanceDate),
				IP:   stripe.String(tosAcceptanceIP),
			},
		}
	}

	return params
}

func taxIDForCountry(country models.SupportedCountry) string {
	if country == models.DE {
		return germanTaxID
	}
	return testTaxID
}

// individualAddress applies the override table on top of the country's
// fake-address default. line1 always carries the test-mode verification
// sentinel and the country always follows the session.
func individualAddress(country models.SupportedCountry, product models.FinancialProduct) *stripe.AddressParams {
	countryConfig := models.CountryConfigMap[country]

	address := &stripe.AddressParams{
		Line1:      stripe.String(verifiedAddressLine1),
		City:       stripe.String(countryConfig.FakeAddress.City),
		PostalCode: stripe.String(countryConfig.FakeAddress.PostalCode),
		Country:    stripe.String(string(country)),
	}

	if override, ok := enrichmentOverrides[overrideKey{Country: country, Product: product}]; ok {
		address.City = stripe.String(override.City)
		address.PostalCode = stripe.String(override.PostalCode)
		if override.State != "" {
			address.State = stripe.String(override.State)
		}
	}

	return address
}
