package service

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v76"

	"github.com/acmeplatform/embedded-finance.api/config"
	"github.com/acmeplatform/embedded-finance.api/models"
)

// Stripe's published test-mode values for deterministic outbound payment
// behaviour, see https://stripe.com/docs/treasury/moving-money/payouts
const (
	testRoutingNumber = "110000000"
	testAccountNumber = "000000000009"

	recipientEmail      = "jenny@example.com"
	recipientPhone      = "7135551212"
	statementDescriptor = "Descriptor"

	financialAddressExpand = "data.financial_addresses.aba.account_number"
)

// sentinelAddress satisfies Stripe's billing-address schema on networks that
// do not require a real recipient address
var sentinelAddress = recipientAddress{
	City:       "Alvin",
	State:      "TX",
	PostalCode: "77511",
	Line1:      "123 Main St.",
}

type recipientAddress struct {
	City       string
	State      string
	PostalCode string
	Line1      string
}

// Amounts are either whole major units or exactly two fractional digits.
// Anything else is rejected rather than mis-scaled.
var amountRegex = regexp.MustCompile(`^\d+(\.\d{2})?$`)

// SendMoneyService creates outbound payments from a connected account's
// treasury financial account
type SendMoneyService struct {
	ClientFor StripeClientFor
	Config    *config.Config
}

// SendMoney normalizes the submitted amount, resolves the financial account
// and creates the outbound payment, optionally forcing a terminal test state
func (service *SendMoneyService) SendMoney(req *http.Request, session *models.Session, body models.SendMoneyRequest) (ResponseType, error) {

	if err := validateSendMoneyRequest(body); err != nil {
		return InvalidData, err
	}

	amount, err := convertToMinorUnits(body.Amount)
	if err != nil {
		return InvalidData, err
	}

	// Pre-validated by the oneof rule, so this cannot fail here
	transactionResult, err := models.ParseTransactionResult(body.TransactionResult)
	if err != nil {
		return InvalidData, err
	}

	accountID := session.StripeAccount.AccountID

	client, err := service.ClientFor(session.StripeAccount.Platform)
	if err != nil {
		return Error, fmt.Errorf("error getting stripe client: [%v]", err)
	}

	listParams := &stripe.TreasuryFinancialAccountListParams{}
	listParams.ListParams.StripeAccount = stripe.String(accountID)
	listParams.AddExpand(financialAddressExpand)

	financialAccounts, err := client.ListFinancialAccounts(listParams)
	if err != nil {
		return Error, fmt.Errorf("error listing financial accounts: [%v]", err)
	}
	if len(financialAccounts) == 0 {
		return NotFound, fmt.Errorf("no financial account found for account [%s]", accountID)
	}
	financialAccount := financialAccounts[0]

	address := recipientAddressForNetwork(body)

	paymentParams := &stripe.TreasuryOutboundPaymentParams{
		FinancialAccount:    stripe.String(financialAccount.ID),
		Amount:              stripe.Int64(amount),
		Currency:            stripe.String(models.CountryConfigMap[session.Country].Currency),
		StatementDescriptor: stripe.String(statementDescriptor),
		DestinationPaymentMethodData: &stripe.TreasuryOutboundPaymentDestinationPaymentMethodDataParams{
			Type: stripe.String("us_bank_account"),
			USBankAccount: &stripe.TreasuryOutboundPaymentDestinationPaymentMethodDataUSBankAccountParams{
				AccountHolderType: stripe.String("company"),
				RoutingNumber:     stripe.String(testRoutingNumber),
				AccountNumber:     stripe.String(testAccountNumber),
			},
			BillingDetails: &stripe.TreasuryOutboundPaymentDestinationPaymentMethodDataBillingDetailsParams{
				Email: stripe.String(recipientEmail),
				Phone: stripe.String(recipientPhone),
				Name:  stripe.String(body.Name),
				Address: &stripe.AddressParams{
					City:       stripe.String(address.City),
					State:      stripe.String(address.State),
					PostalCode: stripe.String(address.PostalCode),
					Line1:      stripe.String(address.Line1),
					Country:    stripe.String("US"),
				},
			},
		},
		DestinationPaymentMethodOptions: &stripe.TreasuryOutboundPaymentDestinationPaymentMethodOptionsParams{
			USBankAccount: &stripe.TreasuryOutboundPaymentDestinationPaymentMethodOptionsUSBankAccountParams{
				Network: stripe.String(body.Network),
			},
		},
	}
	paymentParams.SetStripeAccount(accountID)

	outboundPayment, err := client.CreateOutboundPayment(paymentParams)
	if err != nil {
		return Error, fmt.Errorf("error creating outbound payment: [%v]", err)
	}

	log.InfoR(req, "outbound payment created", log.Data{"payment_id": outboundPayment.ID, "amount": amount, "network": body.Network})

	// The test bank account leaves the payment pending; force the requested
	// terminal state, if any, via the test helpers
	switch transactionResult {
	case models.Posted:
		postParams := &stripe.TestHelpersTreasuryOutboundPaymentPostParams{}
		postParams.SetStripeAccount(accountID)
		if _, err := client.PostOutboundPayment(outboundPayment.ID, postParams); err != nil {
			return Error, fmt.Errorf("error posting outbound payment [%s]: [%v]", outboundPayment.ID, err)
		}
	case models.Failed:
		failParams := &stripe.TestHelpersTreasuryOutboundPaymentFailParams{}
		failParams.SetStripeAccount(accountID)
		if _, err := client.FailOutboundPayment(outboundPayment.ID, failParams); err != nil {
			return Error, fmt.Errorf("error failing outbound payment [%s]: [%v]", outboundPayment.ID, err)
		}
	case models.Unforced:
	}

	return Success, nil
}

// validateSendMoneyRequest checks the submitted fields, collecting all
// violations before failing
func validateSendMoneyRequest(body models.SendMoneyRequest) error {
	var violations []string

	validate := validator.New()
	if err := validate.Struct(body); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		for _, fieldError := range validationErrors {
			switch fieldError.Field() {
			case "Amount":
				violations = append(violations, "amount is a required field")
			case "Network":
				violations = append(violations, "network must be one of 'ach' or 'us_domestic_wire'")
			case "Name":
				violations = append(violations, "name is a required field")
			case "TransactionResult":
				violations = append(violations, "transaction_result must be one of 'posted' or 'failed'")
			default:
				violations = append(violations, fmt.Sprintf("%s failed on the '%s' rule", fieldError.Field(), fieldError.Tag()))
			}
		}
	}

	if len(violations) > 0 {
		return errors.New(strings.Join(violations, "; "))
	}
	return nil
}

// convertToMinorUnits turns the submitted amount string into an integer count
// of minor currency units. A value with a separator must carry exactly two
// fractional digits and has the separator dropped ("12.34" -> 1234); a value
// without one is whole major units scaled by 100 ("12" -> 1200).
func convertToMinorUnits(amount string) (int64, error) {
	if !amountRegex.MatchString(amount) {
		return 0, fmt.Errorf("amount [%s] format incorrect", amount)
	}

	if strings.Contains(amount, ".") {
		return strconv.ParseInt(strings.Replace(amount, ".", "", 1), 10, 64)
	}

	majorUnits, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("error converting amount to minor units: [%s]", err)
	}
	return majorUnits.Mul(decimal.NewFromInt(100)).IntPart(), nil
}

// recipientAddressForNetwork applies the two-branch address policy: wires
// require the caller's recipient address, every other network takes the
// sentinel
func recipientAddressForNetwork(body models.SendMoneyRequest) recipientAddress {
	if models.PaymentNetwork(body.Network) == models.NetworkDomesticWire {
		return recipientAddress{
			City:       body.City,
			State:      body.State,
			PostalCode: body.PostalCode,
			Line1:      body.Line1,
		}
	}
	return sentinelAddress
}
