package models

import "fmt"

// PaymentNetwork is the rail an outbound payment is sent over
type PaymentNetwork string

// Enumeration of payment networks
const (
	NetworkACH          PaymentNetwork = "ach"
	NetworkDomesticWire PaymentNetwork = "us_domestic_wire"
)

// TransactionResult is a tagged variant describing which terminal test state,
// if any, a created outbound payment is forced into. The zero value leaves
// the payment in its default pending state.
type TransactionResult int

const (
	// Unforced leaves the payment in the platform's default state
	Unforced TransactionResult = iota

	// Posted forces the payment to the posted state via the test helper
	Posted

	// Failed forces the payment to the failed state via the test helper
	Failed
)

var transactionResults = [...]string{
	"",
	"posted",
	"failed",
}

// String representation of `TransactionResult`
func (t TransactionResult) String() string {
	return transactionResults[t]
}

// ParseTransactionResult maps the wire value onto the tagged variant. An
// absent value means the payment is left unforced.
func ParseTransactionResult(value string) (TransactionResult, error) {
	switch value {
	case "":
		return Unforced, nil
	case "posted":
		return Posted, nil
	case "failed":
		return Failed, nil
	default:
		return Unforced, fmt.Errorf("invalid transaction result [%s]", value)
	}
}

// SendMoneyRequest is the data received in the body of the incoming
// send-money request. Amount is kept as a string so the service layer owns
// the minor-unit conversion contract.
type SendMoneyRequest struct {
	Amount            string `json:"amount"             validate:"required"`
	Network           string `json:"network"            validate:"required,oneof=ach us_domestic_wire"`
	Name              string `json:"name"               validate:"required"`
	City              string `json:"city"`
	State             string `json:"state"`
	PostalCode        string `json:"postalCode"`
	Line1             string `json:"line1"`
	TransactionResult string `json:"transaction_result" validate:"omitempty,oneof=posted failed"`
}
