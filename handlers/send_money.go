package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/acmeplatform/embedded-finance.api/helpers"
	"github.com/acmeplatform/embedded-finance.api/models"
	"github.com/acmeplatform/embedded-finance.api/service"
	"github.com/acmeplatform/embedded-finance.api/utils"
)

// HandleSendMoney creates an outbound payment from the session account's
// treasury financial account
func HandleSendMoney(w http.ResponseWriter, req *http.Request) {
	session, ok := req.Context().Value(helpers.ContextKeySession).(*models.Session)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid Session in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var sendMoneyRequest models.SendMoneyRequest
	err := requestDecoder.Decode(&sendMoneyRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	responseType, err := sendMoneyService.SendMoney(req, session, sendMoneyRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error sending money: [%v]", err))
		switch responseType {
		case service.InvalidData:
			utils.WriteJSONWithStatus(w, req, models.NewErrorResponse(err.Error()), http.StatusBadRequest)
			return
		case service.NotFound:
			utils.WriteJSONWithStatus(w, req, models.NewErrorResponse(err.Error()), http.StatusNotFound)
			return
		default:
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONWithStatus(w, req, models.NewSuccessResponse(nil), http.StatusOK)

	log.InfoR(req, "Successful POST request to send money", log.Data{"account_id": session.StripeAccount.AccountID})
}
