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

// HandleOnboard enriches the session's connected account with KYC data and
// returns the redirect URL the web app should follow next
func HandleOnboard(w http.ResponseWriter, req *http.Request) {
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
	var onboardRequest models.OnboardRequest
	err := requestDecoder.Decode(&onboardRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	responseData, responseType, err := onboardService.Onboard(req, session, onboardRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error onboarding account: [%v]", err))
		switch responseType {
		case service.InvalidData:
			utils.WriteJSONWithStatus(w, req, models.NewErrorResponse(err.Error()), http.StatusBadRequest)
			return
		default:
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONWithStatus(w, req, models.NewSuccessResponse(responseData), http.StatusOK)

	log.InfoR(req, "Successful POST request to onboard account", log.Data{"account_id": session.StripeAccount.AccountID, "redirect_url": responseData.RedirectURL})
}
