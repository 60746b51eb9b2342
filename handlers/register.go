package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/acmeplatform/embedded-finance.api/config"
	"github.com/acmeplatform/embedded-finance.api/interceptors"
	"github.com/acmeplatform/embedded-finance.api/models"
	"github.com/acmeplatform/embedded-finance.api/service"
)

var onboardService *service.OnboardService
var sendMoneyService *service.SendMoneyService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg *config.Config) {

	clientFor := func(platform models.Platform) (service.StripeSDK, error) {
		return service.GetStripeClient(platform, cfg)
	}

	onboardService = &service.OnboardService{
		ClientFor: clientFor,
		Config:    cfg,
	}

	sendMoneyService = &service.SendMoneyService{
		ClientFor: clientFor,
		Config:    cfg,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Both API endpoints need a demo session, so they share a subrouter with
	// the session interceptor. Non-POST methods are answered by the router
	// before the handlers run.
	apiRouter := mainRouter.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/onboard", HandleOnboard).Methods("POST").Name("onboard")
	apiRouter.HandleFunc("/send_money", HandleSendMoney).Methods("POST").Name("send-money")

	apiRouter.Use(log.Handler, interceptors.SessionIntercept)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
