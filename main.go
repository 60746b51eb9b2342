package main

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/acmeplatform/embedded-finance.api/config"
	"github.com/acmeplatform/embedded-finance.api/handlers"
)

func main() {
	log.Namespace = "embedded-finance.api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	router := mux.NewRouter()
	handlers.Register(router, cfg)

	log.Info("Starting embedded-finance.api service", log.Data{"demo_mode": cfg.DemoMode})

	err = http.ListenAndServe(cfg.BindAddr, router)
	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting embedded-finance.api service")
}
