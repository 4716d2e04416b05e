package main

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/commercehub/easy-checkout-api/config"
	"github.com/commercehub/easy-checkout-api/handlers"
)

func main() {
	log.Namespace = "easy-checkout-api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		return
	}

	router := mux.NewRouter()

	if err = handlers.Register(router, *cfg); err != nil {
		log.Error(err)
		return
	}

	log.Info("Starting easy-checkout-api service")
	err = http.ListenAndServe(cfg.BindAddr, router)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting easy-checkout-api service")
}
