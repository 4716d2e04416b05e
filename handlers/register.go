package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/commercehub/easy-checkout-api/config"
	"github.com/commercehub/easy-checkout-api/easy"
	"github.com/commercehub/easy-checkout-api/service"
	"github.com/commercehub/easy-checkout-api/statemachine"
)

var checkoutService *service.CheckoutService
var reconcileService *service.ReconcileService

// Register defines the route mappings for the main router
func Register(mainRouter *mux.Router, cfg config.Config) error {
	store, err := statemachine.NewMongoStore(cfg.MongoDBURL, cfg.Database, cfg.Collection)
	if err != nil {
		return fmt.Errorf("error creating transaction store: [%v]", err)
	}
	client := &easy.HTTPClient{}
	channels := &config.Channels{Cfg: &cfg}

	checkoutService = &service.CheckoutService{
		Client:        client,
		ChannelConfig: channels,
	}

	reconcileService = &service.ReconcileService{
		Client:        client,
		ChannelConfig: channels,
		Transitions:   store,
		Details:       store,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	paymentRouter := mainRouter.PathPrefix("/checkout/payments").Subrouter()
	paymentRouter.HandleFunc("", HandleCreatePayment).Methods("POST").Name("create-payment")
	paymentRouter.HandleFunc("/{payment_id}/charge", HandleChargePayment).Methods("POST").Name("charge-payment")
	paymentRouter.HandleFunc("/{payment_id}/refund", HandleRefundPayment).Methods("POST").Name("refund-payment")

	return nil
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
