package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/commercehub/easy-checkout-api/models"
	"github.com/commercehub/easy-checkout-api/service"
)

// HandleCreatePayment creates a payment in Easy from the posted sales-channel
// context
func HandleCreatePayment(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingRequest models.IncomingCreatePaymentRequest
	err := requestDecoder.Decode(&incomingRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	checkoutType := incomingRequest.CheckoutType
	if checkoutType == "" {
		checkoutType = service.CheckoutTypeEmbedded
	}

	resource, responseType, err := checkoutService.CreatePayment(&incomingRequest.Context, checkoutType, incomingRequest.Transaction)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating payment: [%v]", err), log.Data{"service_response_type": responseType.String()})
		w.WriteHeader(statusFor(responseType))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	err = json.NewEncoder(w).Encode(resource)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		return
	}

	log.InfoR(req, "Successful POST request for new payment", log.Data{"payment_id": resource.PaymentID, "status": http.StatusCreated})
}

// HandleChargePayment charges an amount against an existing payment
func HandleChargePayment(w http.ResponseWriter, req *http.Request) {
	reconcile(w, req, reconcileService.ChargePayment, "charge")
}

// HandleRefundPayment refunds an amount against an existing payment
func HandleRefundPayment(w http.ResponseWriter, req *http.Request) {
	reconcile(w, req, reconcileService.RefundPayment, "refund")
}

func reconcile(w http.ResponseWriter, req *http.Request,
	operation func(*models.Order, string, string, decimal.Decimal) (*models.ReconciliationPayload, service.ResponseType, error),
	name string) {

	paymentID := mux.Vars(req)["payment_id"]
	if paymentID == "" {
		log.ErrorR(req, fmt.Errorf("payment id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var incomingRequest models.IncomingReconcileRequest
	err := requestDecoder.Decode(&incomingRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	payload, responseType, err := operation(&incomingRequest.Order, incomingRequest.SalesChannelID, paymentID, incomingRequest.Amount)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error handling %s: [%v]", name, err), log.Data{"service_response_type": responseType.String()})
		w.WriteHeader(statusFor(responseType))
		return
	}

	w.Header().Set("Content-Type", "application/json")

	err = json.NewEncoder(w).Encode(payload)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		return
	}

	log.InfoR(req, "Successful POST request for payment "+name, log.Data{"payment_id": paymentID, "amount": payload.Amount})
}

func statusFor(responseType service.ResponseType) int {
	switch responseType {
	case service.InvalidData:
		return http.StatusBadRequest
	case service.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
