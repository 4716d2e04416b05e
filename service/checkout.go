package service

import (
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/commercehub/easy-checkout-api/config"
	"github.com/commercehub/easy-checkout-api/easy"
	"github.com/commercehub/easy-checkout-api/models"
)

// Checkout types supported by Easy
const (
	CheckoutTypeEmbedded = "embedded"
	CheckoutTypeHosted   = "hosted"
)

const integrationTypeHosted = "HostedPaymentPage"

var validate = validator.New()

// CheckoutService builds payment-creation requests from sales-channel data
// and submits them to Easy
type CheckoutService struct {
	Client        easy.Client
	ChannelConfig config.ChannelConfig
}

// BuildPaymentRequest assembles the full payment-creation payload. When a
// transaction is present the payment is built from its order; otherwise from
// the context's live cart.
func (service *CheckoutService) BuildPaymentRequest(channelContext *models.SalesChannelContext, checkoutType string, transaction *models.PaymentTransaction) (*models.PaymentRequest, error) {
	var order *models.Order
	if transaction != nil {
		order = &transaction.Order
	}

	source, err := models.SourceFor(channelContext.Cart, order)
	if err != nil {
		return nil, err
	}

	var reference string
	var amount decimal.Decimal
	if transaction != nil {
		reference = transaction.Order.OrderNumber
		amount = transaction.Order.AmountTotal
	} else {
		reference = channelContext.Token
		amount = channelContext.Cart.Price.TotalPrice
	}

	request := &models.PaymentRequest{
		Order: models.OrderRequest{
			Items:     ExtractItems(source),
			Amount:    MinorUnits(amount),
			Currency:  channelContext.CurrencyISOCode,
			Reference: reference,
		},
	}

	if transaction != nil {
		request.Checkout.ReturnURL = transaction.ReturnURL
	}

	termsURL, err := service.ChannelConfig.TermsAndConditionsURL(channelContext.SalesChannelID)
	if err != nil {
		return nil, fmt.Errorf("error getting terms url: [%v]", err)
	}
	request.Checkout.TermsURL = termsURL

	chargeNow, err := service.ChannelConfig.ChargeNow(channelContext.SalesChannelID)
	if err != nil {
		return nil, fmt.Errorf("error getting charge-now setting: [%v]", err)
	}
	if chargeNow == "yes" {
		// the provider expects the literal string, not a boolean
		request.Checkout.Charge = "true"
	}

	request.Checkout.MerchantHandlesConsumerData = true

	// exactly one of integrationType and url is set
	switch checkoutType {
	case CheckoutTypeHosted:
		request.Checkout.IntegrationType = integrationTypeHosted
	case CheckoutTypeEmbedded:
		finishURL, err := service.ChannelConfig.CheckoutFinishURL(channelContext.SalesChannelID)
		if err != nil {
			return nil, fmt.Errorf("error getting checkout finish url: [%v]", err)
		}
		request.Checkout.URL = finishURL
	default:
		return nil, fmt.Errorf("unknown checkout type: %s", checkoutType)
	}

	request.Checkout.Consumer = buildConsumer(channelContext.Customer)

	return request, nil
}

// CreatePayment builds and validates the payment payload, then creates the
// payment in Easy, returning the provider's payment id and the checkout
// script URL for the channel's environment
func (service *CheckoutService) CreatePayment(channelContext *models.SalesChannelContext, checkoutType string, transaction *models.PaymentTransaction) (*models.CreatePaymentResourceResponse, ResponseType, error) {
	clientConfig, err := clientConfigFor(service.ChannelConfig, channelContext.SalesChannelID)
	if err != nil {
		return nil, Error, err
	}

	request, err := service.BuildPaymentRequest(channelContext, checkoutType, transaction)
	if err != nil {
		if err == models.ErrUnknownSource {
			return nil, InvalidData, err
		}
		return nil, Error, err
	}

	if err = validate.Struct(request); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid payment request: [%v]", err)
	}

	paymentID, err := service.Client.CreatePayment(clientConfig, request)
	if err != nil {
		return nil, Error, fmt.Errorf("error creating payment in Easy: [%v]", err)
	}

	log.Info("payment created in Easy", log.Data{
		"payment_id":    paymentID,
		"reference":     request.Order.Reference,
		"amount":        request.Order.Amount,
		"checkout_type": checkoutType,
	})

	return &models.CreatePaymentResourceResponse{
		PaymentID:     paymentID,
		CheckoutJSURL: easy.CheckoutJSAsset(clientConfig.Environment),
	}, Success, nil
}

// Consumer block: a business consumer when the billing address carries a
// company name, a private person otherwise, never both. Country is already
// ISO-3 on the shop side.
func buildConsumer(customer models.Customer) models.Consumer {
	consumer := models.Consumer{
		Email: customer.Email,
		ShippingAddress: models.ConsumerAddress{
			AddressLine1: Sanitize(customer.ShippingAddress.Street),
			AddressLine2: Sanitize(customer.ShippingAddress.AdditionalAddressLine),
			PostalCode:   customer.ShippingAddress.Zipcode,
			City:         Sanitize(customer.ShippingAddress.City),
			Country:      customer.ShippingAddress.CountryISO3,
		},
	}

	contact := models.ConsumerContact{
		FirstName: Sanitize(customer.FirstName),
		LastName:  Sanitize(customer.LastName),
	}

	if customer.BillingAddress.Company != "" {
		consumer.Company = &models.ConsumerCompany{
			Name:    Sanitize(customer.BillingAddress.Company),
			Contact: contact,
		}
	} else {
		consumer.PrivatePerson = &contact
	}

	return consumer
}

// clientConfigFor resolves a channel's Easy credentials into the per-call
// client config. Missing credentials surface here, before any API call.
func clientConfigFor(channelConfig config.ChannelConfig, channelID string) (easy.ClientConfig, error) {
	environment, err := channelConfig.Environment(channelID)
	if err != nil {
		return easy.ClientConfig{}, fmt.Errorf("error getting environment: [%v]", err)
	}

	secretKey, err := channelConfig.SecretKey(channelID)
	if err != nil {
		return easy.ClientConfig{}, fmt.Errorf("error getting secret key: [%v]", err)
	}

	return easy.ClientConfig{Environment: environment, SecretKey: secretKey}, nil
}
