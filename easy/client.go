// Package easy is the HTTP client for the Nets Easy payment API. Credentials
// are carried in a ClientConfig value passed to every call, so a single
// client is safe to share between requests for different sales channels.
package easy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/commercehub/easy-checkout-api/models"
)

// Easy environments and their API endpoints
const (
	EnvironmentTest = "test"
	EnvironmentLive = "live"

	APIBaseTest = "https://test.api.dibspayment.eu"
	APIBaseLive = "https://api.dibspayment.eu"

	CheckoutJSAssetTest = "https://test.checkout.dibspayment.eu/v1/checkout.js?v=1"
	CheckoutJSAssetLive = "https://checkout.dibspayment.eu/v1/checkout.js?v=1"
)

//go:generate mockgen -source=client.go -destination=mock_client.go -package=easy

// Client is the interface for all requests made to the Easy API
type Client interface {
	CreatePayment(cfg ClientConfig, payload *models.PaymentRequest) (string, error)
	ChargePayment(cfg ClientConfig, paymentID string, payload *models.ReconciliationPayload) (string, error)
	RefundPayment(cfg ClientConfig, chargeID string, payload *models.ReconciliationPayload) (string, error)
	GetPayment(cfg ClientConfig, paymentID string) (*models.Payment, error)
}

// ClientConfig carries the per-call credentials for one sales channel
type ClientConfig struct {
	Environment string
	SecretKey   string
}

// Validate checks the config holds usable credentials. It is called before
// any request is built so misconfigured channels never reach the network.
func (c ClientConfig) Validate() error {
	if c.Environment == "" || c.SecretKey == "" {
		return ErrMissingCredentials
	}
	if c.apiBase() == "" {
		return fmt.Errorf("invalid easy environment: %s", c.Environment)
	}
	return nil
}

func (c ClientConfig) apiBase() string {
	switch c.Environment {
	case EnvironmentTest:
		return APIBaseTest
	case EnvironmentLive:
		return APIBaseLive
	default:
		return ""
	}
}

// CheckoutJSAsset returns the checkout script URL for an environment
func CheckoutJSAsset(environment string) string {
	if environment == EnvironmentLive {
		return CheckoutJSAssetLive
	}
	return CheckoutJSAssetTest
}

// HTTPClient is the Client implementation calling the Easy REST API
type HTTPClient struct{}

// CreatePayment creates a payment in Easy and returns the payment id
func (c *HTTPClient) CreatePayment(cfg ClientConfig, payload *models.PaymentRequest) (string, error) {
	body, err := c.post(cfg, "/v1/payments", payload, http.StatusCreated)
	if err != nil {
		return "", err
	}

	response := &models.CreatePaymentResponse{}
	err = json.Unmarshal(body, response)
	if err != nil {
		return "", fmt.Errorf("error reading create payment response from Easy: [%s]", err)
	}
	if response.PaymentID == "" {
		return "", fmt.Errorf("create payment response from Easy contains no payment id")
	}

	return response.PaymentID, nil
}

// ChargePayment charges an amount against a created payment and returns the
// charge id
func (c *HTTPClient) ChargePayment(cfg ClientConfig, paymentID string, payload *models.ReconciliationPayload) (string, error) {
	body, err := c.post(cfg, "/v1/payments/"+paymentID+"/charges", payload, http.StatusCreated)
	if err != nil {
		return "", err
	}

	response := &models.ChargeResponse{}
	err = json.Unmarshal(body, response)
	if err != nil {
		return "", fmt.Errorf("error reading charge response from Easy: [%s]", err)
	}

	return response.ChargeID, nil
}

// RefundPayment refunds an amount against a charge and returns the refund id
func (c *HTTPClient) RefundPayment(cfg ClientConfig, chargeID string, payload *models.ReconciliationPayload) (string, error) {
	body, err := c.post(cfg, "/v1/charges/"+chargeID+"/refunds", payload, http.StatusCreated)
	if err != nil {
		return "", err
	}

	response := &models.RefundResponse{}
	err = json.Unmarshal(body, response)
	if err != nil {
		return "", fmt.Errorf("error reading refund response from Easy: [%s]", err)
	}

	return response.RefundID, nil
}

// GetPayment fetches the authoritative payment resource from Easy
func (c *HTTPClient) GetPayment(cfg ClientConfig, paymentID string) (*models.Payment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	request, err := http.NewRequest("GET", cfg.apiBase()+"/v1/payments/"+paymentID, nil)
	if err != nil {
		return nil, fmt.Errorf("error generating request for Easy: [%s]", err)
	}
	addHeaders(request, cfg)

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending request to Easy to get payment: [%s]", err)
	}

	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from Easy: [%s]", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	response := &models.GetPaymentResponse{}
	err = json.Unmarshal(body, response)
	if err != nil {
		return nil, fmt.Errorf("error reading payment response from Easy: [%s]", err)
	}

	return &response.Payment, nil
}

func (c *HTTPClient) post(cfg ClientConfig, path string, payload interface{}, wantStatus int) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error reading request payload for Easy: [%s]", err)
	}

	request, err := http.NewRequest("POST", cfg.apiBase()+path, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("error generating request for Easy: [%s]", err)
	}
	addHeaders(request, cfg)

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending request to Easy: [%s]", err)
	}

	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from Easy: [%s]", err)
	}

	// charge and refund endpoints occasionally answer 200 instead of 201
	if resp.StatusCode != wantStatus && resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

func addHeaders(request *http.Request, cfg ClientConfig) {
	request.Header.Add("accept", "application/json")
	request.Header.Add("authorization", cfg.SecretKey)
	request.Header.Add("content-type", "application/json")
}
