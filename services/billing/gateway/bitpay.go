package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/codermehran/Mo/internal/pkg/circuitbreaker"
	httpclient "github.com/codermehran/Mo/internal/pkg/http"
	"github.com/codermehran/Mo/internal/pkg/models"
)

// ErrMissingInvoiceID is returned when the gateway accepts an invoice but does not name it
var ErrMissingInvoiceID = errors.New("gateway response has no invoice id")

type invoiceRequest struct {
	Price    int64          `json:"price"`
	Currency string         `json:"currency"`
	OrderID  string         `json:"orderId"`
	PosData  invoicePosData `json:"posData"`
}

type invoicePosData struct {
	ClinicID    string `json:"clinic_id"`
	PlanID      string `json:"plan_id"`
	ReferenceID string `json:"reference_id"`
}

// BitPayGateway opens invoices and verifies transactions against a BitPay-style API
type BitPayGateway struct {
	client *httpclient.Client
	cfg    models.GatewayConfig
}

// NewBitPayGateway creates the payment gateway client
func NewBitPayGateway(cfg models.GatewayConfig, breaker *circuitbreaker.CircuitBreaker) *BitPayGateway {
	client := httpclient.NewClient("", cfg.Timeout)
	if breaker != nil {
		client.WithBreaker(breaker)
	}
	return &BitPayGateway{
		client: client,
		cfg:    cfg,
	}
}

// CreateInvoice opens a hosted checkout for req
func (g *BitPayGateway) CreateInvoice(ctx context.Context, req *models.InvoiceRequest) (*models.Invoice, error) {
	body := invoiceRequest{
		Price:    req.Amount,
		Currency: req.Currency,
		OrderID:  req.ReferenceID,
		PosData: invoicePosData{
			ClinicID:    req.ClinicID.String(),
			PlanID:      req.PlanID.String(),
			ReferenceID: req.ReferenceID,
		},
	}
	headers := map[string]string{"Authorization": "Bearer " + g.cfg.APIKey}

	var resp map[string]interface{}
	if err := g.client.PostJSON(ctx, g.cfg.InvoiceURL, headers, body, &resp); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	data, ok := resp["data"].(map[string]interface{})
	if !ok {
		data = resp
	}

	invoiceID := stringValue(data["id"])
	if invoiceID == "" {
		return nil, ErrMissingInvoiceID
	}
	checkoutURL := stringValue(data["url"])
	if checkoutURL == "" {
		checkoutURL = g.cfg.CheckoutURL + invoiceID
	}

	return &models.Invoice{
		InvoiceID:   invoiceID,
		CheckoutURL: checkoutURL,
		Raw:         models.Metadata(data),
	}, nil
}

// VerifyTransaction asks the gateway for the authoritative state of a transaction
func (g *BitPayGateway) VerifyTransaction(ctx context.Context, transactionID, invoiceID string) (*models.TransactionVerification, error) {
	form := url.Values{}
	form.Set("api", g.cfg.APIKey)
	form.Set("trans_id", transactionID)
	form.Set("id_get", invoiceID)
	form.Set("json", "1")

	var resp map[string]interface{}
	if err := g.client.PostForm(ctx, g.cfg.VerifyURL, nil, form, &resp); err != nil {
		return nil, fmt.Errorf("failed to verify transaction: %w", err)
	}

	return &models.TransactionVerification{
		Status:      strings.ToUpper(stringValue(resp["status"])),
		ReferenceID: stringValue(resp["factorId"]),
		Raw:         models.Metadata(resp),
	}, nil
}

// stringValue renders a decoded JSON scalar; numbers lose no digits
func stringValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
