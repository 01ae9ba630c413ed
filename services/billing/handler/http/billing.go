package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/codermehran/Mo/internal/pkg/logger"
	"github.com/codermehran/Mo/internal/pkg/middleware"
	"github.com/codermehran/Mo/internal/pkg/models"
	"github.com/codermehran/Mo/internal/utils"
	"github.com/codermehran/Mo/services/billing"
	"github.com/labstack/echo/v4"
)

// BillingHandler handles HTTP requests for checkout, status and gateway callbacks
type BillingHandler struct {
	billingUC billing.BillingUC
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingUC billing.BillingUC) *BillingHandler {
	return &BillingHandler{
		billingUC: billingUC,
	}
}

var billingErrors = []struct {
	err    error
	status int
	detail string
}{
	{billing.ErrForbidden, http.StatusForbidden, "You do not have permission to perform this action."},
	{billing.ErrSetupRequired, http.StatusNotFound, "setup_required"},
	{billing.ErrInvalidCheckout, http.StatusBadRequest, "invalid_checkout"},
	{billing.ErrPlanNotFound, http.StatusBadRequest, "plan_not_found"},
	{billing.ErrGatewayNotConfigured, http.StatusInternalServerError, "gateway_not_configured"},
	{billing.ErrGateway, http.StatusBadGateway, "gateway_error"},
	{billing.ErrMissingReference, http.StatusBadRequest, "missing_reference"},
	{billing.ErrPaymentNotFound, http.StatusNotFound, "payment_not_found"},
	{billing.ErrReferenceMismatch, http.StatusBadRequest, "reference_mismatch"},
}

var webhookStatus = map[models.WebhookOutcome]int{
	models.WebhookOK:               http.StatusOK,
	models.WebhookAlreadyProcessed: http.StatusOK,
	models.WebhookIgnoredStatus:    http.StatusAccepted,
}

func billingErrorResponse(c echo.Context, err error) error {
	for _, e := range billingErrors {
		if errors.Is(err, e.err) {
			return utils.ErrorResponseHandler(c, e.status, e.detail)
		}
	}

	logger.Error("Unexpected billing error",
		logger.ErrorField(err),
		logger.String("path", c.Path()))
	return utils.InternalServerErrorResponse(c, "")
}

// CreateCheckout handles POST /api/billing/create-checkout
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for checkout",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateCheckout"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.billingUC.CreateCheckout(c.Request().Context(), claims.UserID, &req)
	if err != nil {
		return billingErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, resp)
}

// GetStatus handles GET /api/billing/status
func (h *BillingHandler) GetStatus(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	status, err := h.billingUC.GetBillingStatus(c.Request().Context(), claims.UserID)
	if err != nil {
		return billingErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, status)
}

// Webhook handles POST /api/billing/webhook/bitpay
func (h *BillingHandler) Webhook(c echo.Context) error {
	params, err := webhookParams(c)
	if err != nil {
		logger.Warn("Invalid webhook payload", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid_payload")
	}

	notification := &models.WebhookNotification{
		TransactionID: firstParam(params, "trans_id", "transaction_id"),
		InvoiceID:     firstParam(params, "id_get", "invoice_id"),
		ReferenceID:   firstParam(params, "factorId", "reference_id", "id"),
		Status:        strings.ToUpper(firstParam(params, "status")),
		Raw:           params,
	}

	outcome, err := h.billingUC.HandleWebhook(c.Request().Context(), notification)
	if err != nil {
		return billingErrorResponse(c, err)
	}

	return utils.DetailResponseHandler(c, webhookStatus[outcome], string(outcome))
}

// webhookParams reads the callback as JSON or as a form, whichever was sent
func webhookParams(c echo.Context) (models.Metadata, error) {
	params := models.Metadata{}
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	if strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		body, err := io.ReadAll(io.LimitReader(c.Request().Body, 1<<20))
		if err != nil {
			return nil, err
		}
		if len(body) == 0 {
			return params, nil
		}
		// keep numeric ids verbatim
		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.UseNumber()
		if err := decoder.Decode(&params); err != nil {
			return nil, err
		}
		return params, nil
	}

	form, err := c.FormParams()
	if err != nil {
		return nil, err
	}
	for k, v := range form {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	for k, v := range c.QueryParams() {
		if _, ok := params[k]; !ok && len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params, nil
}

func firstParam(params models.Metadata, keys ...string) string {
	for _, k := range keys {
		v, ok := params[k]
		if !ok || v == nil {
			continue
		}
		if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
			return s
		}
	}
	return ""
}
