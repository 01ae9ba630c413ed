package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/codermehran/Mo/internal/pkg/http"
	"github.com/codermehran/Mo/internal/pkg/models"
)

func testGatewayConfig(serverURL string) models.GatewayConfig {
	return models.GatewayConfig{
		APIKey:      "gateway-token",
		InvoiceURL:  serverURL + "/invoices",
		VerifyURL:   serverURL + "/gateway-result-second",
		CheckoutURL: "https://bitpay.ir/invoice/",
		Currency:    "IRR",
		Timeout:     time.Second,
	}
}

func TestBitPayGateway_CreateInvoice(t *testing.T) {
	clinicID := uuid.New()
	planID := uuid.New()

	tests := []struct {
		name    string
		reply   string
		wantID  string
		wantURL string
	}{
		{
			name:    "Wrapped in data",
			reply:   `{"data":{"id":"inv-1","url":"https://pay.example/inv-1"}}`,
			wantID:  "inv-1",
			wantURL: "https://pay.example/inv-1",
		},
		{
			name:    "Top level with numeric id and no url",
			reply:   `{"id":9876543210,"status":"new"}`,
			wantID:  "9876543210",
			wantURL: "https://bitpay.ir/invoice/9876543210",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/invoices", r.URL.Path)
				assert.Equal(t, "Bearer gateway-token", r.Header.Get("Authorization"))

				var body map[string]interface{}
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, 490000.0, body["price"])
				assert.Equal(t, "IRR", body["currency"])
				assert.Equal(t, "ref-1", body["orderId"])
				assert.Equal(t, map[string]interface{}{
					"clinic_id":    clinicID.String(),
					"plan_id":      planID.String(),
					"reference_id": "ref-1",
				}, body["posData"])

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.reply))
			}))
			defer server.Close()

			gw := NewBitPayGateway(testGatewayConfig(server.URL), nil)
			invoice, err := gw.CreateInvoice(context.Background(), &models.InvoiceRequest{
				Amount:      490000,
				Currency:    "IRR",
				ReferenceID: "ref-1",
				ClinicID:    clinicID,
				PlanID:      planID,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, invoice.InvoiceID)
			assert.Equal(t, tt.wantURL, invoice.CheckoutURL)
			assert.NotEmpty(t, invoice.Raw)
		})
	}
}

func TestBitPayGateway_CreateInvoiceSendsExactPrice(t *testing.T) {
	// 2^53+1 has no exact float64 representation
	const amount int64 = 9007199254740993

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decoder := json.NewDecoder(r.Body)
		decoder.UseNumber()
		var body map[string]interface{}
		assert.NoError(t, decoder.Decode(&body))
		assert.Equal(t, json.Number("9007199254740993"), body["price"])
		w.Write([]byte(`{"id":"inv-1"}`))
	}))
	defer server.Close()

	gw := NewBitPayGateway(testGatewayConfig(server.URL), nil)
	_, err := gw.CreateInvoice(context.Background(), &models.InvoiceRequest{Amount: amount, Currency: "IRR", ReferenceID: "ref-1"})
	require.NoError(t, err)
}

func TestBitPayGateway_CreateInvoiceErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "No invoice id",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":{"url":"https://pay.example/x"}}`))
			},
			wantErr: ErrMissingInvoiceID,
		},
		{
			name: "Not JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>maintenance</html>`))
			},
			wantErr: httpclient.ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			gw := NewBitPayGateway(testGatewayConfig(server.URL), nil)
			_, err := gw.CreateInvoice(context.Background(), &models.InvoiceRequest{Amount: 1, ReferenceID: "ref"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("Upstream 5xx", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		gw := NewBitPayGateway(testGatewayConfig(server.URL), nil)
		_, err := gw.CreateInvoice(context.Background(), &models.InvoiceRequest{Amount: 1, ReferenceID: "ref"})

		var httpErr *httpclient.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	})
}

func TestBitPayGateway_VerifyTransaction(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		wantStatus string
		wantRef    string
	}{
		{
			name:       "Numeric status",
			reply:      `{"status":1,"amount":490000,"factorId":"ref-1"}`,
			wantStatus: "1",
			wantRef:    "ref-1",
		},
		{
			name:       "String status",
			reply:      `{"status":"paid","factorId":"ref-1"}`,
			wantStatus: "PAID",
			wantRef:    "ref-1",
		},
		{
			name:       "Failure without reference",
			reply:      `{"status":-1}`,
			wantStatus: "-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/gateway-result-second", r.URL.Path)
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "gateway-token", r.PostForm.Get("api"))
				assert.Equal(t, "tx-9", r.PostForm.Get("trans_id"))
				assert.Equal(t, "inv-1", r.PostForm.Get("id_get"))
				assert.Equal(t, "1", r.PostForm.Get("json"))
				w.Write([]byte(tt.reply))
			}))
			defer server.Close()

			gw := NewBitPayGateway(testGatewayConfig(server.URL), nil)
			v, err := gw.VerifyTransaction(context.Background(), "tx-9", "inv-1")

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, v.Status)
			assert.Equal(t, tt.wantRef, v.ReferenceID)
		})
	}
}
