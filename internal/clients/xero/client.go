// Package xero is an HTTP client for the Xero accounting API, used to raise
// and track invoices for approved timesheets.
package xero

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/apperrors"
	portssvc "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/oauth2/clientcredentials"
)

type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a Xero client authenticating with the client credentials
// grant. An empty ClientID yields a client whose calls fail with
// apperrors.ErrUnavailable so approval flows degrade instead of blocking.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	c := &Client{baseURL: cfg.BaseURL, logger: logger}
	if cfg.ClientID == "" {
		logger.Warn("Xero client credentials are empty, invoicing calls will be unavailable")
		return c
	}

	oauthCfg := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       []string{"accounting.transactions"},
	}
	c.httpClient = oauthCfg.Client(context.Background())
	c.httpClient.Timeout = cfg.Timeout
	return c
}

var _ portssvc.AccountingProvider = (*Client)(nil)

type invoicePayload struct {
	Type      string           `json:"Type"`
	Contact   contactRef       `json:"Contact"`
	DueDate   string           `json:"DueDate"`
	Status    string           `json:"Status"`
	LineItems []lineItemRecord `json:"LineItems"`
}

type contactRef struct {
	ContactID string `json:"ContactID"`
}

type lineItemRecord struct {
	Description string          `json:"Description"`
	Quantity    decimal.Decimal `json:"Quantity"`
	UnitAmount  decimal.Decimal `json:"UnitAmount"`
}

type invoiceRecord struct {
	InvoiceID     string          `json:"InvoiceID"`
	InvoiceNumber string          `json:"InvoiceNumber"`
	Status        string          `json:"Status"`
	AmountPaid    decimal.Decimal `json:"AmountPaid"`
}

type invoicesEnvelope struct {
	Invoices []invoiceRecord `json:"Invoices"`
}

// CreateInvoice raises an authorised accounts-receivable invoice with a single
// line item for the given contact.
func (c *Client) CreateInvoice(ctx context.Context, contactID string, line portssvc.InvoiceLineItem, dueDate time.Time) (*portssvc.AccountingInvoice, error) {
	if c.httpClient == nil {
		return nil, fmt.Errorf("%w: xero client not configured", apperrors.ErrUnavailable)
	}

	payload := invoicePayload{
		Type:    "ACCREC",
		Contact: contactRef{ContactID: contactID},
		DueDate: dueDate.Format("2006-01-02"),
		Status:  "AUTHORISED",
		LineItems: []lineItemRecord{{
			Description: line.Description,
			Quantity:    line.Hours,
			UnitAmount:  line.Rate,
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice payload: %w", err)
	}

	env, err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/api.xro/2.0/Invoices", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if len(env.Invoices) == 0 {
		return nil, fmt.Errorf("%w: xero returned no invoice", apperrors.ErrUnavailable)
	}
	inv := env.Invoices[0]
	return &portssvc.AccountingInvoice{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		Status:        inv.Status,
		AmountPaid:    inv.AmountPaid,
	}, nil
}

// GetInvoice fetches the current status of an invoice.
func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (*portssvc.AccountingInvoice, error) {
	if c.httpClient == nil {
		return nil, fmt.Errorf("%w: xero client not configured", apperrors.ErrUnavailable)
	}

	env, err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/api.xro/2.0/Invoices/"+invoiceID, nil)
	if err != nil {
		return nil, err
	}
	if len(env.Invoices) == 0 {
		return nil, apperrors.ErrNotFound
	}
	inv := env.Invoices[0]
	return &portssvc.AccountingInvoice{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		Status:        inv.Status,
		AmountPaid:    inv.AmountPaid,
	}, nil
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body *bytes.Reader) (*invoicesEnvelope, error) {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build xero request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Xero request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: xero request failed", apperrors.ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		c.logger.Warn("Xero returned non-OK status", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: xero returned status %d", apperrors.ErrUnavailable, resp.StatusCode)
	}

	var env invoicesEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: failed to decode xero response", apperrors.ErrUnavailable)
	}
	return &env, nil
}
