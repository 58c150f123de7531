package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tab-kiosk/internal/domain/catalog"
	"tab-kiosk/internal/pkg/config"
	"tab-kiosk/internal/pkg/errs"
)

// Client speaks the ledger's RPC-over-HTTP surface: POST /rest/v1/rpc/<fn>
// with JSON arguments, rows back as a JSON array. An empty row set is a valid
// "no result" outcome, not an error.
type Client struct {
	endpointURL string
	apiKey      string
	httpClient  *http.Client
}

func NewClient(cfg config.LedgerConfig) *Client {
	return &Client{
		endpointURL: strings.TrimRight(cfg.EndpointURL, "/"),
		apiKey:      cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// ServiceError carries the ledger's error message verbatim.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

type itemRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
}

type balanceRow struct {
	BalanceCents int `json:"balance_cents"`
}

type bookingRow struct {
	NewBalanceCents int `json:"new_balance_cents"`
}

func (c *Client) ListActiveItems(ctx context.Context) ([]catalog.Item, error) {
	var rows []itemRow
	if err := c.rpc(ctx, "list_active_items", nil, &rows); err != nil {
		return nil, err
	}

	items := make([]catalog.Item, 0, len(rows))
	for _, row := range rows {
		item, err := catalog.NewItem(row.ID, row.Name, row.PriceCents)
		if err != nil {
			return nil, errs.Wrap(err, fmt.Sprintf("invalid catalog row %q", row.ID))
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *Client) GetBalanceByDisplayID(ctx context.Context, displayID string) (*int, error) {
	args := map[string]string{"_display_id": displayID}

	var rows []balanceRow
	if err := c.rpc(ctx, "get_balance_by_display_id", args, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	balance := rows[0].BalanceCents
	return &balance, nil
}

func (c *Client) BookTransaction(ctx context.Context, displayID, itemID string, quantity int, channel string) (*int, error) {
	args := map[string]any{
		"_display_id": displayID,
		"_item_id":    itemID,
		"_qty":        quantity,
		"_by":         channel,
	}

	var rows []bookingRow
	if err := c.rpc(ctx, "book_transaction", args, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	balance := rows[0].NewBalanceCents
	return &balance, nil
}

func (c *Client) rpc(ctx context.Context, fn string, args any, out any) error {
	if args == nil {
		args = map[string]any{}
	}
	payload, err := json.Marshal(args)
	if err != nil {
		return errs.Wrap(err, "failed to encode rpc arguments")
	}

	url := fmt.Sprintf("%s/rest/v1/rpc/%s", c.endpointURL, fn)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to create rpc request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, fmt.Sprintf("rpc %s failed", fn))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return serviceError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, fmt.Sprintf("failed to decode rpc %s response", fn))
	}
	return nil
}

func serviceError(resp *http.Response) error {
	svcErr := &ServiceError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return svcErr
	}
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		svcErr.Message = parsed.Message
	}
	return svcErr
}
