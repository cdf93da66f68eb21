package gateway

import (
	"context"
	"net/http"
	"net/url"
)

type CreateExpenseInput struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Notes    string  `json:"notes,omitempty"`
	SpentAt  string  `json:"spentAt,omitempty"`
}

func (c *Client) CreateExpense(ctx context.Context, input CreateExpenseInput) error {
	return c.do(ctx, http.MethodPost, "/api/v1/expense/create", input, nil, true)
}

func (c *Client) ExpensesByCategory(ctx context.Context, startDate, endDate string) ([]CategoryTotal, error) {
	return c.categoryTotals(ctx, "/api/v1/expense/category", startDate, endDate)
}

func (c *Client) RevenueByCategory(ctx context.Context, startDate, endDate string) ([]CategoryTotal, error) {
	return c.categoryTotals(ctx, "/api/v1/revenue/category", startDate, endDate)
}

func (c *Client) categoryTotals(ctx context.Context, path, startDate, endDate string) ([]CategoryTotal, error) {
	var payload struct {
		Data []CategoryTotal `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path+rangeQuery(startDate, endDate), nil, &payload, true); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// DownloadReport fetches the rendered PDF as a raw blob.
func (c *Client) DownloadReport(ctx context.Context, reportType, startDate, endDate string) ([]byte, error) {
	path := "/api/v1/download-report/" + url.PathEscape(reportType) + rangeQuery(startDate, endDate)
	var blob []byte
	if err := c.do(ctx, http.MethodGet, path, nil, &blob, true); err != nil {
		return nil, err
	}
	return blob, nil
}

func rangeQuery(startDate, endDate string) string {
	query := url.Values{}
	if startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate != "" {
		query.Set("endDate", endDate)
	}
	if len(query) == 0 {
		return ""
	}
	return "?" + query.Encode()
}
