package api

import (
	"context"
	"net/url"
)

// Report ranges accepted by the report endpoints.
const (
	Range3M  = "3m"
	Range6M  = "6m"
	RangeAll = "all"
)

// ValidRange reports whether r is one of the accepted report ranges.
func ValidRange(r string) bool {
	return r == Range3M || r == Range6M || r == RangeAll
}

func (c *Client) report(ctx context.Context, path, rng string) ([]ReportPoint, error) {
	if rng == "" {
		rng = Range6M
	}
	var out []ReportPoint
	err := c.get(ctx, path, url.Values{"range": {rng}}, &out)
	return out, err
}

// ExpenseByCategory returns spend totals per category for the range.
func (c *Client) ExpenseByCategory(ctx context.Context, rng string) ([]ReportPoint, error) {
	return c.report(ctx, "/reports/expense-by-category", rng)
}

// MonthlySummary returns chronological per-month spend totals for the range.
func (c *Client) MonthlySummary(ctx context.Context, rng string) ([]ReportPoint, error) {
	return c.report(ctx, "/reports/monthly-summary", rng)
}

// PaymentTypeSummary returns spend totals per payment type for the range.
func (c *Client) PaymentTypeSummary(ctx context.Context, rng string) ([]ReportPoint, error) {
	return c.report(ctx, "/reports/payment-type-summary", rng)
}

// FetchDashboardStats fetches the pre-aggregated dashboard stat block.
func (c *Client) FetchDashboardStats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	err := c.get(ctx, "/dashboard/stats", nil, &out)
	return out, err
}

// RecentTransactions fetches the dashboard's recent-transactions strip.
func (c *Client) RecentTransactions(ctx context.Context) ([]Expense, error) {
	var out []Expense
	err := c.get(ctx, "/dashboard/recent", nil, &out)
	return out, err
}
