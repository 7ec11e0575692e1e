package api

import (
	"context"
	"fmt"
	"net/url"
)

// ListBudgets returns the current month's budgets.
func (c *Client) ListBudgets(ctx context.Context) ([]Budget, error) {
	var out []Budget
	err := c.get(ctx, "/budget", nil, &out)
	return out, err
}

// BudgetsForMonth returns budgets for a specific month ("2006-01"), or all
// months when month is empty.
func (c *Client) BudgetsForMonth(ctx context.Context, month string) ([]Budget, error) {
	q := url.Values{}
	if month != "" {
		q.Set("month", month)
	}
	var out []Budget
	err := c.get(ctx, "/budget/all", q, &out)
	return out, err
}

// BudgetSummary returns actual spend per category for the current period.
func (c *Client) BudgetSummary(ctx context.Context) ([]BudgetSummaryItem, error) {
	var out []BudgetSummaryItem
	err := c.get(ctx, "/budget/summary", nil, &out)
	return out, err
}

// CreateBudget sets a budget amount for a category.
func (c *Client) CreateBudget(ctx context.Context, b Budget) (Budget, error) {
	var out Budget
	err := c.post(ctx, "/budget", b, &out)
	return out, err
}

// UpdateBudget replaces an existing budget.
func (c *Client) UpdateBudget(ctx context.Context, id int64, b Budget) (Budget, error) {
	var out Budget
	err := c.put(ctx, fmt.Sprintf("/budget/%d", id), nil, b, &out)
	return out, err
}

// DeleteBudget removes a budget.
func (c *Client) DeleteBudget(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/budget/%d", id))
}

// RolloverBudgets copies the previous period's budget configuration into the
// current period.
func (c *Client) RolloverBudgets(ctx context.Context) error {
	return c.post(ctx, "/budget/rollover", nil, nil)
}
