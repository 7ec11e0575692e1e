package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListExpenses returns expenses matching the filter. A zero filter returns
// everything.
func (c *Client) ListExpenses(ctx context.Context, f ExpenseFilter) ([]Expense, error) {
	q := url.Values{}
	if f.BudgetID != 0 {
		q.Set("budgetId", strconv.FormatInt(f.BudgetID, 10))
	}
	if f.SubcategoryID != 0 {
		q.Set("subCategoryId", strconv.FormatInt(f.SubcategoryID, 10))
	}
	if f.PaymentType != "" {
		q.Set("paymentType", f.PaymentType)
	}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}

	var out []Expense
	err := c.get(ctx, "/expense", q, &out)
	return out, err
}

// CurrentMonthExpenses returns the active period's transactions.
func (c *Client) CurrentMonthExpenses(ctx context.Context) ([]Expense, error) {
	var out []Expense
	err := c.get(ctx, "/expense/currentmonth", nil, &out)
	return out, err
}

// GetExpense fetches a single expense by id.
func (c *Client) GetExpense(ctx context.Context, id int64) (Expense, error) {
	var out Expense
	err := c.get(ctx, fmt.Sprintf("/expense/%d", id), nil, &out)
	return out, err
}

// CreateExpense records a new transaction.
func (c *Client) CreateExpense(ctx context.Context, e Expense) (Expense, error) {
	var out Expense
	err := c.post(ctx, "/expense", e, &out)
	return out, err
}

// UpdateExpense replaces an existing transaction.
func (c *Client) UpdateExpense(ctx context.Context, id int64, e Expense) (Expense, error) {
	var out Expense
	err := c.put(ctx, fmt.Sprintf("/expense/%d", id), nil, e, &out)
	return out, err
}

// DeleteExpense removes a transaction.
func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/expense/%d", id))
}
