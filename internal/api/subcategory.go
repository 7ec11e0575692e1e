package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListSubcategories returns subcategories, optionally scoped to one budget
// category (budgetID > 0).
func (c *Client) ListSubcategories(ctx context.Context, budgetID int64) ([]Subcategory, error) {
	q := url.Values{}
	if budgetID != 0 {
		q.Set("budgetId", strconv.FormatInt(budgetID, 10))
	}
	var out []Subcategory
	err := c.get(ctx, "/subcategory", q, &out)
	return out, err
}

// GetSubcategory fetches a single subcategory by id.
func (c *Client) GetSubcategory(ctx context.Context, id int64) (Subcategory, error) {
	var out Subcategory
	err := c.get(ctx, fmt.Sprintf("/subcategory/%d", id), nil, &out)
	return out, err
}

// CreateSubcategory adds a subcategory under a budget category.
func (c *Client) CreateSubcategory(ctx context.Context, s Subcategory) (Subcategory, error) {
	var out Subcategory
	err := c.post(ctx, "/subcategory", s, &out)
	return out, err
}

// UpdateSubcategory replaces an existing subcategory.
func (c *Client) UpdateSubcategory(ctx context.Context, id int64, s Subcategory) (Subcategory, error) {
	var out Subcategory
	err := c.put(ctx, fmt.Sprintf("/subcategory/%d", id), nil, s, &out)
	return out, err
}

// DeleteSubcategory removes a subcategory.
func (c *Client) DeleteSubcategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/subcategory/%d", id))
}
