package api

import (
	"context"
	"fmt"
)

// ListCategories returns all spending categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	err := c.get(ctx, "/category", nil, &out)
	return out, err
}

// GetCategory fetches a single category by id.
func (c *Client) GetCategory(ctx context.Context, id int64) (Category, error) {
	var out Category
	err := c.get(ctx, fmt.Sprintf("/category/%d", id), nil, &out)
	return out, err
}

// CreateCategory adds a category. Transactions reference categories by name,
// so the category must exist before expenses use it.
func (c *Client) CreateCategory(ctx context.Context, cat Category) (Category, error) {
	var out Category
	err := c.post(ctx, "/category", cat, &out)
	return out, err
}

// UpdateCategory replaces an existing category.
func (c *Client) UpdateCategory(ctx context.Context, id int64, cat Category) (Category, error) {
	var out Category
	err := c.put(ctx, fmt.Sprintf("/category/%d", id), nil, cat, &out)
	return out, err
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/category/%d", id))
}
