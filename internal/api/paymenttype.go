package api

import (
	"context"
	"fmt"
)

// ListPaymentTypes returns all payment types.
func (c *Client) ListPaymentTypes(ctx context.Context) ([]PaymentType, error) {
	var out []PaymentType
	err := c.get(ctx, "/paymenttype", nil, &out)
	return out, err
}

// CreatePaymentType adds a payment type.
func (c *Client) CreatePaymentType(ctx context.Context, p PaymentType) (PaymentType, error) {
	var out PaymentType
	err := c.post(ctx, "/paymenttype", p, &out)
	return out, err
}

// UpdatePaymentType replaces an existing payment type.
func (c *Client) UpdatePaymentType(ctx context.Context, id int64, p PaymentType) (PaymentType, error) {
	var out PaymentType
	err := c.put(ctx, fmt.Sprintf("/paymenttype/%d", id), nil, p, &out)
	return out, err
}

// DeletePaymentType removes a payment type.
func (c *Client) DeletePaymentType(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/paymenttype/%d", id))
}
