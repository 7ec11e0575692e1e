package api

import (
	"context"
	"net/url"
	"strconv"
)

// GetProfile fetches the current user's profile.
func (c *Client) GetProfile(ctx context.Context) (Profile, error) {
	var p Profile
	err := c.get(ctx, "/user/me", nil, &p)
	return p, err
}

// UpdateProfile replaces the current user's profile.
func (c *Client) UpdateProfile(ctx context.Context, p Profile) (Profile, error) {
	var out Profile
	err := c.put(ctx, "/user/me", nil, p, &out)
	return out, err
}

// UpdateMonthStartDay sets the day of month the user's budget period begins.
func (c *Client) UpdateMonthStartDay(ctx context.Context, day int) error {
	q := url.Values{"day": {strconv.Itoa(day)}}
	return c.put(ctx, "/user/preferences/month-start-day", q, nil, nil)
}

// UpdatePreferences replaces the user's preferences in one call. The backend
// also exposes a query-parameter variant for the same setting; see
// UpdateMonthStartDay.
func (c *Client) UpdatePreferences(ctx context.Context, monthStartDay int) error {
	body := struct {
		MonthStartDay int `json:"monthStartDay"`
	}{monthStartDay}
	return c.put(ctx, "/user/preferences", nil, body, nil)
}
