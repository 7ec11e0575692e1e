package api

import "context"

// SignInRequest is the signin payload.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest is the signup payload.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn authenticates with email and password.
func (c *Client) SignIn(ctx context.Context, req SignInRequest) (AuthResponse, error) {
	var res AuthResponse
	err := c.post(ctx, "/auth/signin", req, &res)
	return res, err
}

// SignUp registers a new account. The response token may be empty when the
// backend requires a separate login after registration.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (AuthResponse, error) {
	var res AuthResponse
	err := c.post(ctx, "/auth/signup", req, &res)
	return res, err
}
