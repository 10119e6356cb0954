package api

import (
	"context"
	"net/http"
)

// LoginInput are the credentials for POST /login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the payload for POST /register.
type RegisterInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// AuthResult is the token+user pair returned by login and register.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/login", nil, in)
	if err != nil {
		return nil, err
	}
	result, err := decodeData[AuthResult](env)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a new account. The returned token is not used by this
// client's flow; callers log in explicitly afterwards.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/register", nil, in)
	if err != nil {
		return nil, err
	}
	result, err := decodeData[AuthResult](env)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout notifies the server that the current token should be revoked.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/logout", nil, nil)
	return err
}
