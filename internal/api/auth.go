package api

import (
	"context"
	"net/http"

	"github.com/golasco/golasco/internal/domain"
)

// LoginRequest is the credentials payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the profile payload for account registration.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

// AuthResponse is the backend answer to a successful login or registration.
type AuthResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	User        *domain.Identity `json:"user"`
}

// Login exchanges credentials for a token and the signed-in identity.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", req)
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := parseResponse(resp, &auth); err != nil {
		return nil, err
	}

	return &auth, nil
}

// Register creates a new account and signs it in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", req)
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := parseResponse(resp, &auth); err != nil {
		return nil, err
	}

	return &auth, nil
}

// Me fetches the identity behind the current token.
func (c *Client) Me(ctx context.Context) (*domain.Identity, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return nil, err
	}

	var identity domain.Identity
	if err := parseResponse(resp, &identity); err != nil {
		return nil, err
	}

	return &identity, nil
}
