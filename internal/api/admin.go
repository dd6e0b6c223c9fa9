package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/golasco/golasco/internal/domain"
)

// VerifyPendingUser approves a pending agent or franchise owner account.
func (c *Client) VerifyPendingUser(ctx context.Context, userID string) (*domain.Identity, error) {
	path := "/api/super-admin/users/" + url.PathEscape(userID) + "/verify"
	resp, err := c.doRequest(ctx, http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}

	var identity domain.Identity
	if err := parseResponse(resp, &identity); err != nil {
		return nil, err
	}

	return &identity, nil
}
