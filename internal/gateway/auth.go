package gateway

import (
	"context"
	"net/http"

	"github.com/dkoval/projectdesk/internal/model"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Message string     `json:"message"`
	User    model.User `json:"user"`
}

// Login exchanges credentials for the upstream user record. The upstream
// session cookie lands in the client's jar and rides along on every later
// call. Invalid credentials surface as *APIError with status 401.
func (c *Client) Login(ctx context.Context, email, password string) (model.User, error) {
	var resp loginResp
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginReq{Email: email, Password: password}, &resp); err != nil {
		return model.User{}, err
	}
	resp.User.Role = model.NormalizeRole(resp.User.Role)
	return resp.User, nil
}

// Logout tears down the upstream session. Callers treat any error as
// best-effort noise; the local session is cleared regardless.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}
