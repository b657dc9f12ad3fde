package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/blackwell-systems/libdash/internal/session"
)

// Login exchanges credentials for a bearer token at POST /login. The body
// is form-encoded, matching the backend's OAuth2 password flow, and the
// call never carries a bearer token of its own.
func (c *Client) Login(username, password string) (string, error) {
	form := url.Values{
		"username": {username},
		"password": {password},
	}
	req, err := http.NewRequest(http.MethodPost, c.authURL("/login"),
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", c.report(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", c.report(fmt.Errorf("request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := extractDetail(resp.Body)
		if detail == "" {
			detail = resp.Status
		}
		return "", c.report(fmt.Errorf("login failed: %s", detail))
	}

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := decodeBody(resp, &out); err != nil {
		return "", c.report(err)
	}
	if out.AccessToken == "" {
		return "", c.report(fmt.Errorf("login response carried no access token"))
	}
	return out.AccessToken, nil
}

// Register creates a new account at POST /register/. The role defaults to
// customer server-side when left empty.
func (c *Client) Register(username, password string, role session.Role) error {
	body := struct {
		Username string       `json:"username"`
		Password string       `json:"password"`
		Role     session.Role `json:"role,omitempty"`
	}{username, password, role}
	return c.doJSON(http.MethodPost, c.authURL("/register/"), body, nil)
}
