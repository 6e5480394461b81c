package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

// Scopes requested on every consent screen: identity, email, profile and
// read-only access to the user's Google Docs.
var scopes = []string{
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/documents.readonly",
}

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Credentials are the provider-side tokens obtained from a code exchange.
// RefreshToken is empty when Google omits it on a repeat consent.
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// Client performs the authorization-code exchange against Google. Calls are
// blocking and never retried here: a used authorization code cannot be
// re-exchanged, so retrying is the caller's decision.
type Client interface {
	AuthCodeURL(redirectURI string) string
	Exchange(ctx context.Context, code, redirectURI string) (*Credentials, error)
	FetchEmail(ctx context.Context, creds *Credentials) (string, error)
}

type client struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

func NewClient(clientID, clientSecret string) Client {
	return &client{clientID: clientID, clientSecret: clientSecret, httpClient: http.DefaultClient}
}

// config builds a per-request oauth2.Config; the redirect URI must match the
// one the authorization code was issued for, so it cannot be fixed at startup.
func (c *client) config(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		Endpoint:     googleoauth.Endpoint,
		RedirectURL:  redirectURI,
		Scopes:       scopes,
	}
}

func (c *client) AuthCodeURL(redirectURI string) string {
	return c.config(redirectURI).AuthCodeURL("",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
}

func (c *client) Exchange(ctx context.Context, code, redirectURI string) (*Credentials, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.config(redirectURI).Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return &Credentials{AccessToken: token.AccessToken, RefreshToken: token.RefreshToken}, nil
}

func (c *client) FetchEmail(ctx context.Context, creds *Credentials) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch userinfo: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return "", fmt.Errorf("userinfo error: %d", res.StatusCode)
	}
	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("decode userinfo: %w", err)
	}
	return info.Email, nil
}
