// Package amadeus is the consolidator connector. All calls go through a
// shared token-bucket limiter honoring the 100 requests/minute ceiling
// agreed with the partner.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"voyager/utils"

	"golang.org/x/time/rate"
)

const (
	apiURL     = "https://api.amadeus.com"
	testAPIURL = "https://test.api.amadeus.com"
)

// Client is an Amadeus API client with OAuth2 client-credentials auth.
type Client struct {
	apiKey     string
	apiSecret  string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	retryCfg   *utils.RetryConfig

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a client. requestsPerMin caps the outbound request
// rate; the consolidator contract allows at most 100.
func NewClient(apiKey, apiSecret string, useTest bool, requestsPerMin int) *Client {
	base := apiURL
	if useTest {
		base = testAPIURL
	}
	if requestsPerMin <= 0 || requestsPerMin > 100 {
		requestsPerMin = 100
	}
	return &Client{
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		baseURL:    base,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMin)), requestsPerMin/10+1),
		retryCfg:   utils.DefaultRetryConfig(),
	}
}

// Configured reports whether API credentials are present.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != "" && c.apiSecret != ""
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// token returns a cached OAuth token, refreshing it when close to expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("amadeus token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("amadeus token request returned %d: %s", resp.StatusCode, string(body))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	c.accessToken = tr.AccessToken
	// Refresh one minute early.
	c.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn-60) * time.Second)
	return c.accessToken, nil
}

// get performs an authenticated GET with rate limiting and retry, and
// decodes the `data` array of the response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	_, err := utils.RetryWithBackoff(ctx, c.retryCfg, func() (struct{}, error) {
		return struct{}{}, c.getOnce(ctx, path, query, out)
	})
	return err
}

func (c *Client) getOnce(ctx context.Context, path string, query url.Values, out interface{}) error {
	tok, err := c.token(ctx)
	if err != nil {
		return err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("amadeus request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Token may have been revoked server-side; drop it so the next
		// attempt re-authenticates.
		c.mu.Lock()
		c.accessToken = ""
		c.mu.Unlock()
		return fmt.Errorf("amadeus returned 401 unauthorized")
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("amadeus returned %d: %s", resp.StatusCode, string(body))
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode amadeus response: %w", err)
	}
	if len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode amadeus data: %w", err)
	}
	return nil
}
