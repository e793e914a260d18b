package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Result is the provider's verdict on a single token. Passed false means the
// provider answered but rejected the token; transport failures are returned as
// errors from Verify instead and must be treated as a rejection by callers
// (fail closed).
type Result struct {
	Passed      bool
	Score       *float64
	ErrorCodes  []string
	ChallengeTS string
	Hostname    string
}

type siteverifyResponse struct {
	Success     bool     `json:"success"`
	Score       *float64 `json:"score"`
	ErrorCodes  []string `json:"error-codes"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
}

type Client struct {
	secret    string
	verifyURL string
	http      *http.Client
}

// NewClient requires a non-empty secret; the unconfigured case is the caller's
// policy decision and never reaches this package.
func NewClient(secret string) *Client {
	return &Client{
		secret:    secret,
		verifyURL: defaultVerifyURL,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithURL points the client at a non-default verification endpoint.
func NewClientWithURL(secret, verifyURL string) *Client {
	c := NewClient(secret)
	c.verifyURL = verifyURL
	return c
}

func (c *Client) Verify(ctx context.Context, token string) (*Result, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, "POST", c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("siteverify request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("siteverify returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed siteverifyResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("siteverify returned invalid JSON: %w", err)
	}

	return &Result{
		Passed:      parsed.Success,
		Score:       parsed.Score,
		ErrorCodes:  parsed.ErrorCodes,
		ChallengeTS: parsed.ChallengeTS,
		Hostname:    parsed.Hostname,
	}, nil
}
