package tracker

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Result is the outcome of a postback call. Tracker failures are reported
// through Success/StatusCode, never as an error, so callers can persist
// locally regardless of the tracker being reachable.
type Result struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// Client sends server-to-server postbacks to the tracking platform.
type Client struct {
	baseURL    string
	hash       string
	httpClient *http.Client
}

// NewClient creates a postback client. baseURL is the tracker's public
// API root (e.g. https://hooplaseft.com/api/v3) and hash authenticates
// the postback.
func NewClient(baseURL, hash string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		hash:    hash,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SendGoal fires a goal postback (GET {base}/goal/{goalID}). Extra params
// are appended to the query string as-is.
func (c *Client) SendGoal(ctx context.Context, goalID, clickID, affiliateID string, params map[string]string) Result {
	q := url.Values{}
	q.Set("hash", c.hash)
	q.Set("click_id", clickID)
	q.Set("affiliate_id", affiliateID)
	for k, v := range params {
		q.Set(k, v)
	}

	return c.get(ctx, fmt.Sprintf("%s/goal/%s?%s", c.baseURL, goalID, q.Encode()))
}

// SendOffer fires an offer notification (GET {base}/offer/{offerID}).
// Used for affiliate signups from the contact form.
func (c *Client) SendOffer(ctx context.Context, offerID string, params url.Values) Result {
	return c.get(ctx, fmt.Sprintf("%s/offer/%s?%s", c.baseURL, offerID, params.Encode()))
}

// OfferURL builds the tracking link for an offer without calling the
// tracker. Returned to affiliates so they can verify their parameters.
func (c *Client) OfferURL(offerID string, params url.Values) string {
	return fmt.Sprintf("%s/offer/%s?%s", c.baseURL, offerID, params.Encode())
}

func (c *Client) get(ctx context.Context, rawURL string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Result{Success: false, Message: err.Error(), StatusCode: http.StatusInternalServerError}
	}
	req.Header.Set("User-Agent", "Barracuda Partners API")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[TRACKER] request failed: %v", err)
		return Result{Success: false, Message: err.Error(), StatusCode: http.StatusInternalServerError}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return Result{Success: false, Message: err.Error(), StatusCode: resp.StatusCode}
	}

	return Result{
		Success:    resp.StatusCode >= 200 && resp.StatusCode < 300,
		Message:    string(body),
		StatusCode: resp.StatusCode,
	}
}
