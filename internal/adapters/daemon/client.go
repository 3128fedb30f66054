package daemon

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	dom "github.com/csuiter/screen-time-rewards/internal/domain/policy"

	"github.com/go-resty/resty/v2"
)

// Client talks to the local firewall daemon's internal v1 API. The daemon
// is the authority on policy state; the bridge never caches or reshapes
// what it returns beyond the raw-body fallback below.
type Client struct {
	http *resty.Client
}

// NewClient creates a daemon client for the given base URL (for example
// "http://127.0.0.1:8181"). Every call is bounded by timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
	}
}

// GetPolicy fetches the daemon's view of a policy.
func (c *Client) GetPolicy(ctx context.Context, id string) (any, error) {
	return c.call(ctx, resty.MethodGet, "/v1/policy/"+id)
}

// EnablePolicy applies the policy, blocking the internet access it governs.
func (c *Client) EnablePolicy(ctx context.Context, id string) (any, error) {
	return c.call(ctx, resty.MethodPost, "/v1/policy/"+id+"/enable")
}

// DisablePolicy lifts the policy, allowing the internet access it governs.
func (c *Client) DisablePolicy(ctx context.Context, id string) (any, error) {
	return c.call(ctx, resty.MethodPost, "/v1/policy/"+id+"/disable")
}

func (c *Client) call(ctx context.Context, method, path string) (any, error) {
	resp, err := c.http.R().SetContext(ctx).Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", dom.ErrBackendUnavailable, method, path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s %s: daemon returned %s", dom.ErrBackendUnavailable, method, path, resp.Status())
	}
	return decodeBody(resp.Body()), nil
}

// decodeBody parses the daemon's body as JSON. The internal API is not
// documented, so a non-JSON body is wrapped verbatim instead of failing
// the request.
func decodeBody(body []byte) any {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return map[string]string{"raw": string(body)}
	}
	return v
}
