package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	dom "github.com/csuiter/screen-time-rewards/internal/domain/policy"

	"github.com/redis/go-redis/v9"
)

// systemPoliciesKey is the hash the provisioning side keeps policy
// metadata under.
const systemPoliciesKey = "policy:system"

// Client reads policy metadata from the local Redis instance. It is the
// second, independent backend of the bridge; the firewall daemon knows
// nothing about it.
type Client struct {
	rdb *redis.Client
}

// NewClient creates a store client for the given Redis address.
func NewClient(addr string) *Client {
	return &Client{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// ListPolicies returns the policy:system hash rendered as text, one
// "field value" line per entry in field order. Callers wrap the text in a
// {"raw": ...} body, preserving the shape the listing has always had.
func (c *Client) ListPolicies(ctx context.Context) (string, error) {
	entries, err := c.rdb.HGetAll(ctx, systemPoliciesKey).Result()
	if err != nil {
		return "", fmt.Errorf("%w: hgetall %s: %v", dom.ErrBackendUnavailable, systemPoliciesKey, err)
	}
	return renderHash(entries), nil
}

// Close releases the underlying Redis connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

func renderHash(entries map[string]string) string {
	fields := make([]string, 0, len(entries))
	for field := range entries {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	for _, field := range fields {
		b.WriteString(field)
		b.WriteByte(' ')
		b.WriteString(entries[field])
		b.WriteByte('\n')
	}
	return b.String()
}
