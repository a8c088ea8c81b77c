package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Heartbeat is the payload a service posts to the registry.
type Heartbeat struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Client announces a service instance to the registry at a fixed interval.
// Registration is best-effort: a failed heartbeat is logged and retried on
// the next tick, never fatal to the service.
type Client struct {
	baseURL  string
	name     string
	address  string
	interval time.Duration
	http     *http.Client
}

func NewClient(baseURL, name, address string, interval time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		name:     name,
		address:  address,
		interval: interval,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Run sends one heartbeat immediately, then one per interval until ctx is
// cancelled. Meant to run in its own goroutine.
func (c *Client) Run(ctx context.Context) {
	c.send(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.send(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) send(ctx context.Context) {
	body, err := json.Marshal(Heartbeat{Name: c.name, Address: c.address})
	if err != nil {
		log.Warn().Err(err).Msg("Heartbeat encode failed")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/registry/heartbeat", bytes.NewReader(body))
	if err != nil {
		log.Warn().Err(err).Msg("Heartbeat request build failed")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("registry", c.baseURL).Msg("Heartbeat failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Warn().
			Int("status", resp.StatusCode).
			Str("registry", c.baseURL).
			Msgf("Heartbeat rejected for %s", c.name)
	}
}
