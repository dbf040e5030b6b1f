// Package netx implements the two-tier connectivity probe: a cheap
// interface-level link check, and an active round-trip to a no-content
// endpoint for operations that must be certain.
package netx

import (
	"context"
	"net"
	"net/http"
	"time"
)

// Probe reports whether a usable network path to the internet exists.
type Probe interface {
	// HasLink is the cheap tier: an up, non-loopback interface with an
	// address exists. It says nothing about actual reachability.
	HasLink() bool

	// HasInternet is the active tier: a short round-trip to a known
	// no-content endpoint succeeded. Timeouts, DNS failures and any other
	// I/O error all report false; the error is never surfaced.
	HasInternet(ctx context.Context) bool
}

// HTTPProbe probes a generate_204-style endpoint.
type HTTPProbe struct {
	endpoint string
	client   *http.Client
}

// NewHTTPProbe returns a probe against endpoint with the given per-attempt
// timeout.
func NewHTTPProbe(endpoint string, timeout time.Duration) *HTTPProbe {
	return &HTTPProbe{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProbe) HasLink() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err == nil && len(addrs) > 0 {
			return true
		}
	}
	return false
}

func (p *HTTPProbe) HasInternet(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return false
	}
	req.Header.Set("Connection", "close")

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	// Only a no-content status counts as real internet access; captive
	// portals answer with a page and a 200.
	return resp.StatusCode == http.StatusNoContent
}
