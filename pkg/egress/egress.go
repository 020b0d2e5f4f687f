// Package egress provides the outbound HTTP client tools must use.
// Every dial is validated after DNS resolution so redirects and
// rebinding cannot route a request into internal networks.
package egress

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/desteklab/concierge/pkg/events"
)

// ErrBlocked wraps every SSRF rejection.
var ErrBlocked = fmt.Errorf("egress blocked")

// Guard validates outbound destinations and builds the hardened client.
type Guard struct {
	denyHosts map[string]bool
	recorder  events.Recorder
}

// NewGuard creates a guard with a hostname deny-list. recorder may be
// nil; blocks are then only logged.
func NewGuard(denyHosts []string, recorder events.Recorder) *Guard {
	deny := make(map[string]bool, len(denyHosts))
	for _, host := range denyHosts {
		deny[strings.ToLower(strings.TrimSpace(host))] = true
	}
	return &Guard{denyHosts: deny, recorder: recorder}
}

// Client returns an http.Client whose transport enforces the guard on
// the initial request and on every redirect hop.
func (g *Guard) Client(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
		// Control runs after resolution, on the literal address being
		// dialed.
		Control: g.controlDial,
	}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		MaxIdleConns:          20,
		IdleConnTimeout:       60 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 5 {
				return fmt.Errorf("%w: too many redirects", ErrBlocked)
			}
			return g.CheckURL(req.Context(), req.URL.Scheme, req.URL.Hostname())
		},
	}
}

// CheckURL validates scheme and hostname before a request is attempted.
// Resolved-address enforcement still happens at dial time.
func (g *Guard) CheckURL(ctx context.Context, scheme, hostname string) error {
	scheme = strings.ToLower(scheme)
	if scheme != "http" && scheme != "https" {
		return g.block(ctx, hostname, "scheme "+scheme+" not allowed")
	}
	host := strings.ToLower(hostname)
	if host == "" {
		return g.block(ctx, hostname, "empty host")
	}
	if g.denyHosts[host] {
		return g.block(ctx, hostname, "host on deny-list")
	}
	if ip := net.ParseIP(strings.Trim(host, "[]")); ip != nil && !publicIP(ip) {
		return g.block(ctx, hostname, "literal address is not public")
	}
	return nil
}

func (g *Guard) controlDial(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBlocked, address)
	}
	ip := net.ParseIP(host)
	if ip == nil || !publicIP(ip) {
		g.record(context.Background(), address, "resolved address is not public")
		return fmt.Errorf("%w: %s resolves to a non-public address", ErrBlocked, address)
	}
	return nil
}

func (g *Guard) block(ctx context.Context, target, reason string) error {
	g.record(ctx, target, reason)
	return fmt.Errorf("%w: %s: %s", ErrBlocked, target, reason)
}

func (g *Guard) record(ctx context.Context, target, reason string) {
	slog.Warn("Outbound request blocked", "target", target, "reason", reason)
	if g.recorder != nil {
		g.recorder.Record(ctx, events.Event{
			Type:   events.TypeSSRFProtection,
			Detail: map[string]any{"target": target, "reason": reason},
		})
	}
}

// publicIP reports whether the address is safe to dial: not loopback,
// not private, not link-local (cloud metadata lives there), not
// unspecified, multicast, or carrier-grade NAT.
func publicIP(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsMulticast() {
		return false
	}
	if v4 := ip.To4(); v4 != nil {
		// 100.64.0.0/10 carrier-grade NAT.
		if v4[0] == 100 && v4[1]&0xc0 == 64 {
			return false
		}
		// 192.0.0.0/24 protocol assignments.
		if v4[0] == 192 && v4[1] == 0 && v4[2] == 0 {
			return false
		}
		return true
	}
	// Unique-local fc00::/7.
	if len(ip) == net.IPv6len && ip[0]&0xfe == 0xfc {
		return false
	}
	return true
}
