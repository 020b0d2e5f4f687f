package egress

import (
	"context"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/desteklab/concierge/pkg/events"
)

type capturingRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *capturingRecorder) Record(_ context.Context, event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func TestCheckURL(t *testing.T) {
	recorder := &capturingRecorder{}
	guard := NewGuard([]string{"internal.example.com"}, recorder)
	ctx := context.Background()

	t.Run("https to a public host passes", func(t *testing.T) {
		assert.NoError(t, guard.CheckURL(ctx, "https", "api.example.com"))
	})

	t.Run("non-http scheme is blocked", func(t *testing.T) {
		err := guard.CheckURL(ctx, "file", "etc")
		assert.ErrorIs(t, err, ErrBlocked)
	})

	t.Run("gopher scheme is blocked", func(t *testing.T) {
		assert.ErrorIs(t, guard.CheckURL(ctx, "gopher", "example.com"), ErrBlocked)
	})

	t.Run("deny-listed host is blocked", func(t *testing.T) {
		assert.ErrorIs(t, guard.CheckURL(ctx, "https", "INTERNAL.example.com"), ErrBlocked)
	})

	t.Run("empty host is blocked", func(t *testing.T) {
		assert.ErrorIs(t, guard.CheckURL(ctx, "https", ""), ErrBlocked)
	})

	t.Run("literal loopback is blocked", func(t *testing.T) {
		assert.ErrorIs(t, guard.CheckURL(ctx, "http", "127.0.0.1"), ErrBlocked)
	})

	t.Run("literal metadata address is blocked", func(t *testing.T) {
		assert.ErrorIs(t, guard.CheckURL(ctx, "http", "169.254.169.254"), ErrBlocked)
	})

	t.Run("ipv6 loopback is blocked", func(t *testing.T) {
		assert.ErrorIs(t, guard.CheckURL(ctx, "http", "[::1]"), ErrBlocked)
	})

	t.Run("blocks are recorded as security events", func(t *testing.T) {
		recorder.mu.Lock()
		defer recorder.mu.Unlock()
		assert.NotEmpty(t, recorder.events)
		for _, event := range recorder.events {
			assert.Equal(t, events.TypeSSRFProtection, event.Type)
		}
	})
}

func TestPublicIP(t *testing.T) {
	tests := []struct {
		addr   string
		public bool
	}{
		{"93.184.216.34", true},
		{"8.8.8.8", true},
		{"127.0.0.1", false},
		{"10.0.0.5", false},
		{"172.16.4.2", false},
		{"192.168.1.1", false},
		{"169.254.169.254", false},
		{"100.64.0.1", false},
		{"100.127.255.254", false},
		{"192.0.0.1", false},
		{"0.0.0.0", false},
		{"224.0.0.1", false},
		{"::1", false},
		{"fc00::1", false},
		{"fd12::1", false},
		{"fe80::1", false},
		{"2606:4700::1111", true},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			ip := net.ParseIP(tt.addr)
			assert.NotNil(t, ip)
			assert.Equal(t, tt.public, publicIP(ip))
		})
	}
}

func TestControlDialRejectsPrivateResolution(t *testing.T) {
	guard := NewGuard(nil, nil)

	assert.ErrorIs(t, guard.controlDial("tcp", "10.0.0.5:443", nil), ErrBlocked)
	assert.ErrorIs(t, guard.controlDial("tcp", "169.254.169.254:80", nil), ErrBlocked)
	assert.NoError(t, guard.controlDial("tcp", "93.184.216.34:443", nil))
}

func TestClientRedirectBudget(t *testing.T) {
	guard := NewGuard(nil, nil)
	client := guard.Client(0)
	assert.NotNil(t, client.CheckRedirect)
}
