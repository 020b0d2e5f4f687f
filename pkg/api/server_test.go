package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desteklab/concierge/pkg/models"
	"github.com/desteklab/concierge/pkg/outcome"
)

type fakeTurnHandler struct {
	lastReq *models.TurnRequest
	resp    *models.TurnResponse
}

func (f *fakeTurnHandler) HandleIncomingMessage(_ context.Context, req *models.TurnRequest) *models.TurnResponse {
	f.lastReq = req
	if f.resp != nil {
		return f.resp
	}
	return &models.TurnResponse{Reply: "Merhaba!", Outcome: outcome.OK}
}

func newTestServer() (*Server, *fakeTurnHandler) {
	handler := &fakeTurnHandler{}
	return NewServer(handler, nil, nil), handler
}

func postJSON(t *testing.T, router http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleTurn(t *testing.T) {
	server, handler := newTestServer()
	router := server.Router()

	t.Run("valid request reaches the orchestrator", func(t *testing.T) {
		rec := postJSON(t, router, "/api/v1/turns", TurnRequestBody{
			Channel:       "CHAT",
			BusinessID:    "biz-1",
			ChannelUserID: "visitor-9",
			UserMessage:   "merhaba",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, handler.lastReq)
		assert.Equal(t, models.ChannelChat, handler.lastReq.Channel)
		assert.Equal(t, "biz-1", handler.lastReq.BusinessID)

		var resp models.TurnResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Merhaba!", resp.Reply)
		assert.Equal(t, outcome.OK, resp.Outcome)
	})

	t.Run("unknown channel rejected", func(t *testing.T) {
		rec := postJSON(t, router, "/api/v1/turns", TurnRequestBody{
			Channel:       "FAX",
			BusinessID:    "biz-1",
			ChannelUserID: "visitor-9",
			UserMessage:   "merhaba",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing message rejected by binding", func(t *testing.T) {
		rec := postJSON(t, router, "/api/v1/turns", map[string]string{
			"channel":     "CHAT",
			"business_id": "biz-1",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing identity rejected", func(t *testing.T) {
		rec := postJSON(t, router, "/api/v1/turns", TurnRequestBody{
			Channel:     "CHAT",
			BusinessID:  "biz-1",
			UserMessage: "merhaba",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversized message rejected", func(t *testing.T) {
		rec := postJSON(t, router, "/api/v1/turns", TurnRequestBody{
			Channel:       "CHAT",
			BusinessID:    "biz-1",
			ChannelUserID: "visitor-9",
			UserMessage:   strings.Repeat("a", maxMessageLength+1),
		})
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestWhatsAppWebhook(t *testing.T) {
	server, handler := newTestServer()
	router := server.Router()

	rec := postJSON(t, router, "/webhooks/whatsapp", WhatsAppWebhookBody{
		BusinessID: "biz-1",
		From:       "+905551234567",
		MessageID:  "wamid-1",
		Text:       "siparişim nerede",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, handler.lastReq)
	assert.Equal(t, models.ChannelWhatsApp, handler.lastReq.Channel)
	assert.Equal(t, "+905551234567", handler.lastReq.ChannelUserID)
	assert.Equal(t, "wamid-1", handler.lastReq.MessageID)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Merhaba!", body["reply"])
}

func TestEmailWebhook(t *testing.T) {
	server, handler := newTestServer()
	router := server.Router()

	rec := postJSON(t, router, "/webhooks/email", EmailWebhookBody{
		BusinessID: "biz-1",
		From:       "Musteri@Example.com",
		Subject:    "Sipariş durumu",
		Body:       "SIP-12345 nolu siparişim ne zaman gelir?",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, handler.lastReq)
	assert.Equal(t, models.ChannelEmail, handler.lastReq.Channel)
	assert.Equal(t, "musteri@example.com", handler.lastReq.ChannelUserID)
	assert.True(t, strings.HasPrefix(handler.lastReq.UserMessage, "Sipariş durumu\n\n"))
}

func TestHealthWithoutDatabase(t *testing.T) {
	server, _ := newTestServer()
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecurityEventsUnavailableWithoutStore(t *testing.T) {
	server, _ := newTestServer()
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/security-events/PII_BLOCK", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSecurityHeadersSet(t *testing.T) {
	server, _ := newTestServer()
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestMetricsEndpointRegistered(t *testing.T) {
	server, _ := newTestServer()
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
