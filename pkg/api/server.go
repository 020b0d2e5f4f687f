// Package api exposes the HTTP surface: the turn endpoint, channel
// webhook adapters, health, metrics, and the admin security-event view.
// Handlers translate payloads and status codes; every turn decision
// lives in the orchestrator.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/desteklab/concierge/ent"
	"github.com/desteklab/concierge/pkg/database"
	"github.com/desteklab/concierge/pkg/models"
)

// TurnHandler processes one conversational turn. Implemented by the
// orchestrator.
type TurnHandler interface {
	HandleIncomingMessage(ctx context.Context, req *models.TurnRequest) *models.TurnResponse
}

// EventSource reads recorded security events for the admin surface.
type EventSource interface {
	RecentByType(ctx context.Context, eventType string, limit int) ([]*ent.SecurityEvent, error)
}

// Server is the HTTP server.
type Server struct {
	turns  TurnHandler
	db     *database.Client
	events EventSource

	http *http.Server
}

// NewServer creates the API server. db and events may be nil in tests;
// the endpoints that need them then report unavailable.
func NewServer(turns TurnHandler, db *database.Client, events EventSource) *Server {
	return &Server{turns: turns, db: db, events: events}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), securityHeaders())

	router.GET("/healthz", s.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/turns", s.HandleTurn)
		v1.GET("/security-events/:type", s.ListSecurityEvents)
	}

	hooks := router.Group("/webhooks")
	{
		hooks.POST("/whatsapp", s.HandleWhatsAppWebhook)
		hooks.POST("/email", s.HandleEmailWebhook)
	}
	return router
}

// Start runs the HTTP server on addr, blocking until shutdown.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// HealthCheck reports process and database health.
func (s *Server) HealthCheck(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}

// ListSecurityEvents handles GET /api/v1/security-events/:type.
func (s *Server) ListSecurityEvents(c *gin.Context) {
	if s.events == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "security event store unavailable"})
		return
	}
	limit := 50
	rows, err := s.events.RecentByType(c.Request.Context(), c.Param("type"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load security events"})
		return
	}

	events := make([]gin.H, len(rows))
	for i, row := range rows {
		events[i] = gin.H{
			"id":          row.ID,
			"event_type":  row.EventType,
			"session_id":  row.SessionID,
			"business_id": row.BusinessID,
			"detail":      row.Detail,
			"created_at":  row.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}
