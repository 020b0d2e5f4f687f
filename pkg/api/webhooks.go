package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/desteklab/concierge/pkg/models"
)

// WhatsAppWebhookBody is the inbound WhatsApp message payload as the
// messaging aggregator delivers it.
type WhatsAppWebhookBody struct {
	BusinessID string `json:"business_id" binding:"required"`
	From       string `json:"from" binding:"required"`
	MessageID  string `json:"message_id"`
	Text       string `json:"text" binding:"required"`
}

// HandleWhatsAppWebhook handles POST /webhooks/whatsapp. The sender's
// phone number is the channel identity and feeds possession proof.
func (s *Server) HandleWhatsAppWebhook(c *gin.Context) {
	var body WhatsAppWebhookBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(body.Text) > maxMessageLength {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "message too long"})
		return
	}

	resp := s.turns.HandleIncomingMessage(c.Request.Context(), &models.TurnRequest{
		Channel:       models.ChannelWhatsApp,
		BusinessID:    body.BusinessID,
		ChannelUserID: body.From,
		MessageID:     body.MessageID,
		UserMessage:   body.Text,
	})
	c.JSON(http.StatusOK, gin.H{
		"reply":              resp.Reply,
		"outcome":            resp.Outcome,
		"should_end_session": resp.ShouldEndSession,
	})
}

// EmailWebhookBody is the inbound email payload from the mail gateway.
type EmailWebhookBody struct {
	BusinessID string `json:"business_id" binding:"required"`
	From       string `json:"from" binding:"required"`
	MessageID  string `json:"message_id"`
	Subject    string `json:"subject"`
	Body       string `json:"body" binding:"required"`
}

// HandleEmailWebhook handles POST /webhooks/email. Subject and body are
// folded into one user message; the sender address is the channel
// identity.
func (s *Server) HandleEmailWebhook(c *gin.Context) {
	var body EmailWebhookBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := strings.TrimSpace(body.Body)
	if subject := strings.TrimSpace(body.Subject); subject != "" {
		message = subject + "\n\n" + message
	}
	if len(message) > maxMessageLength {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "message too long"})
		return
	}

	resp := s.turns.HandleIncomingMessage(c.Request.Context(), &models.TurnRequest{
		Channel:       models.ChannelEmail,
		BusinessID:    body.BusinessID,
		ChannelUserID: strings.ToLower(body.From),
		MessageID:     body.MessageID,
		UserMessage:   message,
	})
	c.JSON(http.StatusOK, gin.H{
		"reply":              resp.Reply,
		"outcome":            resp.Outcome,
		"should_end_session": resp.ShouldEndSession,
	})
}
