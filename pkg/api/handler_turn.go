package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/desteklab/concierge/pkg/models"
)

// maxMessageLength caps inbound message size before the pipeline runs.
const maxMessageLength = 8000

// TurnRequestBody is the POST /api/v1/turns payload.
type TurnRequestBody struct {
	Channel       string            `json:"channel" binding:"required"`
	BusinessID    string            `json:"business_id" binding:"required"`
	ChannelUserID string            `json:"channel_user_id"`
	SessionID     string            `json:"session_id"`
	MessageID     string            `json:"message_id"`
	UserMessage   string            `json:"user_message" binding:"required"`
	Language      string            `json:"language"`
	Metadata      map[string]string `json:"metadata"`
}

// HandleTurn handles POST /api/v1/turns, the generic chat entrypoint.
func (s *Server) HandleTurn(c *gin.Context) {
	var body TurnRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	channel := models.Channel(body.Channel)
	if !channel.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown channel " + body.Channel})
		return
	}
	if len(body.UserMessage) > maxMessageLength {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "message too long"})
		return
	}
	if body.SessionID == "" && body.ChannelUserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "channel_user_id or session_id is required"})
		return
	}

	resp := s.turns.HandleIncomingMessage(c.Request.Context(), &models.TurnRequest{
		Channel:       channel,
		BusinessID:    body.BusinessID,
		ChannelUserID: body.ChannelUserID,
		SessionID:     body.SessionID,
		MessageID:     body.MessageID,
		UserMessage:   body.UserMessage,
		Language:      body.Language,
		Metadata:      body.Metadata,
	})
	c.JSON(http.StatusOK, resp)
}
