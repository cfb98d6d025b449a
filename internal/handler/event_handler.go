package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"pointtrail/config"
	"pointtrail/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler receives platform event notifications over HTTP. It is a
// passive subscriber: whatever the recorder decides, the platform gets an
// acknowledgement, never an error that could break the action that fired.
type EventHandler struct {
	recorder *service.Recorder
	cfg      *config.Config
}

func NewEventHandler(recorder *service.Recorder, cfg *config.Config) *EventHandler {
	return &EventHandler{recorder: recorder, cfg: cfg}
}

// Handle processes POST /events. Body: the shared event envelope. When a
// webhook secret is configured, X-Event-Signature must carry the hex HMAC-SHA256
// of the body.
func (h *EventHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if h.cfg.Events.WebhookSecret != "" {
		sig := c.GetHeader("X-Event-Signature")
		if !h.verifySignature(body, sig) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
	}
	var env service.EventEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if env.Event == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event required"})
		return
	}

	outcome := h.recorder.Record(env.ToEvent())
	c.JSON(http.StatusAccepted, gin.H{
		"received": true,
		"status":   outcome.Status.String(),
		"written":  outcome.Written,
	})
}

func (h *EventHandler) verifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(h.cfg.Events.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
