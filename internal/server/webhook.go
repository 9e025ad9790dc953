package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/hikarisalon/concierge/internal/bot"
	"github.com/hikarisalon/concierge/internal/line"
)

const maxBodyBytes = 1 << 20

// WebhookHandler verifies and dispatches platform webhook events. Each text
// message event is run through the bot and answered via the reply API; other
// event types are acknowledged and dropped.
type WebhookHandler struct {
	channelSecret string
	bot           *bot.Bot
	replier       line.Replier
	log           *zap.Logger
}

// NewWebhookHandler builds the handler. An empty channelSecret skips
// signature verification; only do that in local development.
func NewWebhookHandler(channelSecret string, b *bot.Bot, replier line.Replier, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		channelSecret: channelSecret,
		bot:           b,
		replier:       replier,
		log:           log,
	}
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if h.channelSecret != "" {
		sig := r.Header.Get("X-Line-Signature")
		if !line.ValidateSignature(h.channelSecret, body, sig) {
			h.log.Warn("webhook signature rejected")
			http.Error(w, "invalid signature", http.StatusBadRequest)
			return
		}
	}

	var req line.WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.log.Warn("webhook payload malformed", zap.Error(err))
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	for _, event := range req.Events {
		h.handleEvent(r.Context(), event)
	}

	w.WriteHeader(http.StatusOK)
}

func (h *WebhookHandler) handleEvent(ctx context.Context, event line.Event) {
	if !event.IsTextMessage() {
		h.log.Debug("webhook event skipped", zap.String("type", event.Type))
		return
	}

	reply := h.bot.Handle(ctx, event.Source.UserID, event.Message.Text)
	if reply == "" {
		return
	}

	if err := h.replier.ReplyText(ctx, event.ReplyToken, reply); err != nil {
		h.log.Error("reply send failed",
			zap.String("user_id", event.Source.UserID),
			zap.Error(err))
	}
}
