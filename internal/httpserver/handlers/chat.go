package handlers

import (
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/folio/internal/chat"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/metrics"
)

// Chat relays one visitor message. An unconfigured upstream answers 503
// whatever the body, a failed call answers 500.
func Chat(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// An unreadable body is treated as an empty message.
		fields, _ := readFields(w, r)

		reply, err := d.Chat.Ask(r.Context(), fields["message"])
		if err != nil {
			recordChat(d, chatOutcome(err))
			msg, status := chat.Message(err)
			writeError(w, status, msg)
			return
		}

		recordChat(d, metrics.ChatOK)
		writeJSON(w, http.StatusOK, envelope{
			Status:    statusSuccess,
			Message:   reply.Message,
			Timestamp: reply.Timestamp,
		})
	}
}

func chatOutcome(err error) string {
	switch {
	case errors.Is(err, chat.ErrUnavailable):
		return metrics.ChatUnavailable
	case errors.Is(err, chat.ErrEmptyMessage):
		return metrics.ChatInvalid
	default:
		return metrics.ChatUpstream
	}
}

func recordChat(d deps.Deps, outcome string) {
	if d.Metrics != nil {
		d.Metrics.RecordChat(outcome)
	}
}
