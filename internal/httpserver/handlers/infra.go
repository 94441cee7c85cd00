package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
)

// outboxPingTimeout bounds the redis check so /infra answers quickly.
const outboxPingTimeout = 2 * time.Second

type componentStatus struct {
	OK         bool     `json:"ok"`
	Projects   *int     `json:"projects,omitempty"`
	Skills     *int     `json:"skills,omitempty"`
	OutboxSize *int64   `json:"outbox_size,omitempty"`
	LastStored string   `json:"last_message_at,omitempty"`
	Notifiers  []string `json:"notifiers,omitempty"`
	Mode       string   `json:"mode,omitempty"`
	Impact     string   `json:"impact,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the state of every component for operators.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"portfolio": checkPortfolio(d),
			"chat":      checkChat(d),
			"outbox":    checkOutbox(r.Context(), d),
			"telegram":  checkTelegram(d),
			"contact":   checkContact(d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

// determineMode is "critical" without content, "degraded" when an
// optional dependency is configured but failing, "operational" otherwise.
func determineMode(components map[string]componentStatus) string {
	if p, ok := components["portfolio"]; ok && !p.OK {
		return "critical"
	}
	if c, ok := components["chat"]; ok && c.Mode == "open" {
		return "degraded"
	}
	if o, ok := components["outbox"]; ok && o.Mode == "unreachable" {
		return "degraded"
	}
	return "operational"
}

func checkPortfolio(d deps.Deps) componentStatus {
	if d.Portfolio == nil {
		return componentStatus{OK: false, Error: "service not initialized"}
	}
	projects := len(d.Portfolio.Projects())
	skills := len(d.Portfolio.Skills())
	return componentStatus{
		OK:       d.Portfolio.PersonalInfo().Name != "",
		Projects: &projects,
		Skills:   &skills,
	}
}

func checkChat(d deps.Deps) componentStatus {
	if d.Chat == nil || !d.Chat.Available() {
		return componentStatus{
			OK:     false,
			Mode:   "unavailable",
			Impact: "chatbot-disabled",
		}
	}
	state := d.Chat.State()
	return componentStatus{
		OK:   state != "open",
		Mode: state,
	}
}

func checkOutbox(ctx context.Context, d deps.Deps) componentStatus {
	if d.Outbox == nil {
		return componentStatus{
			OK:     false,
			Mode:   "disabled",
			Impact: "contact-messages-logged-only",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, outboxPingTimeout)
	defer cancel()

	if err := d.Outbox.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "unreachable",
			Impact: "contact-messages-not-stored",
			Error:  "redis unreachable",
		}
	}
	size, err := d.Outbox.OutboxLen(ctx)
	if err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "unreachable",
			Impact: "contact-messages-not-stored",
			Error:  "outbox unreadable",
		}
	}
	status := componentStatus{
		OK:         true,
		Mode:       "redis",
		OutboxSize: &size,
	}
	if latest, err := d.Outbox.RecentContacts(ctx, 1); err == nil && len(latest) > 0 {
		status.LastStored = latest[0].Timestamp.UTC().Format(time.RFC3339)
	}
	return status
}

func checkTelegram(d deps.Deps) componentStatus {
	if !d.Telegram {
		return componentStatus{OK: false, Mode: "disabled"}
	}
	return componentStatus{OK: true, Mode: "enabled"}
}

func checkContact(d deps.Deps) componentStatus {
	if d.Contact == nil {
		return componentStatus{OK: false, Error: "intake not initialized"}
	}
	return componentStatus{OK: true, Notifiers: d.Contact.Notifiers()}
}
