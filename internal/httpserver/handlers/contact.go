package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/MrSnakeDoc/folio/internal/contact"
	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/metrics"
)

// maxBodyBytes bounds contact and chat request bodies.
const maxBodyBytes = 64 << 10

// readFields decodes a JSON object or a form body into string fields. It
// reports false for an empty or unparsable body.
func readFields(w http.ResponseWriter, r *http.Request) (map[string]string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil || len(raw) == 0 {
			return nil, false
		}
		fields := make(map[string]string, len(raw))
		for k, v := range raw {
			switch v := v.(type) {
			case nil:
				fields[k] = ""
			case string:
				fields[k] = v
			default:
				fields[k] = fmt.Sprint(v)
			}
		}
		return fields, true
	}

	if err := r.ParseForm(); err != nil || len(r.PostForm) == 0 {
		return nil, false
	}
	fields := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		fields[k] = r.PostForm.Get(k)
	}
	return fields, true
}

// Contact validates a submission and hands it to the intake notifiers.
// Validation failures answer 400 with the first failing rule.
func Contact(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, ok := readFields(w, r)
		if !ok {
			recordContact(d, metrics.ContactRejected)
			writeError(w, http.StatusBadRequest, contact.MsgValidationError)
			return
		}

		_, err := d.Contact.Submit(r.Context(), contact.Submission{
			Name:    fields["name"],
			Email:   fields["email"],
			Subject: fields["subject"],
			Message: fields["message"],
		})

		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			recordContact(d, metrics.ContactRejected)
			writeError(w, http.StatusBadRequest, verr.Message)
		case err != nil:
			d.Logger.Error("contact submission failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, contact.MsgError)
		default:
			recordContact(d, metrics.ContactAccepted)
			writeMessage(w, contact.MsgSuccess)
		}
	}
}

func recordContact(d deps.Deps, outcome string) {
	if d.Metrics != nil {
		d.Metrics.RecordContact(outcome)
	}
}
