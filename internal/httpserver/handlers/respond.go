package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
)

// MsgServerError is the only text a client sees for an unexpected fault.
const MsgServerError = "Internal server error. Please try again later."

const (
	statusSuccess = "success"
	statusError   = "error"
)

// envelope is the uniform API response body.
type envelope struct {
	Status    string `json:"status"`
	Data      any    `json:"data,omitempty"`
	Total     *int   `json:"total,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// fallbackBody is written when an envelope cannot be encoded.
var fallbackBody = []byte(`{"status":"error","message":"` + MsgServerError + `"}` + "\n")

// writeJSON encodes v before touching w, so an encoding failure still
// produces a clean 500 envelope.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = fallbackBody
	} else {
		body = append(body, '\n')
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Status: statusError, Message: message})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, envelope{Status: statusSuccess, Message: message})
}

// result is what a query endpoint hands back to apiHandler.
type result struct {
	data  any
	total *int
}

func withTotal(data any, n int) result {
	return result{data: data, total: &n}
}

// apiHandler runs a read-only query and wraps it in the success envelope.
// Errors and panics become the generic server-error envelope; their cause
// is logged only.
func apiHandler(d deps.Deps, name string, query func(r *http.Request) (result, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				d.Logger.Error("api handler panicked",
					logger.String("endpoint", name),
					logger.Any("panic", rec))
				writeError(w, http.StatusInternalServerError, MsgServerError)
			}
		}()

		res, err := query(r)
		if err != nil {
			d.Logger.Error("api query failed",
				logger.String("endpoint", name),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, MsgServerError)
			return
		}
		writeJSON(w, http.StatusOK, envelope{Status: statusSuccess, Data: res.data, Total: res.total})
	}
}
