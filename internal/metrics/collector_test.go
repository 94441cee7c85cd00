package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRequest(t *testing.T) {
	c := NewCollector()
	c.RecordRequest("/api/projects", "GET", 200, 5*time.Millisecond)
	c.RecordRequest("/api/projects", "GET", 200, 7*time.Millisecond)
	c.RecordRequest("/api/contact", "POST", 400, time.Millisecond)

	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues("/api/projects", "GET", "200")); got != 2 {
		t.Errorf("requests /api/projects = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues("/api/contact", "POST", "400")); got != 1 {
		t.Errorf("requests /api/contact = %v, want 1", got)
	}
}

func TestRecordOutcomes(t *testing.T) {
	c := NewCollector()
	c.RecordChat(ChatUnavailable)
	c.RecordChat(ChatUnavailable)
	c.RecordChat(ChatOK)
	c.RecordContact(ContactRejected)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"chat unavailable", testutil.ToFloat64(c.chatRequests.WithLabelValues(ChatUnavailable)), 2},
		{"chat ok", testutil.ToFloat64(c.chatRequests.WithLabelValues(ChatOK)), 1},
		{"contact rejected", testutil.ToFloat64(c.contactSubmissions.WithLabelValues(ContactRejected)), 1},
		{"contact accepted", testutil.ToFloat64(c.contactSubmissions.WithLabelValues(ContactAccepted)), 0},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := NewCollector()
	c.RecordChat(ChatOK)

	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	for _, want := range []string{`folio_chat_requests_total{outcome="ok"} 1`, "go_goroutines"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
