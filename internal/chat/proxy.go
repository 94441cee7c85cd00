// Package chat relays visitor questions to an OpenAI-compatible model primed
// with a fixed biography prompt.
package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MrSnakeDoc/folio/internal/logger"
)

var (
	// ErrUnavailable means no upstream was configured at startup.
	ErrUnavailable = errors.New("chat service unavailable")
	// ErrEmptyMessage rejects blank visitor input before any upstream call.
	ErrEmptyMessage = errors.New("message is required")
	// ErrUpstream wraps every failure of a configured upstream, timeouts included.
	ErrUpstream = errors.New("chat upstream failure")
)

// Visitor-facing messages.
const (
	MsgUnavailable  = "Chatbot service is currently unavailable. Please try again later."
	MsgEmptyMessage = "Message is required"
	MsgUpstream     = "Sorry, I'm experiencing technical difficulties. Please try again later."
	MsgUnexpected   = "An unexpected error occurred. Please try again."
)

// Reply is a successful answer.
type Reply struct {
	Message   string
	Timestamp int64
}

// Options configures New.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Proxy answers visitor questions. Whether it is available is decided once,
// at construction.
type Proxy struct {
	completer Completer
	timeout   time.Duration
	prompt    string
	log       logger.Logger
}

// NewProxy wraps completer. A nil completer yields a proxy that always
// reports ErrUnavailable.
func NewProxy(completer Completer, timeout time.Duration, log logger.Logger) *Proxy {
	if log == nil {
		log = logger.NewNop()
	}
	return &Proxy{
		completer: completer,
		timeout:   timeout,
		prompt:    SystemPrompt(),
		log:       log,
	}
}

// New builds the production proxy. A blank API key or an invalid client
// setup leaves the proxy unavailable for the life of the process.
func New(opts Options, log logger.Logger) *Proxy {
	if log == nil {
		log = logger.NewNop()
	}
	if strings.TrimSpace(opts.APIKey) == "" {
		log.Warn("chat disabled: no API key configured")
		return NewProxy(nil, opts.Timeout, log)
	}

	client, err := NewOpenAIClient(opts.APIKey, opts.BaseURL, opts.Model, &http.Client{})
	if err != nil {
		log.Error("chat disabled: client initialization failed", logger.Error(err))
		return NewProxy(nil, opts.Timeout, log)
	}

	log.Info("chat enabled",
		logger.String("base_url", opts.BaseURL),
		logger.String("model", client.model),
		logger.Duration("timeout", opts.Timeout),
	)
	return NewProxy(NewBreakerCompleter(client, log), opts.Timeout, log)
}

// Available reports whether an upstream was configured.
func (p *Proxy) Available() bool {
	return p.completer != nil
}

// State describes the upstream for status pages: "unavailable", or the
// circuit breaker state when there is one.
func (p *Proxy) State() string {
	if p.completer == nil {
		return "unavailable"
	}
	if b, ok := p.completer.(*BreakerCompleter); ok {
		return b.State()
	}
	return "ready"
}

// Ask sends message upstream exactly once.
func (p *Proxy) Ask(ctx context.Context, message string) (Reply, error) {
	if p.completer == nil {
		return Reply{}, ErrUnavailable
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, ErrEmptyMessage
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	c, err := p.completer.Complete(ctx, p.prompt, message)
	if err != nil {
		p.log.Error("chat completion failed",
			logger.Error(err),
			logger.Duration("duration", time.Since(start)),
		)
		return Reply{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	return Reply{Message: c.Text, Timestamp: c.Created}, nil
}

// Message maps an Ask error to its visitor-facing text and HTTP status.
func Message(err error) (string, int) {
	switch {
	case errors.Is(err, ErrUnavailable):
		return MsgUnavailable, http.StatusServiceUnavailable
	case errors.Is(err, ErrEmptyMessage):
		return MsgEmptyMessage, http.StatusBadRequest
	case errors.Is(err, ErrUpstream):
		return MsgUpstream, http.StatusInternalServerError
	default:
		return MsgUnexpected, http.StatusInternalServerError
	}
}
