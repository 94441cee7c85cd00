package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/MrSnakeDoc/folio/internal/logger"
)

// BreakerCompleter stops calling a failing upstream for a while. Rejected
// calls surface as ordinary errors so the proxy reports them as upstream
// failures.
type BreakerCompleter struct {
	next Completer
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerCompleter(next Completer, log logger.Logger) *BreakerCompleter {
	settings := gobreaker.Settings{
		Name:        "chat-completions",
		MaxRequests: 3,                // probes allowed while half-open
		Interval:    10 * time.Second, // closed-state counter reset
		Timeout:     30 * time.Second, // open -> half-open
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		// A visitor hanging up says nothing about the upstream. Deadlines
		// still count.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if log == nil {
				return
			}
			log.Warn("circuit breaker state changed",
				logger.String("breaker", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		},
	}

	return &BreakerCompleter{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *BreakerCompleter) Complete(ctx context.Context, system, user string) (Completion, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Complete(ctx, system, user)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return Completion{}, fmt.Errorf("completion circuit %s: %w", b.cb.State(), err)
		}
		return Completion{}, err
	}
	return res.(Completion), nil
}

// State reports the breaker state ("closed", "half-open" or "open").
func (b *BreakerCompleter) State() string {
	return b.cb.State().String()
}
