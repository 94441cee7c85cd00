// Package contact validates contact form submissions and hands accepted
// messages to notifiers.
package contact

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/logger"
)

// Visitor-facing messages.
const (
	MsgSuccess         = "Message sent successfully!"
	MsgError           = "Error sending the message. Please try again."
	MsgValidationError = "Please check your details and try again."
)

// DefaultNotifyTimeout bounds one notifier call.
const DefaultNotifyTimeout = 10 * time.Second

// Submission is the raw form input.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Notifier receives accepted messages. Failures are logged, never surfaced
// to the visitor.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, msg domain.ContactMessage) error
}

// Intake validates submissions against domain.ContactRules. Notifiers run
// in the background, so a slow one never holds the request.
type Intake struct {
	notifiers     []Notifier
	log           logger.Logger
	now           func() time.Time
	newID         func() string
	notifyTimeout time.Duration
	pending       sync.WaitGroup
}

func NewIntake(log logger.Logger, notifiers ...Notifier) *Intake {
	if log == nil {
		log = logger.NewNop()
	}
	return &Intake{
		notifiers: notifiers,
		log:       log,
		now:           time.Now,
		newID:         uuid.NewString,
		notifyTimeout: DefaultNotifyTimeout,
	}
}

// WithNotifyTimeout sets the per-notifier deadline.
func (i *Intake) WithNotifyTimeout(d time.Duration) *Intake {
	if d > 0 {
		i.notifyTimeout = d
	}
	return i
}

// Wait blocks until every dispatched notification has finished.
func (i *Intake) Wait() {
	i.pending.Wait()
}

// Notifiers lists the configured notifier names.
func (i *Intake) Notifiers() []string {
	names := make([]string, 0, len(i.notifiers))
	for _, n := range i.notifiers {
		names = append(names, n.Name())
	}
	return names
}

// Submit trims every field, validates it and hands the resulting message to
// the notifiers without waiting for them. A *domain.ValidationError names
// the first failing field.
func (i *Intake) Submit(ctx context.Context, s Submission) (domain.ContactMessage, error) {
	msg, err := domain.NewContactMessage(
		strings.TrimSpace(s.Name),
		strings.TrimSpace(s.Email),
		strings.TrimSpace(s.Subject),
		strings.TrimSpace(s.Message),
		i.now(),
	)
	if err != nil {
		return domain.ContactMessage{}, err
	}
	msg.ID = i.newID()

	i.log.Info("contact message received",
		logger.String("id", msg.ID),
		logger.String("name", msg.Name),
		logger.String("email", msg.Email),
		logger.String("subject", msg.Subject),
	)

	if len(i.notifiers) > 0 {
		// Detached from the request: the visitor may be gone before delivery.
		i.pending.Add(1)
		go i.dispatch(context.WithoutCancel(ctx), msg)
	}

	return msg, nil
}

func (i *Intake) dispatch(ctx context.Context, msg domain.ContactMessage) {
	defer i.pending.Done()

	for _, n := range i.notifiers {
		nctx, cancel := context.WithTimeout(ctx, i.notifyTimeout)
		err := n.Notify(nctx, msg)
		cancel()
		if err != nil {
			i.log.Warn("contact notifier failed",
				logger.String("notifier", n.Name()),
				logger.String("id", msg.ID),
				logger.Error(err),
			)
		}
	}
}
