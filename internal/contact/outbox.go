package contact

import (
	"context"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

// ContactSaver persists accepted messages, e.g. the Redis outbox store.
type ContactSaver interface {
	SaveContact(ctx context.Context, msg domain.ContactMessage) error
}

// OutboxNotifier keeps accepted messages for later reading.
type OutboxNotifier struct {
	store ContactSaver
}

func NewOutboxNotifier(store ContactSaver) *OutboxNotifier {
	return &OutboxNotifier{store: store}
}

func (o *OutboxNotifier) Name() string { return "outbox" }

func (o *OutboxNotifier) Notify(ctx context.Context, msg domain.ContactMessage) error {
	return o.store.SaveContact(ctx, msg)
}
