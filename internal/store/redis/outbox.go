package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

// contactRecord is the stored JSON form of a contact message.
type contactRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SaveContact stores a contact message and pushes its ID onto the outbox.
// The outbox is trimmed to its cap in the same pipeline.
func (s *Store) SaveContact(ctx context.Context, msg domain.ContactMessage) error {
	if msg.ID == "" {
		return errors.New("contact message has no id")
	}

	data, err := json.Marshal(contactRecord{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		Timestamp: msg.Timestamp.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal contact message: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, ContactKey(msg.ID), data, s.ttl)
	pipe.LPush(ctx, ContactOutboxKey(), msg.ID)
	pipe.LTrim(ctx, ContactOutboxKey(), 0, s.maxSize-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

// GetContact retrieves a contact message by ID
func (s *Store) GetContact(ctx context.Context, id string) (domain.ContactMessage, error) {
	data, err := s.client.Get(ctx, ContactKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ContactMessage{}, fmt.Errorf("contact message not found: %s", id)
		}
		return domain.ContactMessage{}, fmt.Errorf("failed to get contact message: %w", err)
	}

	var rec contactRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.ContactMessage{}, fmt.Errorf("failed to unmarshal contact message: %w", err)
	}

	return domain.ContactMessage{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Subject:   rec.Subject,
		Message:   rec.Message,
		Timestamp: rec.Timestamp,
	}, nil
}

// RecentContacts returns up to limit messages, newest first. IDs whose
// message has expired are skipped.
func (s *Store) RecentContacts(ctx context.Context, limit int64) ([]domain.ContactMessage, error) {
	if limit <= 0 {
		return []domain.ContactMessage{}, nil
	}

	ids, err := s.client.LRange(ctx, ContactOutboxKey(), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list contact outbox: %w", err)
	}

	out := make([]domain.ContactMessage, 0, len(ids))
	for _, id := range ids {
		msg, err := s.GetContact(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, msg)
	}
	return out, nil
}

// OutboxLen returns the number of IDs in the outbox
func (s *Store) OutboxLen(ctx context.Context) (int64, error) {
	n, err := s.client.LLen(ctx, ContactOutboxKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count contact outbox: %w", err)
	}
	return n, nil
}
