package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultContactTTL is how long a contact message is kept (30 days)
	DefaultContactTTL = 30 * 24 * time.Hour
	// DefaultOutboxSize caps the outbox list length
	DefaultOutboxSize = 1000
)

// Store handles Redis operations for the contact outbox
type Store struct {
	client  *redis.Client
	ttl     time.Duration
	maxSize int64
}

// NewStore creates a new Redis store with the default retention
func NewStore(client *redis.Client) *Store {
	return &Store{
		client:  client,
		ttl:     DefaultContactTTL,
		maxSize: DefaultOutboxSize,
	}
}

// WithRetention overrides the message TTL and outbox cap.
func (s *Store) WithRetention(ttl time.Duration, maxSize int64) *Store {
	if ttl > 0 {
		s.ttl = ttl
	}
	if maxSize > 0 {
		s.maxSize = maxSize
	}
	return s
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
