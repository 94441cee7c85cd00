package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), mr
}

func message(id string) domain.ContactMessage {
	return domain.ContactMessage{
		ID:        id,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Subject:   "Hello there",
		Message:   "Hi there, testing",
		Timestamp: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndGetContact(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveContact(ctx, message("abc")))

	got, err := store.GetContact(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, message("abc"), got)

	assert.True(t, mr.Exists(ContactKey("abc")))
	assert.Equal(t, DefaultContactTTL, mr.TTL(ContactKey("abc")))

	n, err := store.OutboxLen(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSaveContactRequiresID(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Error(t, store.SaveContact(context.Background(), message("")))
}

func TestGetContactNotFound(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.GetContact(context.Background(), "missing")
	assert.ErrorContains(t, err, "not found")
}

func TestOutboxIsCappedAndNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	store.WithRetention(time.Hour, 3)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, store.SaveContact(ctx, message(fmt.Sprintf("m%d", i))))
	}

	n, err := store.OutboxLen(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	recent, err := store.RecentContacts(ctx, 10)
	require.NoError(t, err)
	ids := make([]string, 0, len(recent))
	for _, m := range recent {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"m5", "m4", "m3"}, ids)
}

func TestRecentContactsSkipsExpired(t *testing.T) {
	store, mr := newTestStore(t)
	store.WithRetention(time.Minute, 0)
	ctx := context.Background()

	require.NoError(t, store.SaveContact(ctx, message("old")))
	mr.FastForward(2 * time.Minute)
	require.NoError(t, store.SaveContact(ctx, message("new")))

	recent, err := store.RecentContacts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "new", recent[0].ID)

	empty, err := store.RecentContacts(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPing(t *testing.T) {
	store, mr := newTestStore(t)
	require.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
