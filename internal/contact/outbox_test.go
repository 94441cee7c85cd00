package contact

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/folio/internal/logger"
	storeredis "github.com/MrSnakeDoc/folio/internal/store/redis"
)

func TestIntakeWithRedisOutbox(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	store := storeredis.NewStore(client)
	in := NewIntake(logger.NewNop(), NewOutboxNotifier(store))

	msg, err := in.Submit(context.Background(), valid())
	require.NoError(t, err)
	in.Wait()

	saved, err := store.GetContact(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", saved.Name)
	assert.Equal(t, "Hi there, testing", saved.Message)

	n, err := store.OutboxLen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
