package chat

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/folio/internal/logger"
)

type completerFunc func(ctx context.Context, system, user string) (Completion, error)

func (f completerFunc) Complete(ctx context.Context, system, user string) (Completion, error) {
	return f(ctx, system, user)
}

func TestProxyUnavailable(t *testing.T) {
	p := NewProxy(nil, time.Second, logger.NewNop())
	assert.False(t, p.Available())
	assert.Equal(t, "unavailable", p.State())

	for _, msg := range []string{"", "   ", "Tell me about Adrian"} {
		_, err := p.Ask(context.Background(), msg)
		require.ErrorIs(t, err, ErrUnavailable)

		text, status := Message(err)
		assert.Equal(t, MsgUnavailable, text)
		assert.Equal(t, http.StatusServiceUnavailable, status)
	}
}

func TestNewWithoutKeyIsUnavailable(t *testing.T) {
	for _, key := range []string{"", "  \t"} {
		p := New(Options{APIKey: key, BaseURL: "https://api.openai.com/v1"}, logger.NewNop())
		assert.False(t, p.Available())
	}

	p := New(Options{APIKey: "sk-test", BaseURL: "::not a url"}, logger.NewNop())
	assert.False(t, p.Available(), "init failure must leave chat unavailable")

	p = New(Options{APIKey: "sk-test", BaseURL: "https://api.openai.com/v1"}, logger.NewNop())
	assert.True(t, p.Available())
	assert.Equal(t, "closed", p.State())
}

func TestProxyEmptyMessageSkipsUpstream(t *testing.T) {
	called := false
	p := NewProxy(completerFunc(func(ctx context.Context, system, user string) (Completion, error) {
		called = true
		return Completion{}, nil
	}), time.Second, nil)

	_, err := p.Ask(context.Background(), " \n ")
	require.ErrorIs(t, err, ErrEmptyMessage)
	assert.False(t, called)

	text, status := Message(err)
	assert.Equal(t, MsgEmptyMessage, text)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProxyAskSuccess(t *testing.T) {
	var gotSystem, gotUser string
	p := NewProxy(completerFunc(func(ctx context.Context, system, user string) (Completion, error) {
		gotSystem, gotUser = system, user
		return Completion{Text: "He is an AI engineer.", Created: 1700000000}, nil
	}), time.Second, nil)

	r, err := p.Ask(context.Background(), "  Who is Adrian?  ")
	require.NoError(t, err)
	assert.Equal(t, "He is an AI engineer.", r.Message)
	assert.Equal(t, int64(1700000000), r.Timestamp)
	assert.Equal(t, "Who is Adrian?", gotUser)
	assert.True(t, strings.HasPrefix(gotSystem, "You are Adrian Infantes' AI assistant"))
}

func TestProxyUpstreamFailure(t *testing.T) {
	cause := errors.New("connection refused")
	p := NewProxy(completerFunc(func(ctx context.Context, system, user string) (Completion, error) {
		return Completion{}, cause
	}), time.Second, nil)

	_, err := p.Ask(context.Background(), "hello")
	require.ErrorIs(t, err, ErrUpstream)
	require.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUnavailable)

	text, status := Message(err)
	assert.Equal(t, MsgUpstream, text)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.NotEqual(t, MsgUnavailable, text)
}

func TestProxyTimeoutIsUpstreamFailure(t *testing.T) {
	p := NewProxy(completerFunc(func(ctx context.Context, system, user string) (Completion, error) {
		<-ctx.Done()
		return Completion{}, ctx.Err()
	}), 20*time.Millisecond, nil)

	_, err := p.Ask(context.Background(), "hello")
	require.ErrorIs(t, err, ErrUpstream)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMessageUnexpected(t *testing.T) {
	text, status := Message(errors.New("weird"))
	assert.Equal(t, MsgUnexpected, text)
	assert.Equal(t, http.StatusInternalServerError, status)
}
