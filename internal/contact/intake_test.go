package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/logger"
)

type recordingNotifier struct {
	name string
	err  error
	got  []domain.ContactMessage
}

func (r *recordingNotifier) Name() string { return r.name }

func (r *recordingNotifier) Notify(_ context.Context, msg domain.ContactMessage) error {
	r.got = append(r.got, msg)
	return r.err
}

func valid() Submission {
	return Submission{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello there",
		Message: "Hi there, testing",
	}
}

func newTestIntake(notifiers ...Notifier) *Intake {
	in := NewIntake(logger.NewNop(), notifiers...)
	in.now = func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC) }
	in.newID = func() string { return "fixed-id" }
	return in
}

func TestSubmitValid(t *testing.T) {
	rec := &recordingNotifier{name: "rec"}
	in := newTestIntake(rec)

	msg, err := in.Submit(context.Background(), Submission{
		Name:    "  Jane Doe ",
		Email:   " jane@example.com",
		Subject: "Hello there ",
		Message: " Hi there, testing ",
	})
	require.NoError(t, err)
	in.Wait()

	assert.Equal(t, "fixed-id", msg.ID)
	assert.Equal(t, "Jane Doe", msg.Name)
	assert.Equal(t, "jane@example.com", msg.Email)
	assert.Equal(t, "Hi there, testing", msg.Message)
	assert.Equal(t, time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC), msg.Timestamp)

	require.Len(t, rec.got, 1)
	assert.Equal(t, msg, rec.got[0])
}

func TestSubmitFirstErrorWins(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s *Submission)
		wantField string
		wantMsg   string
	}{
		{
			name:      "empty name",
			mutate:    func(s *Submission) { s.Name = "" },
			wantField: "name",
			wantMsg:   "Name is required",
		},
		{
			name:      "short name reported before bad email",
			mutate:    func(s *Submission) { s.Name = "A"; s.Email = "nope" },
			wantField: "name",
			wantMsg:   "Name must be at least 2 characters",
		},
		{
			name:      "name with digits",
			mutate:    func(s *Submission) { s.Name = "R2D2" },
			wantField: "name",
			wantMsg:   "Name format is invalid",
		},
		{
			name:      "bad email",
			mutate:    func(s *Submission) { s.Email = "jane@" },
			wantField: "email",
			wantMsg:   "Email format is invalid",
		},
		{
			name:      "whitespace subject",
			mutate:    func(s *Submission) { s.Subject = "   " },
			wantField: "subject",
			wantMsg:   "Subject is required",
		},
		{
			name:      "short message",
			mutate:    func(s *Submission) { s.Message = "too short" },
			wantField: "message",
			wantMsg:   "Message must be at least 10 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingNotifier{name: "rec"}
			in := newTestIntake(rec)

			s := valid()
			tt.mutate(&s)
			_, err := in.Submit(context.Background(), s)
			in.Wait()

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantMsg, verr.Message)
			assert.Empty(t, rec.got, "invalid submissions must not be dispatched")
		})
	}
}

func TestSubmitNotifierFailureIsNotFatal(t *testing.T) {
	failing := &recordingNotifier{name: "failing", err: errors.New("down")}
	after := &recordingNotifier{name: "after"}
	in := newTestIntake(failing, after)

	_, err := in.Submit(context.Background(), valid())
	require.NoError(t, err)
	in.Wait()
	assert.Len(t, failing.got, 1)
	assert.Len(t, after.got, 1)
	assert.Equal(t, []string{"failing", "after"}, in.Notifiers())
}

func TestNewIntakeAssignsUniqueIDs(t *testing.T) {
	in := NewIntake(nil)

	a, err := in.Submit(context.Background(), valid())
	require.NoError(t, err)
	b, err := in.Submit(context.Background(), valid())
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

// blockingNotifier holds until its context is done or release is closed.
type blockingNotifier struct {
	release chan struct{}
	result  chan error
}

func (b *blockingNotifier) Name() string { return "blocking" }

func (b *blockingNotifier) Notify(ctx context.Context, _ domain.ContactMessage) error {
	var err error
	select {
	case <-b.release:
	case <-ctx.Done():
		err = ctx.Err()
	}
	b.result <- err
	return err
}

func TestSubmitDoesNotWaitForNotifiers(t *testing.T) {
	slow := &blockingNotifier{release: make(chan struct{}), result: make(chan error, 1)}
	in := newTestIntake(slow).WithNotifyTimeout(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := in.Submit(ctx, valid())
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	// the notifier gets its own deadline, not the request's
	select {
	case err := <-slow.result:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never bounded by its timeout")
	}
	in.Wait()
}

func TestSubmitNotifierOutlivesCanceledRequest(t *testing.T) {
	rec := &recordingNotifier{name: "rec"}
	in := newTestIntake(rec)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := in.Submit(ctx, valid())
	cancel()
	require.NoError(t, err)

	in.Wait()
	assert.Len(t, rec.got, 1)
}
