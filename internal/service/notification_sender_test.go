package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crisisAlert/internal/config"
	"crisisAlert/internal/domain"
	"crisisAlert/pkg/e"
)

type chanSource struct {
	ch chan domain.NotificationPayload
}

func (s *chanSource) Next(ctx context.Context, timeout time.Duration) (domain.NotificationPayload, error) {
	select {
	case p := <-s.ch:
		return p, nil
	case <-ctx.Done():
		return domain.NotificationPayload{}, ctx.Err()
	case <-time.After(timeout):
		return domain.NotificationPayload{}, e.ErrQueueEmpty
	}
}

func newTestSender(url string, src NotificationSource) *NotificationSender {
	s := NewNotificationSender(slog.New(slog.NewTextHandler(io.Discard, nil)), config.NotificationsConfig{WebhookURL: url}, src)
	s.backoff = func(int) time.Duration { return time.Millisecond }
	return s
}

func TestNotificationSender_Deliver_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "k1", r.Header.Get("Idempotency-Key"))
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		var p domain.NotificationPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, int64(7), p.UserID)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ok := newTestSender(srv.URL, nil).Deliver(context.Background(), domain.NotificationPayload{DedupeKey: "k1", UserID: 7})
	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestNotificationSender_Deliver_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ok := newTestSender(srv.URL, nil).Deliver(context.Background(), domain.NotificationPayload{})
	assert.False(t, ok)
	assert.Equal(t, int32(senderMaxRetries), calls.Load())
}

func TestNotificationSender_Deliver_WithoutWebhookLogsOnly(t *testing.T) {
	assert.True(t, newTestSender("", nil).Deliver(context.Background(), domain.NotificationPayload{UserID: 1}))
}

func TestNotificationSender_Run_DrainsUntilCancelled(t *testing.T) {
	got := make(chan int64, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p domain.NotificationPayload
		_ = json.NewDecoder(r.Body).Decode(&p)
		got <- p.UserID
	}))
	defer srv.Close()

	src := &chanSource{ch: make(chan domain.NotificationPayload, 2)}
	src.ch <- domain.NotificationPayload{UserID: 1}
	src.ch <- domain.NotificationPayload{UserID: 2}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		newTestSender(srv.URL, src).Run(ctx)
		close(done)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-got:
		case <-time.After(2 * time.Second):
			t.Fatal("payload not delivered")
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "sender did not stop")
	}
}
