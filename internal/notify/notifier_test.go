package notify_test

import (
	"errors"
	"sync"
	"testing"

	"go-jobboard-backend/internal/notify"
	"go-jobboard-backend/pkg/email"

	"github.com/stretchr/testify/assert"
)

// fakeMailer records deliveries, optionally failing or blocking.
type fakeMailer struct {
	mu         sync.Mutex
	sent       []string
	configured bool
	sendErr    error
	block      chan struct{}
}

func (f *fakeMailer) record(kind, to string) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, kind+":"+to)
	return f.sendErr
}

func (f *fakeMailer) SendWelcome(to, name, role string) error {
	return f.record("welcome", to)
}

func (f *fakeMailer) SendApplicationReceived(to string, data email.ApplicationMailData) error {
	return f.record("application_received", to)
}

func (f *fakeMailer) SendStatusChanged(to string, data email.ApplicationMailData) error {
	return f.record("status_changed", to)
}

func (f *fakeMailer) IsConfigured() bool {
	return f.configured
}

func (f *fakeMailer) delivered() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.sent))
	copy(out, f.sent)
	return out
}

func TestNotifierDelivery(t *testing.T) {
	t.Run("Should drain all enqueued messages before Close returns", func(t *testing.T) {
		mailer := &fakeMailer{configured: true}
		n := notify.New(mailer, 8)

		assert.True(t, n.Enqueue(notify.Message{Kind: notify.KindWelcome, To: "a@example.com"}))
		assert.True(t, n.Enqueue(notify.Message{Kind: notify.KindApplicationReceived, To: "b@example.com"}))
		assert.True(t, n.Enqueue(notify.Message{Kind: notify.KindStatusChanged, To: "c@example.com"}))
		n.Close()

		assert.Equal(t, []string{
			"welcome:a@example.com",
			"application_received:b@example.com",
			"status_changed:c@example.com",
		}, mailer.delivered())
	})

	t.Run("Should skip delivery when the mailer is not configured", func(t *testing.T) {
		mailer := &fakeMailer{configured: false}
		n := notify.New(mailer, 8)

		assert.True(t, n.Enqueue(notify.Message{Kind: notify.KindWelcome, To: "a@example.com"}))
		n.Close()

		assert.Empty(t, mailer.delivered())
	})

	t.Run("Should not retry failed deliveries", func(t *testing.T) {
		mailer := &fakeMailer{configured: true, sendErr: errors.New("smtp down")}
		n := notify.New(mailer, 8)

		assert.True(t, n.Enqueue(notify.Message{Kind: notify.KindWelcome, To: "a@example.com"}))
		n.Close()

		assert.Len(t, mailer.delivered(), 1)
	})

	t.Run("Should drop without blocking when the queue is full", func(t *testing.T) {
		block := make(chan struct{})
		mailer := &fakeMailer{configured: true, block: block}
		n := notify.New(mailer, 1)

		// First message occupies the worker, second fills the buffer.
		n.Enqueue(notify.Message{Kind: notify.KindWelcome, To: "busy@example.com"})
		n.Enqueue(notify.Message{Kind: notify.KindWelcome, To: "queued@example.com"})

		dropped := false
		for i := 0; i < 10; i++ {
			if !n.Enqueue(notify.Message{Kind: notify.KindWelcome, To: "extra@example.com"}) {
				dropped = true
				break
			}
		}
		assert.True(t, dropped)

		close(block)
		n.Close()
	})
}
