package notify

import (
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
)

// Kind selects the mail template for a queued message.
type Kind string

const (
	KindWelcome             Kind = "welcome"
	KindApplicationReceived Kind = "application_received"
	KindStatusChanged       Kind = "status_changed"
)

// Message is one queued notification. Delivery is best-effort and
// at-most-once: a full queue drops the message, a send failure is
// logged and not retried.
type Message struct {
	Kind Kind
	To   string

	// Welcome fields
	Name string
	Role string

	// Application fields
	Mail email.ApplicationMailData
}

// Queue accepts messages for asynchronous delivery. Enqueue must never
// block the caller; it reports whether the message was accepted.
type Queue interface {
	Enqueue(msg Message) bool
}

// Mailer is the transport the worker delivers through.
type Mailer interface {
	SendWelcome(to, name, role string) error
	SendApplicationReceived(to string, data email.ApplicationMailData) error
	SendStatusChanged(to string, data email.ApplicationMailData) error
	IsConfigured() bool
}

// Notifier runs a single background worker draining a buffered channel.
type Notifier struct {
	mailer Mailer
	queue  chan Message
	done   chan struct{}
}

func New(mailer Mailer, queueSize int) *Notifier {
	if queueSize < 1 {
		queueSize = 64
	}
	n := &Notifier{
		mailer: mailer,
		queue:  make(chan Message, queueSize),
		done:   make(chan struct{}),
	}
	go n.run()
	return n
}

// Enqueue hands a message to the worker without blocking. When the
// queue is full the message is dropped and logged.
func (n *Notifier) Enqueue(msg Message) bool {
	select {
	case n.queue <- msg:
		return true
	default:
		logger.Log.Warn("notification queue full, dropping message",
			"kind", string(msg.Kind), "to", msg.To)
		return false
	}
}

// Close stops accepting messages and waits for the worker to drain the
// queue.
func (n *Notifier) Close() {
	close(n.queue)
	<-n.done
}

func (n *Notifier) run() {
	defer close(n.done)
	for msg := range n.queue {
		if !n.mailer.IsConfigured() {
			continue
		}
		var err error
		switch msg.Kind {
		case KindWelcome:
			err = n.mailer.SendWelcome(msg.To, msg.Name, msg.Role)
		case KindApplicationReceived:
			err = n.mailer.SendApplicationReceived(msg.To, msg.Mail)
		case KindStatusChanged:
			err = n.mailer.SendStatusChanged(msg.To, msg.Mail)
		default:
			logger.Log.Warn("unknown notification kind", "kind", string(msg.Kind))
			continue
		}
		if err != nil {
			logger.Log.Warn("notification delivery failed",
				"kind", string(msg.Kind), "to", msg.To, "error", err)
		}
	}
}
