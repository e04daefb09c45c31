package ports

import "context"

// MailMessage is a single outbound mail.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers a single message synchronously.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}

// MailEnqueuer hands a message to the background dispatcher. Delivery is
// fire-and-forget: enqueueing never fails the calling request and delivery
// failures are swallowed by the dispatcher.
type MailEnqueuer interface {
	Enqueue(msg MailMessage)
}
