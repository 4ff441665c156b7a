package email

// Message carries everything a provider needs to deliver one email.
type Message struct {
	From     string
	FromName string
	To       string
	ToName   string
	ReplyTo  string
	Subject  string
	HTMLBody string
	// PlainBody is an optional text/plain alternative; providers that
	// require one fall back to the subject when it is empty.
	PlainBody string
}

// Mailer is the outbound mail boundary. Implementations are expected to be
// safe for concurrent use; the booking flow sends through it sequentially.
type Mailer interface {
	Send(msg Message) error
	// IsConfigured reports whether the provider has enough credentials to
	// attempt a send. Callers use it to degrade gracefully at startup.
	IsConfigured() bool
}
