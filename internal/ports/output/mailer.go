package output

import "context"

// Mailer interface - Output port for outbound email
type Mailer interface {
	// SendBulk sends one message with every recipient on BCC.
	SendBulk(ctx context.Context, recipients []string, subject, body string) error
}
