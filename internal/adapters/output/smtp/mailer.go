package smtp

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"mindspace-api/configs"
	"mindspace-api/internal/domain"
	"mindspace-api/internal/ports/output"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

// Compile-time check to ensure MailerAdapter implements Mailer interface
var _ output.Mailer = (*MailerAdapter)(nil)

const (
	defaultPort = 587
	sendTimeout = 30 * time.Second
)

type sendFunc func(ctx context.Context, msg *mail.Msg) error

// MailerAdapter struct - Output adapter sending mail through an SMTP relay
type MailerAdapter struct {
	host     string
	port     int
	username string
	password string
	from     string
	send     sendFunc
}

// NewMailerAdapter func
func NewMailerAdapter(config configs.SMTP) *MailerAdapter {
	from := config.From
	if from == "" {
		from = config.Username
	}

	port, err := strconv.Atoi(config.Port)
	if err != nil || port <= 0 {
		port = defaultPort
	}

	m := &MailerAdapter{
		host:     config.Host,
		port:     port,
		username: config.Username,
		password: config.Password,
		from:     from,
	}
	m.send = m.dialAndSend
	return m
}

// dialAndSend opens a connection per call. The dial and the SMTP exchange
// both stop when ctx is done or after sendTimeout.
func (m *MailerAdapter) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(m.port),
		mail.WithTimeout(sendTimeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.username),
			mail.WithPassword(m.password),
		)
	}

	client, err := mail.NewClient(m.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// SendBulk delivers one message with all recipients on Bcc. It returns only
// once the relay has accepted or rejected the message.
func (m *MailerAdapter) SendBulk(ctx context.Context, recipients []string, subject, body string) error {
	if len(recipients) == 0 {
		return nil
	}
	if m.host == "" || m.from == "" {
		return fmt.Errorf("%w: smtp not configured", domain.ErrUpstreamUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	msg, err := newMessage(m.from, recipients, subject, body)
	if err != nil {
		return err
	}

	if err := m.send(ctx, msg); err != nil {
		logrus.Errorf("Failed to send mail to %d recipients: %v", len(recipients), err)
		return fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}

	logrus.Infof("Sent mail %q to %d recipients", subject, len(recipients))
	return nil
}

// newMessage builds a plain text message. Bcc recipients go to the envelope
// only and never appear in the written headers.
func newMessage(from string, recipients []string, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := msg.Bcc(recipients...); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}
