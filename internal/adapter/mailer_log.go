package adapter

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
)

// LogMailer is a [Mailer] that writes messages to the log instead of sending
// them. It is used in test mode and keeps the last message per recipient so
// that end-to-end tests can follow verification links.
type LogMailer struct {
	logger *logger.Logger

	mu   sync.RWMutex
	sent map[string]VerificationEmail
}

// NewLogMailer returns a [LogMailer] writing to log.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{logger: log, sent: make(map[string]VerificationEmail)}
}

// SendVerification implements [Mailer].
func (m *LogMailer) SendVerification(ctx context.Context, msg VerificationEmail) error {
	m.mu.Lock()
	m.sent[msg.To] = msg
	m.mu.Unlock()

	m.logger.Info().
		Str("func", "*LogMailer.SendVerification").
		Str("to", msg.To).
		Str("link", msg.Link).
		Msg("verification email (not sent)")
	return nil
}

// LastVerification returns the last message sent to address.
func (m *LogMailer) LastVerification(address string) (VerificationEmail, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msg, ok := m.sent[address]
	return msg, ok
}
