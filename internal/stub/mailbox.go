package stub

import (
	"strings"
	"sync"
)

// Mailbox stands in for the e-mails the service would send. It keeps the
// last password-reset token delivered to each address.
type Mailbox struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMailbox() *Mailbox {
	return &Mailbox{tokens: make(map[string]string)}
}

// Deliver records token as the latest reset token for email.
func (m *Mailbox) Deliver(email, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[normalizeEmail(email)] = token
}

// ResetToken returns the latest reset token delivered to email.
func (m *Mailbox) ResetToken(email string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	token, ok := m.tokens[normalizeEmail(email)]
	return token, ok
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
