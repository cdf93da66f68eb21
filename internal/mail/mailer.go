package mail

import (
	"context"

	"github.com/rs/zerolog"
)

// LogMailer satisfies service.Mailer by recording the reset link in the
// service log. SMTP delivery is deployment-specific and plugs in behind the
// same interface.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendResetLink(_ context.Context, email string, link string) error {
	m.log.Info().
		Str("email", email).
		Str("link", link).
		Msg("password reset link issued")
	return nil
}
