package mail

import (
	"github.com/espace-agenda/core/internal/config"
)

// FromAppConfig maps the application's mail settings onto the sender
// config, so every caller builds the mailer consistently.
func FromAppConfig(mc config.MailConfig) Config {
	return Config{
		Host:         mc.Host,
		Port:         mc.Port,
		User:         mc.User,
		Password:     mc.Password,
		UseTLS:       mc.UseTLS,
		ContactEmail: mc.ContactEmail,
	}
}
