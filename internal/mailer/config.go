package mailer

import "codeberg.org/mutker/switchhealth/internal/errors"

type Config struct {
	Host    string
	Port    int
	From    string
	To      string
	Subject string
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.Host == "" {
		return errFactory.WithMessage(ErrInvalidConfig, "smtp host is empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errFactory.WithData(ErrInvalidConfig, c.Port)
	}
	if c.From == "" || c.To == "" {
		return errFactory.WithMessage(ErrInvalidConfig, "sender and recipient are required")
	}
	if c.Subject == "" {
		return errFactory.WithMessage(ErrInvalidConfig, "subject is empty")
	}

	return nil
}
