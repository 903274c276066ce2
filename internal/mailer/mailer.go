// Package mailer delivers the rendered health report over SMTP. It is a
// plain transport collaborator; nothing here inspects the document.
package mailer

import (
	"context"

	"github.com/wneessen/go-mail"

	"codeberg.org/mutker/switchhealth/internal/errors"
	"codeberg.org/mutker/switchhealth/internal/logger"
)

type service struct {
	cfg Config
}

func NewService(cfg Config) (Sender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &service{cfg: cfg}, nil
}

func (s *service) Send(ctx context.Context, htmlBody string) error {
	errFactory := errors.New()

	msg, err := s.compose(htmlBody)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return errFactory.Wrap(ErrDeliveryFailed, err)
	}

	if err := client.DialWithContext(ctx); err != nil {
		return errFactory.Wrap(ErrDeliveryFailed, err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Debug().Err(err).Msg("SMTP close failed")
		}
	}()

	if err := client.Send(msg); err != nil {
		return errFactory.Wrap(ErrDeliveryFailed, err)
	}

	logger.Info().Str("to", s.cfg.To).Msg("Report sent")

	return nil
}

func (s *service) compose(htmlBody string) (*mail.Msg, error) {
	errFactory := errors.New()

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return nil, errFactory.Wrap(ErrComposeFailed, err)
	}
	if err := msg.To(s.cfg.To); err != nil {
		return nil, errFactory.Wrap(ErrComposeFailed, err)
	}
	msg.Subject(s.cfg.Subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	return msg, nil
}
