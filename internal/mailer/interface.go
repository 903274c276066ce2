package mailer

import "context"

// Sender delivers one rendered report document.
type Sender interface {
	Send(ctx context.Context, htmlBody string) error
}
