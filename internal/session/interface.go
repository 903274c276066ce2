package session

import (
	"context"

	"codeberg.org/mutker/switchhealth/internal/diag"
)

// Collector captures one device's full diagnostic snapshot over an
// established session.
type Collector interface {
	Collect(ctx context.Context) (*Capture, error)
	Close() error
}

// Capture is the result of one collection pass: the device's self-reported
// hostname and the raw output of the diagnostic commands.
type Capture struct {
	Hostname string
	Snapshot diag.Snapshot
}

// Credentials authenticate the command session. Access switches in this
// fleet use password auth only.
type Credentials struct {
	Username string
	Password string
}
