// Package session establishes command sessions to fleet devices and captures
// raw diagnostic output. It is a plain I/O collaborator: no interpretation of
// the captured text happens here.
package session

import (
	"context"
	"net"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"

	"codeberg.org/mutker/switchhealth/internal/diag"
	"codeberg.org/mutker/switchhealth/internal/errors"
	"codeberg.org/mutker/switchhealth/internal/logger"
)

type Config struct {
	Port        int
	Timeout     time.Duration
	Credentials Credentials
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.Port <= 0 || c.Port > 65535 {
		return errFactory.WithData(ErrInvalidConfig, c.Port)
	}
	if c.Timeout <= 0 {
		return errFactory.WithMessage(ErrInvalidConfig, "timeout must be positive")
	}
	if c.Credentials.Username == "" {
		return errFactory.New(ErrMissingCredentials)
	}

	return nil
}

// commandRunner executes one device command and returns its raw output.
type commandRunner interface {
	run(cmd string) (string, error)
	close() error
}

type client struct {
	addr   string
	runner commandRunner
}

// Dial opens a command session to one device. Host keys are not verified;
// the fleet is reached over the management network only and the inventory
// predates key pinning.
func Dial(addr string, cfg Config) (Collector, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sshCfg := &ssh.ClientConfig{
		User: cfg.Credentials.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(cfg.Credentials.Password),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         cfg.Timeout,
	}

	conn, err := ssh.Dial("tcp", net.JoinHostPort(addr, strconv.Itoa(cfg.Port)), sshCfg)
	if err != nil {
		return nil, errFactory.Wrap(ErrDialFailed, err)
	}

	return &client{addr: addr, runner: &sshRunner{conn: conn}}, nil
}

// Collect issues the full command set and fills a snapshot. A failing
// command degrades to an empty blob for its category so one misbehaving
// query cannot block the other findings; only cancellation aborts the pass.
func (c *client) Collect(ctx context.Context) (*Capture, error) {
	errFactory := errors.New()

	capture := &Capture{Hostname: c.hostname(ctx)}
	capture.Snapshot = diag.Snapshot{
		ErrDisabled:  c.commandOutput(ctx, cmdErrDisabled),
		Power:        c.commandOutput(ctx, cmdPower),
		SecurityLog:  c.commandOutput(ctx, cmdSecurityLog),
		CPU:          c.commandOutput(ctx, cmdCPU),
		Temperature:  c.commandOutput(ctx, cmdTemperature),
		Neighbors:    c.commandOutput(ctx, cmdNeighbors),
		Descriptions: c.commandOutput(ctx, cmdDescriptions),
	}

	if err := ctx.Err(); err != nil {
		return nil, errFactory.Wrap(ErrCollectCanceled, err)
	}

	return capture, nil
}

func (c *client) Close() error {
	errFactory := errors.New()

	if err := c.runner.close(); err != nil {
		return errFactory.Wrap(ErrCloseFailed, err)
	}
	return nil
}

func (c *client) hostname(ctx context.Context) string {
	out := c.commandOutput(ctx, cmdHostname)
	if fields := strings.Fields(out); len(fields) > 0 {
		return strings.TrimRight(fields[0], "#>")
	}

	return c.addr
}

func (c *client) commandOutput(ctx context.Context, cmd string) string {
	if ctx.Err() != nil {
		return ""
	}

	out, err := c.runner.run(cmd)
	if err != nil {
		logger.Warn().Str("device", c.addr).Str("command", cmd).Err(err).
			Msg("Command failed, treating category as empty")
		return ""
	}

	return out
}

// sshRunner executes each command in its own exec session on the shared
// connection, the way IOS devices expect one-shot show commands.
type sshRunner struct {
	conn *ssh.Client
}

func (r *sshRunner) run(cmd string) (string, error) {
	sess, err := r.conn.NewSession()
	if err != nil {
		return "", err
	}
	defer sess.Close()

	out, err := sess.Output(cmd)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

func (r *sshRunner) close() error {
	return r.conn.Close()
}
