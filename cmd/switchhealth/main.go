package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"codeberg.org/mutker/switchhealth/internal/config"
	"codeberg.org/mutker/switchhealth/internal/errors"
	"codeberg.org/mutker/switchhealth/internal/fleet"
	"codeberg.org/mutker/switchhealth/internal/inventory"
	"codeberg.org/mutker/switchhealth/internal/logger"
	"codeberg.org/mutker/switchhealth/internal/mailer"
	"codeberg.org/mutker/switchhealth/internal/report"
	"codeberg.org/mutker/switchhealth/internal/session"
)

var cfg *config.Config

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	logger.Debug().Msg("Config loaded")
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if err := run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Report run failed")
	}
}

func run(ctx context.Context) error {
	creds, err := promptCredentials()
	if err != nil {
		return err
	}

	addrs, err := inventory.Load(cfg.Inventory)
	if err != nil {
		return err
	}
	logger.Info().Int("devices", len(addrs)).Msg("Inventory loaded")

	sessionCfg := session.Config{
		Port:        cfg.SSHPort,
		Timeout:     time.Duration(cfg.SSHTimeout) * time.Second,
		Credentials: creds,
	}
	if err := sessionCfg.Validate(); err != nil {
		return err
	}

	dial := func(addr string) (session.Collector, error) {
		return session.Dial(addr, sessionCfg)
	}

	// One reference time for the whole run: every device's security log is
	// judged against the same month, and the report carries this timestamp
	now := time.Now()

	reports := fleet.Inspect(ctx, addrs, dial, now, cfg.Concurrency)

	doc, err := report.Render(reports, now)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		fmt.Println(doc)
		return nil
	}

	sender, err := mailer.NewService(mailer.Config{
		Host:    cfg.SMTPHost,
		Port:    cfg.SMTPPort,
		From:    cfg.MailFrom,
		To:      cfg.MailTo,
		Subject: cfg.Subject,
	})
	if err != nil {
		return err
	}

	return sender.Send(ctx, doc)
}

func promptCredentials() (session.Credentials, error) {
	errFactory := errors.New()

	fmt.Print("Enter SSH username: ")
	username, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return session.Credentials{}, errFactory.Wrap(errors.ErrReadCredentials, err)
	}

	fmt.Print("Enter SSH password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return session.Credentials{}, errFactory.Wrap(errors.ErrReadCredentials, err)
	}

	return session.Credentials{
		Username: strings.TrimSpace(username),
		Password: string(password),
	}, nil
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
