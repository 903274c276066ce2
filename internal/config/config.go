package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/mutker/switchhealth/internal/errors"
)

const (
	DefaultLogLevel    = "info"
	defaultInventory   = "accessswitches.txt"
	defaultSSHPort     = 22
	defaultSSHTimeout  = 15
	defaultConcurrency = 8
	defaultSMTPPort    = 25
	defaultSubject     = "Multi-Switch Network Health Report"
)

type Config struct {
	Inventory   string `mapstructure:"inventory"`
	SSHPort     int    `mapstructure:"ssh_port"`
	SSHTimeout  int    `mapstructure:"ssh_timeout"`
	Concurrency int    `mapstructure:"concurrency"`
	SMTPHost    string `mapstructure:"smtp_host"`
	SMTPPort    int    `mapstructure:"smtp_port"`
	MailFrom    string `mapstructure:"mail_from"`
	MailTo      string `mapstructure:"mail_to"`
	Subject     string `mapstructure:"subject"`
	DryRun      bool   `mapstructure:"dry_run"`
	Debug       bool   `mapstructure:"debug"`
	Verbose     bool   `mapstructure:"verbose"`
	LogLevel    string `mapstructure:"log_level"`
}

func Load() (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	v.SetDefault("inventory", defaultInventory)
	v.SetDefault("ssh_port", defaultSSHPort)
	v.SetDefault("ssh_timeout", defaultSSHTimeout)
	v.SetDefault("concurrency", defaultConcurrency)
	v.SetDefault("smtp_port", defaultSMTPPort)
	v.SetDefault("subject", defaultSubject)
	v.SetDefault("log_level", DefaultLogLevel)

	flags := pflag.NewFlagSet("switchhealth", pflag.ContinueOnError)
	flags.String("inventory", defaultInventory, "Path to the switch inventory file")
	flags.Int("concurrency", defaultConcurrency, "Maximum devices inspected in parallel")
	flags.Bool("dry-run", false, "Print the report instead of mailing it")
	flags.Bool("debug", false, "Enable debugging mode")
	flags.Bool("verbose", false, "Enable verbose logging")
	flags.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	// Load configuration from file; an explicit path via SWITCHHEALTH_CONFIG
	// takes precedence over the search path
	if configPath := os.Getenv("SWITCHHEALTH_CONFIG"); configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("switchhealth")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.WithMessage(errors.ErrReadConfig,
				"Failed to read config file: "+err.Error())
		}
	}

	// Override config file values with command line flags
	flags.Visit(func(f *pflag.Flag) {
		v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
	})

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if config.Debug {
		config.LogLevel = "debug"
	} else if config.Verbose {
		config.LogLevel = "info"
	}

	return config, nil
}

func (c *Config) Validate() error {
	errFactory := errors.New()

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}
	if c.Inventory == "" {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "inventory path is empty")
	}
	if c.SSHPort <= 0 || c.SSHPort > 65535 {
		return errFactory.WithData(errors.ErrInvalidConfig, c.SSHPort)
	}
	if c.SSHTimeout <= 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "ssh_timeout must be positive")
	}
	if c.Concurrency <= 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "concurrency must be positive")
	}
	if !c.DryRun {
		if c.SMTPHost == "" {
			return errFactory.WithMessage(errors.ErrMissingConfig, "smtp_host is required")
		}
		if c.MailFrom == "" || c.MailTo == "" {
			return errFactory.WithMessage(errors.ErrMissingConfig, "mail_from and mail_to are required")
		}
	}

	return nil
}
