// Package cli implements the matrimony command line client on top of cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/iudanet/matrimony-client/internal/client/api"
	"github.com/iudanet/matrimony-client/internal/client/iocli"
	"github.com/iudanet/matrimony-client/internal/client/storage"
	"github.com/iudanet/matrimony-client/internal/config"
	"github.com/iudanet/matrimony-client/internal/logger"
)

// EnvPassword позволяет передать пароль без интерактивного ввода
const EnvPassword = "MATRIMONY_PASSWORD"

// Passwords описывает источники пароля, указанные флагами
type Passwords struct {
	FromFile string
	FromArgs string
}

// annotationOffline помечает команды, которым не нужны конфигурация и хранилище
const annotationOffline = "offline"

// globalFlags значения persistent флагов корневой команды
type globalFlags struct {
	configPath string
	server     string
	dbPath     string
	driver     string
	logLevel   string
	timeout    time.Duration
	ephemeral  bool
	json       bool
}

// Cli держит зависимости, которые собираются перед запуском команды
type Cli struct {
	io      iocli.IO
	stderr  io.Writer
	cfg     *config.Config
	logger  *slog.Logger
	client  *apiclient.Client
	store   storage.SessionStore
	version string
	flags   globalFlags
}

// New создает CLI. version выводится командой --version.
func New(terminal iocli.IO, version string) *Cli {
	return &Cli{
		io:      terminal,
		stderr:  os.Stderr,
		version: version,
	}
}

// Execute разбирает args, выполняет команду и всегда закрывает хранилище
func (c *Cli) Execute(ctx context.Context, args []string) error {
	root := c.RootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if closeErr := c.close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	return err
}

// RootCmd собирает дерево команд
func (c *Cli) RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "matrimony",
		Short: "Command line client for the matrimony service",
		Long: `matrimony talks to the matrimony REST API: sign in, browse matches,
exchange messages and manage connection requests.

The session (access and refresh tokens) and your own profile are kept in a
local database between runs. Configuration is read from a YAML file, then
MATRIMONY_* environment variables, then command line flags.`,
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Annotations[annotationOffline] == "true" {
				return nil
			}
			return c.setup(cmd)
		},
	}
	root.SetOut(c.io)
	root.SetErr(c.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "path to YAML config file (env "+config.EnvConfigPath+")")
	pf.StringVar(&c.flags.server, "server", "", "server base URL")
	pf.DurationVar(&c.flags.timeout, "timeout", 0, "per-request timeout, 0 disables it")
	pf.StringVar(&c.flags.dbPath, "db", "", "path to local session database")
	pf.StringVar(&c.flags.driver, "driver", "", "local storage driver: bolt, sqlite or memory")
	pf.BoolVar(&c.flags.ephemeral, "ephemeral", false, "keep the session in memory only")
	pf.StringVar(&c.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&c.flags.json, "json", false, "print results as JSON")

	root.AddCommand(
		c.newRegisterCmd(),
		c.newLoginCmd(),
		c.newLogoutCmd(),
		c.newRefreshCmd(),
		c.newStatusCmd(),
		c.newForgotPasswordCmd(),
		c.newResetPasswordCmd(),
		c.newProfileCmd(),
		c.newSameCityCmd(),
		c.newMatchesCmd(),
		c.newConversationsCmd(),
		c.newMessagesCmd(),
		c.newSendCmd(),
		c.newRequestsCmd(),
		c.newSettingsCmd(),
		c.newMasterCmd(),
	)

	root.AddCommand(c.newEnvCmd())
	root.CompletionOptions.DisableDefaultCmd = true

	return root
}

// setup загружает конфигурацию и открывает хранилище перед любой командой
func (c *Cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.flags.configPath)
	if err != nil {
		return err
	}

	c.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	c.logger, err = logger.New(c.stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	c.store, err = OpenStore(cmd.Context(), cfg.Storage)
	if err != nil {
		return err
	}

	c.client = apiclient.NewClient(cfg.ServerURL, c.store,
		apiclient.WithTimeout(cfg.Timeout),
		apiclient.WithCachePolicy(apiclient.CachePolicy{
			TTL:               cfg.Cache.ProfileTTL,
			InvalidateOnLogin: cfg.Cache.InvalidateOnLogin,
		}),
		apiclient.WithLogger(c.logger),
	)

	c.logger.Debug("client configured",
		"server", cfg.ServerURL,
		"driver", cfg.Storage.Driver,
		"timeout", cfg.Timeout,
	)

	return nil
}

// applyFlags переносит явно заданные флаги поверх конфигурации
func (c *Cli) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.ServerURL = c.flags.server
	}
	if flags.Changed("timeout") {
		cfg.Timeout = c.flags.timeout
	}
	if flags.Changed("db") {
		cfg.Storage.Path = c.flags.dbPath
	}
	if flags.Changed("driver") {
		cfg.Storage.Driver = c.flags.driver
	}
	if c.flags.ephemeral {
		cfg.Storage.Driver = config.DriverMemory
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = c.flags.logLevel
	}
}

func (c *Cli) close() error {
	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil
	return err
}

// getPassword reads a password from the first available source:
// 1. MATRIMONY_PASSWORD environment variable
// 2. file given by --password-file
// 3. --password flag
// 4. interactive prompt
func (c *Cli) getPassword(passwords Passwords, prompt string) (string, error) {
	if envPassword := os.Getenv(EnvPassword); envPassword != "" {
		return envPassword, nil
	}

	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	if passwords.FromArgs != "" {
		return passwords.FromArgs, nil
	}

	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

// inputOr возвращает значение флага или запрашивает его интерактивно
func (c *Cli) inputOr(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return input, nil
}

func addPasswordFlags(cmd *cobra.Command, p *Passwords) {
	cmd.Flags().StringVar(&p.FromArgs, "password", "", "password (not recommended, use "+EnvPassword+" or --password-file)")
	cmd.Flags().StringVar(&p.FromFile, "password-file", "", "path to a file containing the password")
}

// Hint возвращает подсказку для пользователя по ошибке команды
func Hint(err error) string {
	switch {
	case apiclient.IsUnauthorized(err):
		return "Your session is not valid. Run 'matrimony refresh' or 'matrimony login'."
	case errors.Is(err, apiclient.ErrTimeout):
		return "The server did not answer in time. Try again or increase --timeout."
	case errors.Is(err, apiclient.ErrNetwork):
		return "The server is unreachable. Check --server and your connection."
	case errors.Is(err, apiclient.ErrNoRefreshToken):
		return "No saved session. Run 'matrimony login'."
	}
	return ""
}
