package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	app "github.com/okian/teamboard/internal/app"
	"github.com/okian/teamboard/internal/config"
	"github.com/okian/teamboard/pkg/logger"
)

// cli holds the state shared by every subcommand.
type cli struct {
	configPath string
	dataset    string
	envFile    string
	logJSON    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "teamboard",
		Short:        "HR and project dashboard: workload, performance scores, salary benchmarks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "YAML config file (default $TEAMBOARD_CONFIG)")
	flags.StringVar(&c.dataset, "dataset", "", "roster YAML file (default: built-in sample roster)")
	flags.StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded before the environment is read")
	flags.BoolVar(&c.logJSON, "log-json", false, "emit JSON log lines")

	root.AddCommand(
		serveCmd(c),
		mcpCmd(c),
		scoreCmd(c),
		salaryCmd(c),
		workloadCmd(c),
		catalogCmd(c),
		exportCmd(c),
		archiveCmd(c),
	)
	return root
}

// setup loads .env, the configuration and the logger. Logs always go to
// stderr so that command output and the MCP protocol own stdout.
func (c *cli) setup(cmd *cobra.Command) error {
	opts := []logger.Option{logger.WithOutput(cmd.ErrOrStderr())}
	if c.logJSON {
		opts = append(opts, logger.WithJSON())
	}
	if err := logger.Init(opts...); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	if c.envFile != "" {
		if err := godotenv.Load(c.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", c.envFile, err)
		}
	}

	cfg, err := config.Load(cmd.Context(), c.configPath)
	if err != nil {
		return err
	}
	if c.dataset != "" {
		cfg.DatasetPath = c.dataset
	}
	c.cfg = cfg

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(cmd.Context(), "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	return nil
}

func (c *cli) service(opts ...app.Option) (*app.Service, error) {
	base := []app.Option{
		app.WithConfig(c.cfg),
		app.WithLogger(logger.Get().Named("service")),
	}
	svc, err := app.New(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}
