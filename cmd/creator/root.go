package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/op-character-creator/internal/config"
	"github.com/KirkDiggler/op-character-creator/internal/errors"
)

// rootOptions holds the persistent flags and the resolved configuration
type rootOptions struct {
	envFile    string
	dataSource string
	store      string
	sqlitePath string
	redisAddr  string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "creator",
		Short: "One Piece character creator",
		Long: `Generate pirate characters from the trait catalog, build them by hand,
and keep the current character and your trait preferences between runs.`,
		SilenceUsage:      true,
		PersistentPreRunE: opts.resolve,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file read before the environment")
	flags.StringVar(&opts.dataSource, "data", "", "data document path or URL (CREATOR_DATA_SOURCE)")
	flags.StringVar(&opts.store, "store", "", "storage backend: memory, sqlite or redis (CREATOR_STORE)")
	flags.StringVar(&opts.sqlitePath, "sqlite-path", "", "sqlite store file (CREATOR_SQLITE_PATH)")
	flags.StringVar(&opts.redisAddr, "redis-addr", "", "redis address (CREATOR_REDIS_ADDR)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (CREATOR_LOG_LEVEL)")

	cmd.AddCommand(newRandomCmd(opts))
	cmd.AddCommand(newFormCmd(opts))
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newClearCmd(opts))
	cmd.AddCommand(newTraitsCmd(opts))
	cmd.AddCommand(newSettingsCmd(opts))
	cmd.AddCommand(newCompileCmd())
	cmd.AddCommand(newRenumberCmd())
	cmd.AddCommand(newServeDataCmd(opts))

	return cmd
}

// resolve reads the environment, applies any flags that were set, then
// validates the result
func (o *rootOptions) resolve(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Read(o.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataSource = o.dataSource
	}
	if flags.Changed("store") {
		cfg.Store = o.store
	}
	if flags.Changed("sqlite-path") {
		cfg.SQLitePath = o.sqlitePath
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = o.redisAddr
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	o.cfg = cfg
	o.logger = cfg.NewLogger()
	slog.SetDefault(o.logger)

	return nil
}
