package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/tmbridge/lightclient/internal/app"
)

// clientContext carries the configuration resolved by the root command to its
// subcommands.
type clientContext struct {
	viper  *viper.Viper
	config Config
	logger log.Logger
}

// NewRootCmd creates the tmclientd root command.
func NewRootCmd() *cobra.Command {
	clientCtx := &clientContext{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "tmclientd",
		Short: "Tendermint light client state machine",
		Long: `tmclientd keeps verified trust anchors for foreign tendermint chains. Clients are
created from an initial trusted header and advanced by headers signed by enough of
the trusted voting power.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return clientCtx.load(cmd)
		},
	}

	rootCmd.PersistentFlags().String(FlagHome, DefaultHome(), "directory for config and data")
	rootCmd.PersistentFlags().String(CfgLogLevel, "info", "log level (debug, info, error or none)")
	rootCmd.PersistentFlags().String(CfgLogFormat, logFormatPlain, "log format (plain or json)")

	rootCmd.AddCommand(
		newInitCmd(clientCtx),
		newTxCmd(clientCtx),
		newQueryCmd(clientCtx),
		newExportCmd(clientCtx),
		newImportCmd(clientCtx),
	)

	return rootCmd
}

// load reads the configuration file under the home directory, if any, then
// applies environment variables and flags on top of it.
func (c *clientContext) load(cmd *cobra.Command) error {
	v := c.viper
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	v.SetConfigFile(ConfigPath(v.GetString(FlagHome)))
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrap(err, "failed to read config file")
		}
	}

	config, err := ReadConfig(v)
	if err != nil {
		return err
	}

	logger, err := NewLogger(cmd.ErrOrStderr(), config.LogFormat, config.LogLevel)
	if err != nil {
		return err
	}

	c.config = config
	c.logger = logger
	return nil
}

// openApp opens the client store described by the configuration.
func (c *clientContext) openApp() (*app.App, error) {
	return app.New(app.Config{
		DBBackend: c.config.DBBackend,
		DBDir:     c.config.DBDir,
		Telemetry: c.config.Telemetry,
	}, c.logger)
}
