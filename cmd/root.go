package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/shelfd-io/shelfd/config"
	"github.com/shelfd-io/shelfd/config/modules"
	"github.com/shelfd-io/shelfd/config/options"
	"github.com/shelfd-io/shelfd/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const usage = `shelfd [command] [options]

Resolve the configuration of the content server from defaults, an optional
YAML file, SHELFD_* environment variables and command-line options.`

var (
	verbose bool
)

func initConfig(filename string, overrides map[string]any) (*config.Config, error) {
	cfg := config.New(options.Default())
	if err := config.Load(filename, overrides, cfg, loaderLogger()); err != nil {
		return nil, errors.Wrap(err, "could not load configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func loaderLogger() *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	logger, err := log.NewZapLogger(&modules.LogConfig{
		Level:  modules.LogLevelDebug,
		Format: modules.LogFormatText,
	})
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Named("config")
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "shelfd",
		Short:        "Content server configuration",
		Long:         usage,
		SilenceUsage: true,
	}

	cmd.SetOut(os.Stdout)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "", false, "Verbose logging.")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newOptionsCmd())

	return cmd
}

func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
