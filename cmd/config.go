package cmd

import (
	"fmt"

	"github.com/shelfd-io/shelfd/config/options"
	"github.com/shelfd-io/shelfd/pkg/log"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

const configUsage = `Print the effective configuration.

Every server option can be set with its own flag. Boolean options are
toggled with --enable-<option> and --disable-<option>.`

func newConfigCmd() *cobra.Command {
	var (
		configurationFile string
		format            string
		path              string
	)

	parser := options.NewParser(options.Default(), configUsage)

	config := &cobra.Command{
		Use:   "config [flags]",
		Short: "Print the effective configuration",
		Long:  parser.Usage(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := parser.Check(); err != nil {
				return err
			}

			cfg, err := initConfig(configurationFile, parser.Overrides())
			if err != nil {
				return err
			}

			logger, err := log.NewZapLogger(&cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			logger.Named("config").Debugw("configuration resolved",
				"url", cfg.Server.URL(),
				"auth", cfg.Server.Auth,
				"auth_mode", cfg.Server.EffectiveAuthMode(),
			)

			if path != "" {
				result := gjson.Get(cfg.String(), path)
				if !result.Exists() {
					return fmt.Errorf("no value at '%s'", path)
				}
				cmd.Println(result.String())
				return nil
			}

			switch format {
			case "json":
				cmd.Println(cfg.String())
			case "yaml":
				cmd.Print(cfg.YAML())
			default:
				return fmt.Errorf("invalid format: %s", format)
			}
			return nil
		},
	}

	config.Flags().AddFlagSet(parser.FlagSet())
	config.Flags().StringVarP(&configurationFile, "config", "", "", "The configuration filename")
	config.Flags().StringVarP(&format, "format", "", "yaml", "Output format (yaml or json)")
	config.Flags().StringVarP(&path, "get", "", "", "Print the value at a path such as server.port")

	return config
}
