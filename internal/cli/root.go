// Package cli implements the timeconv command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/timeconv/internal/infrastructure/config"
)

type rootOptions struct {
	configFile string
	logLevel   string
}

// NewRootCommand builds the timeconv command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "timeconv",
		Short:         "Convert durations between time units",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "Path to a configuration file (defaults to configs/<env>.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Override the configured log level")

	cmd.AddCommand(
		newConvertCommand(opts),
		newUnitsCommand(),
		newServeCommand(opts),
	)

	return cmd
}

// Execute runs the root command and returns the process exit code
func Execute(ctx context.Context) int {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configFile != "" {
		cfg, err = config.LoadConfigFile(o.configFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	if o.logLevel != "" {
		cfg.Logger.Level = o.logLevel
	}
	return cfg, nil
}
