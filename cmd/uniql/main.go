// Command uniql parses, formats and inspects Uniql models.
//
// Usage:
//
//	uniql parse 'product{name,category{name}|price>10|1-20|-name}'
//	uniql parse --format yaml 'product{name,tag{name}}'
//	uniql fmt --indent 'product{name,category{name,tag{name}|search}}'
//	uniql paths --leaves 'product{name,category{name}}'
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MBEJunior/uniql/cobraext"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		cfgFile    string
		verbose    bool
		maxDepth   int
		strictPage bool
	)
	opts := &cobraext.Options{}

	root := &cobra.Command{
		Use:           "uniql",
		Short:         "Parse and format Uniql selection models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			cfg, err := cobraext.LoadConfig(cfgFile)
			if err != nil {
				logger.Error("failed to load configuration", zap.String("path", cfgFile), zap.Error(err))
				return err
			}
			if cmd.Flags().Changed("max-depth") {
				cfg.MaxDepth = maxDepth
			}
			if cmd.Flags().Changed("strict-page") {
				cfg.StrictPage = strictPage
			}
			logger.Debug("configuration loaded",
				zap.Int("max_depth", cfg.MaxDepth),
				zap.Bool("strict_page", cfg.StrictPage),
				zap.String("format", cfg.Format))

			opts.Config = cfg
			opts.Logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML config file (default "+cobraext.DefaultConfigFile+")")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "Maximum selection nesting depth (negative disables the limit)")
	root.PersistentFlags().BoolVar(&strictPage, "strict-page", false, "Reject page numbers or sizes below 1")

	cobraext.AddCommands(root, opts)
	return root
}

// newLogger returns a development logger when verbose is set and a
// production logger at warn level otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
