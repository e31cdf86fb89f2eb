package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mint-labs/mint/internal/branding"
	"github.com/mint-labs/mint/internal/command"
	"github.com/mint-labs/mint/internal/config"
	"github.com/mint-labs/mint/internal/ctxlog"
	"github.com/mint-labs/mint/internal/pkgmanifest"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` reads Swift package manifests through the toolchain's
dump-package command and reports their products, targets and resources.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		s := config.Current()

		level, format := s.LogLevel, s.LogFormat
		if logLevel != "" {
			level = logLevel
		}
		if logFormat != "" {
			format = logFormat
		}

		logger := ctxlog.New(level, format, cmd.ErrOrStderr())
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// newLoader builds a Loader from the current configuration.
func newLoader() *pkgmanifest.Loader {
	s := config.Current()
	l := pkgmanifest.NewLoader(&command.ExecRunner{Timeout: s.Timeout})
	if s.Tool != "" {
		l.Tool = s.Tool
	}
	if len(s.ToolArgs) > 0 {
		l.Args = s.ToolArgs
	}
	return l
}

// packageDir returns the directory argument or the working directory.
func packageDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
