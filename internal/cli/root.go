package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/translint/translint/pkg/log"
	"github.com/translint/translint/pkg/version"
)

const (
	cmdName = "translint"
	cmdDesc = `Rule-based quality checks for localization resource files.`
)

type RootArgs struct {
	LogLevel  string
	LogFormat string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "warn", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))

	var err error

	err = cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	err = cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()
	lintArgs := NewLintArgs(args)

	lintCmd := NewLintCmd(lintArgs)
	cmd := &cobra.Command{
		Use:               cmdName,
		Short:             cmdDesc,
		Example:           cmdExamples,
		Version:           version.GetVersion(),
		PersistentPreRunE: setupLogging(args),
		ValidArgsFunction: lintCompletion(),
		Args:              lintCmd.Args,
		RunE:              lintCmd.RunE,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	args.AddFlags(cmd)
	lintArgs.AddFlags(cmd)
	cmd.AddCommand(lintCmd)
	cmd.AddCommand(NewInitCmd())

	bindEnvVars(cmd)

	return cmd
}

func setupLogging(rc *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logHandler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), rc.LogLevel, rc.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		slog.SetDefault(slog.New(logHandler))

		return nil
	}
}
