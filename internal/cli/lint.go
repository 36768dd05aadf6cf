package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/translint/translint/api"
	"github.com/translint/translint/pkg/config"
	"github.com/translint/translint/pkg/format"
	"github.com/translint/translint/pkg/project"
	"github.com/translint/translint/pkg/rule"
)

const cmdExamples = `  # Lint the current directory:
  translint

  # Lint a file or directory path:
  translint ./locales

  # Watch for changes and re-lint:
  translint ./locales --watch

  # Emit findings as JSON:
  translint ./locales --output json

  # Use an explicit config file:
  translint --config ./translint.yaml`

// ErrFindingsReported is returned when a lint pass produced error-severity
// findings, so the process exits non-zero.
var ErrFindingsReported = errors.New("problems found")

type LintArgs struct {
	*RootArgs

	Path       string
	ConfigPath string
	Output     string
	Watch      bool
	ShowConfig bool
}

func NewLintArgs(rootArgs *RootArgs) *LintArgs {
	return &LintArgs{
		RootArgs: rootArgs,
	}
}

func (la *LintArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&la.ConfigPath, "config", "", "Path to the translint configuration file")
	cmd.Flags().StringVarP(&la.Output, "output", "o", "text",
		fmt.Sprintf("Output format, one of: %s", format.AllFormats))
	cmd.Flags().BoolVarP(&la.Watch, "watch", "w", false, "Watch for changes and re-lint")
	cmd.Flags().BoolVar(&la.ShowConfig, "show-config", false, "Print the active configuration and exit")

	var err error

	err = cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}

	err = cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions(format.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

func NewLintCmd(la *LintArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lint [path]",
		Short:   "Default command, lints the resource files under a path",
		Example: cmdExamples,
		Args:    cobra.MaximumNArgs(1),

		ValidArgsFunction: lintCompletion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			la.Path = "."
			if len(args) > 0 {
				la.Path = args[0]
			}

			return lint(cmd, la)
		},
	}
	la.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func lintCompletion() func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}

		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

func lint(cmd *cobra.Command, la *LintArgs) error {
	cfg, configPath, err := loadConfig(la)
	if err != nil {
		return err
	}

	if la.ShowConfig {
		slog.Info("active configuration", slog.String("path", configPath))

		yamlBytes, err := api.MarshalYAML(cfg)
		if err != nil {
			return fmt.Errorf("marshal config yaml: %w", err)
		}

		mustN(fmt.Fprintln(cmd.OutOrStdout(), string(yamlBytes)))

		return nil
	}

	renderer, err := format.ByName(la.Output)
	if err != nil {
		return err
	}

	p, err := project.New(cfg, project.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	if la.Watch {
		return watchLint(cmd, p, la.Path, renderer)
	}

	findings, err := p.Lint(la.Path)
	if err != nil {
		return fmt.Errorf("lint %q: %w", la.Path, err)
	}

	err = renderer.Render(cmd.OutOrStdout(), findings)
	if err != nil {
		return err
	}

	if hasErrors(findings) {
		return ErrFindingsReported
	}

	return nil
}

func watchLint(cmd *cobra.Command, p *project.Project, path string, renderer format.Renderer) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := p.Watch(ctx, path, func(findings []rule.Finding, err error) {
		if err != nil {
			slog.Error("lint pass failed", slog.Any("err", err))

			return
		}

		renderErr := renderer.Render(cmd.OutOrStdout(), findings)
		if renderErr != nil {
			slog.Error("render findings", slog.Any("err", renderErr))
		}
	})
	if err != nil {
		return fmt.Errorf("watch %q: %w", path, err)
	}

	return nil
}

// loadConfig resolves the active configuration. Order of precedence is the
// --config flag, a project config found by walking up from the lint path,
// then the user-level config. A missing config falls back to defaults.
func loadConfig(la *LintArgs) (*config.Config, string, error) {
	configPath := la.ConfigPath

	if configPath == "" {
		found, err := config.Find(la.Path)
		if err != nil {
			slog.Debug("project config discovery failed", slog.Any("err", err))
		}

		configPath = found
	}

	if configPath == "" {
		configPath = config.GetPath()
	}

	cl, err := config.NewLoaderFromFile(configPath)
	if err != nil {
		if la.ConfigPath != "" {
			// An explicitly named config must exist.
			return nil, "", fmt.Errorf("read config %q: %w", configPath, err)
		}

		slog.Debug("no config found, using defaults", slog.Any("err", err))

		return config.New(), configPath, nil
	}

	err = cl.Validate()
	if err != nil {
		return nil, "", fmt.Errorf("invalid config %q: %w", configPath, err)
	}

	cfg, err := cl.Load()
	if err != nil {
		return nil, "", fmt.Errorf("invalid config %q: %w", configPath, err)
	}

	return cfg, configPath, nil
}

func hasErrors(findings []rule.Finding) bool {
	for _, f := range findings {
		if f.Severity == rule.SeverityError {
			return true
		}
	}

	return false
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func mustN(_ int, err error) {
	must(err)
}
