package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bsltools/bsllint/internal/configloader"
	"github.com/bsltools/bsllint/internal/logging"
	"github.com/bsltools/bsllint/pkg/config"
	"github.com/bsltools/bsllint/pkg/lint"
	"github.com/bsltools/bsllint/pkg/lint/rules"
	bslparser "github.com/bsltools/bsllint/pkg/parser/bsl"
	"github.com/bsltools/bsllint/pkg/reporter"
	"github.com/bsltools/bsllint/pkg/runner"
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format      string
	language    string
	ignore      []string
	enable      []string
	disable     []string
	strict      bool
	noContext   bool
	compact     bool
	ruleFormat  string
	spellCache  string
	retainTrees bool
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint BSL modules",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Lint BSL modules for code smells and style issues.

By default, lints all .bsl and .os files in the current directory and
subdirectories. Specify paths to lint specific files or directories.

Examples:
  bsllint lint                     # Lint current directory
  bsllint lint CommonModules/      # Lint a directory
  bsllint lint Module.bsl          # Lint single file
  bsllint lint --enable typo       # Enable the spelling check
  bsllint lint --format json       # Output as JSON for CI
  bsllint lint --strict            # Any issue fails the run`

func runLint(cmd *cobra.Command, args []string, cfg *config.Config, flags *lintFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	// Only set values that were explicitly provided via CLI flags.
	cfg.Format = config.OutputFormat(flags.format)
	if cmd.Flags().Changed("language") {
		cfg.Language = config.Language(flags.language)
	}
	if cmd.Flags().Changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.SpellCachePath = flags.spellCache
	cfg.RetainTrees = flags.retainTrees

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPaths, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldLanguage, finalCfg.Language,
		logging.FieldJobs, finalCfg.Jobs,
		logging.FieldFormat, finalCfg.Format,
	)

	// Warm the spelling memo from a previous run.
	if finalCfg.SpellCachePath != "" {
		if err := rules.LoadSpellCache(string(finalCfg.Language), finalCfg.SpellCachePath); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				logger.Warn("failed to load spell cache",
					logging.FieldPath, finalCfg.SpellCachePath, logging.FieldError, err)
			}
		}
	}

	engine := lint.NewEngine(bslparser.New(), lint.DefaultRegistry)
	if err := engine.Configure(finalCfg); err != nil {
		return errors.Join(errors.New("invalid rule configuration"), err)
	}

	lintRunner := runner.New(lint.NewPipeline(engine))

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	// Persist the spelling memo for the next run.
	if finalCfg.SpellCachePath != "" {
		if err := rules.SaveSpellCache(string(finalCfg.Language), finalCfg.SpellCachePath); err != nil {
			logger.Warn("failed to save spell cache",
				logging.FieldPath, finalCfg.SpellCachePath, logging.FieldError, err)
		}
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     flags.compact,
		RuleFormat:  finalCfg.RuleFormat,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	exitCode := ExitCodeFromResult(result, flags.strict)
	if exitCode != ExitSuccess {
		return ErrLintIssuesFound
	}

	return nil
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().StringVar(&flags.language, "language", "en", "spelling language: en, ru")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat any issue as an error for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.spellCache, "spell-cache", "",
		"path to the persisted spelling cache")
	cmd.Flags().BoolVar(&flags.retainTrees, "retain-trees", false,
		"keep syntax trees in memory after analysis")
}
