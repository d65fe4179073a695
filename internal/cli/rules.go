package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	goldmarkext "github.com/yuin/goldmark/extension"
	"golang.org/x/term"

	"github.com/bsltools/bsllint/internal/logging"
	"github.com/bsltools/bsllint/pkg/config"
	"github.com/bsltools/bsllint/pkg/lint"
)

type rulesFlags struct {
	ruleFormat string
	format     string
}

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Severity    string           `json:"severity"`
	Enabled     bool             `json:"enabledByDefault"`
	Tags        []string         `json:"tags,omitempty"`
	Options     []ruleOptionInfo `json:"options,omitempty"`
}

// ruleOptionInfo describes a configurable rule option.
type ruleOptionInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Default     any    `json:"default"`
	Description string `json:"description"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all available lint rules with their IDs, descriptions, default
severity, and configurable options.

The markdown and html formats produce a reference document suitable for
publishing alongside a project's contribution guide.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registryRules := lint.DefaultRegistry.Rules()

			switch flags.format {
			case "json":
				return outputRulesJSON(cmd, registryRules)
			case "markdown":
				_, err := fmt.Fprint(cmd.OutOrStdout(), rulesMarkdown(registryRules))
				return err
			case "html":
				return outputRulesHTML(cmd, registryRules)
			case "text", "":
				outputRulesText(registryRules, config.RuleFormat(flags.ruleFormat))
				return nil
			default:
				return fmt.Errorf("unknown format %q; valid formats: text, json, markdown, html", flags.format)
			}
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json, markdown, html")

	return cmd
}

// outputRulesText prints rules through the interactive logger.
func outputRulesText(registryRules []lint.Rule, ruleFormat config.RuleFormat) {
	logger := logging.NewInteractive()

	if len(registryRules) == 0 {
		logger.Info("no rules registered")
		return
	}

	logger.Info("available rules")

	width := terminalWidth()

	for _, rule := range registryRules {
		ruleIdentifier := config.FormatRuleID(ruleFormat, rule.ID(), rule.Name())

		enabled := "yes"
		if !rule.DefaultEnabled() {
			enabled = "no"
		}

		logger.Info(ruleIdentifier,
			logging.FieldSeverity, rule.DefaultSeverity(),
			"enabled", enabled,
			logging.FieldDescription, truncate(rule.Description(), width),
		)
	}
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(cmd *cobra.Command, registryRules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(registryRules))
	for _, rule := range registryRules {
		info := ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Enabled:     rule.DefaultEnabled(),
			Tags:        rule.Tags(),
		}
		for _, opt := range rule.Options() {
			info.Options = append(info.Options, ruleOptionInfo{
				Name:        opt.Name,
				Type:        string(opt.Type),
				Default:     opt.Default,
				Description: opt.Description,
			})
		}
		infos = append(infos, info)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

// rulesMarkdown renders the rule reference as a Markdown document.
func rulesMarkdown(registryRules []lint.Rule) string {
	var b strings.Builder

	b.WriteString("# Rule reference\n\n")

	for _, rule := range registryRules {
		fmt.Fprintf(&b, "## %s: %s\n\n", rule.ID(), rule.Name())
		fmt.Fprintf(&b, "%s\n\n", rule.Description())
		fmt.Fprintf(&b, "- Default severity: `%s`\n", rule.DefaultSeverity())
		fmt.Fprintf(&b, "- Enabled by default: `%t`\n", rule.DefaultEnabled())

		if tags := rule.Tags(); len(tags) > 0 {
			sorted := append([]string(nil), tags...)
			sort.Strings(sorted)
			fmt.Fprintf(&b, "- Tags: %s\n", strings.Join(sorted, ", "))
		}
		b.WriteString("\n")

		opts := rule.Options()
		if len(opts) == 0 {
			continue
		}

		b.WriteString("| Option | Type | Default | Description |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, opt := range opts {
			fmt.Fprintf(&b, "| `%s` | %s | `%v` | %s |\n",
				opt.Name, opt.Type, opt.Default, opt.Description)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// outputRulesHTML renders the Markdown rule reference to HTML.
func outputRulesHTML(cmd *cobra.Command, registryRules []lint.Rule) error {
	md := goldmark.New(
		goldmark.WithExtensions(goldmarkext.Table),
	)

	source := rulesMarkdown(registryRules)
	if err := md.Convert([]byte(source), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("render rules HTML: %w", err)
	}
	return nil
}

// terminalWidth returns the stdout terminal width, or 0 when unknown.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// truncate shortens a description to fit a terminal line.
func truncate(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
