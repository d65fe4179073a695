package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsltools/bsllint/pkg/config"
	_ "github.com/bsltools/bsllint/pkg/lint/rules"
)

// newProjectDir creates a temp dir bounded by a VCS marker so the upward
// config search never escapes into the host filesystem.
func newProjectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func isolatedLoadOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := newProjectDir(t)

	result, err := Load(context.Background(), isolatedLoadOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, config.LanguageEnglish, result.Config.Language)
	assert.Equal(t, string(config.SeverityMinor), result.Config.SeverityDefault)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoadProjectYAML(t *testing.T) {
	dir := newProjectDir(t)
	path := writeConfigFile(t, dir, ".bsllint.yml", `
language: ru
rules:
  magic-number:
    severity: major
    options:
      authorizedNumbers: "0,1"
`)

	result, err := Load(context.Background(), isolatedLoadOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, []string{path}, result.LoadedFrom)
	assert.Equal(t, config.LanguageRussian, result.Config.Language)

	// Rule keys are normalized to canonical IDs.
	ruleCfg, ok := result.Config.Rules["BSL001"]
	require.True(t, ok)
	require.NotNil(t, ruleCfg.Severity)
	assert.Equal(t, "major", *ruleCfg.Severity)
	assert.Equal(t, "0,1", ruleCfg.Options["authorizedNumbers"])
}

func TestLoadProjectTOML(t *testing.T) {
	dir := newProjectDir(t)
	writeConfigFile(t, dir, ".bsllint.toml", `
language = "ru"

[rules.BSL004]
enabled = true

[rules.BSL004.options]
minWordLength = 4
`)

	result, err := Load(context.Background(), isolatedLoadOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, config.LanguageRussian, result.Config.Language)

	ruleCfg, ok := result.Config.Rules["BSL004"]
	require.True(t, ok)
	require.NotNil(t, ruleCfg.Enabled)
	assert.True(t, *ruleCfg.Enabled)
}

func TestLoadExplicitOverridesProject(t *testing.T) {
	dir := newProjectDir(t)
	writeConfigFile(t, dir, ".bsllint.yml", "language: ru\n")
	explicit := writeConfigFile(t, dir, "ci.yaml", "language: en\nseverity_default: major\n")

	opts := isolatedLoadOptions(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.LanguageEnglish, result.Config.Language)
	assert.Equal(t, "major", result.Config.SeverityDefault)
	assert.Len(t, result.LoadedFrom, 2)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := newProjectDir(t)
	writeConfigFile(t, dir, ".bsllint.yml", "language: en\n")

	t.Setenv("BSLLINT_LANGUAGE", "ru")
	t.Setenv("BSLLINT_JOBS", "3")
	t.Setenv("BSLLINT_IGNORE", "gen/**, vendor/**")

	opts := isolatedLoadOptions(dir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.LanguageRussian, result.Config.Language)
	assert.Equal(t, 3, result.Config.Jobs)
	assert.Equal(t, []string{"gen/**", "vendor/**"}, result.Config.Ignore)
}

func TestLoadEnvInvalidInteger(t *testing.T) {
	dir := newProjectDir(t)
	t.Setenv("BSLLINT_JOBS", "many")

	opts := isolatedLoadOptions(dir)
	opts.IgnoreEnv = false

	_, err := Load(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BSLLINT_JOBS")
}

func TestLoadCLIConfigHighestPrecedence(t *testing.T) {
	dir := newProjectDir(t)
	writeConfigFile(t, dir, ".bsllint.yml", "language: ru\nseverity_default: major\n")

	opts := isolatedLoadOptions(dir)
	opts.CLIConfig = &config.Config{Language: config.LanguageEnglish, Jobs: 2}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.LanguageEnglish, result.Config.Language)
	assert.Equal(t, 2, result.Config.Jobs)
	// Untouched fields keep the project value.
	assert.Equal(t, "major", result.Config.SeverityDefault)
}

func TestLoadInvalidSeverityFails(t *testing.T) {
	dir := newProjectDir(t)
	writeConfigFile(t, dir, ".bsllint.yml", "severity_default: fatal\n")

	_, err := Load(context.Background(), isolatedLoadOptions(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid severity")
}

func TestLoadUnknownRuleWarnsAndDrops(t *testing.T) {
	dir := newProjectDir(t)
	writeConfigFile(t, dir, ".bsllint.yml", `
rules:
  no-such-rule:
    severity: info
`)

	result, err := Load(context.Background(), isolatedLoadOptions(dir))
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "no-such-rule")
	assert.NotContains(t, result.Config.Rules, "no-such-rule")
}

func TestLoadDuplicateRuleKeysWarn(t *testing.T) {
	dir := newProjectDir(t)
	writeConfigFile(t, dir, ".bsllint.yml", `
rules:
  BSL001:
    severity: info
  magic-number:
    severity: major
`)

	result, err := Load(context.Background(), isolatedLoadOptions(dir))
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "duplicate rule configuration")
	assert.Contains(t, result.Config.Rules, "BSL001")
}

func TestFindProjectConfigSearchesUpward(t *testing.T) {
	dir := newProjectDir(t)
	path := writeConfigFile(t, dir, ".bsllint.yaml", "language: en\n")

	nested := filepath.Join(dir, "src", "CommonModules")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := FindProjectConfig(context.Background(), nested)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindProjectConfigStopsAtVCSRoot(t *testing.T) {
	root := t.TempDir()
	writeConfigFile(t, root, ".bsllint.yml", "language: en\n")

	// VCS root below the config file bounds the search.
	project := filepath.Join(root, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(project, ".git"), 0o755))

	found, err := FindProjectConfig(context.Background(), project)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestMergeScalarsAndSlices(t *testing.T) {
	base := config.NewConfig()
	base.Ignore = []string{"a/**"}

	override := &config.Config{
		Language: config.LanguageRussian,
		Jobs:     4,
		Ignore:   []string{"b/**"},
	}

	merged := merge(base, override)

	assert.Equal(t, config.LanguageRussian, merged.Language)
	assert.Equal(t, 4, merged.Jobs)
	assert.Equal(t, []string{"b/**"}, merged.Ignore)
	// Unset override fields keep base values.
	assert.Equal(t, string(config.SeverityMinor), merged.SeverityDefault)
}

func TestMergeRuleOptionsDeep(t *testing.T) {
	enabled := true
	sev := "major"

	base := config.NewConfig()
	base.Rules["BSL001"] = config.RuleConfig{
		Severity: &sev,
		Options:  map[string]any{"authorizedNumbers": "-1,0,1", "allowMagicIndexes": true},
	}

	override := &config.Config{
		Rules: map[string]config.RuleConfig{
			"BSL001": {
				Enabled: &enabled,
				Options: map[string]any{"authorizedNumbers": "0"},
			},
		},
	}

	merged := merge(base, override)

	ruleCfg := merged.Rules["BSL001"]
	require.NotNil(t, ruleCfg.Enabled)
	assert.True(t, *ruleCfg.Enabled)
	require.NotNil(t, ruleCfg.Severity)
	assert.Equal(t, "major", *ruleCfg.Severity)
	assert.Equal(t, "0", ruleCfg.Options["authorizedNumbers"])
	assert.Equal(t, true, ruleCfg.Options["allowMagicIndexes"])
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Format = "xml"
	cfg.Jobs = -1

	result := Validate(cfg)
	assert.False(t, result.Valid())
	assert.Len(t, result.Errors, 2)
}
