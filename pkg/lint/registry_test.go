package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	rule := newReportingRule("T001", "first-rule")
	registry.Register(rule)

	got, ok := registry.Get("T001")
	require.True(t, ok)
	assert.Equal(t, rule, got)

	got, ok = registry.Get("first-rule")
	require.True(t, ok)
	assert.Equal(t, rule, got)

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

func TestRegistryResolveAlias(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(newReportingRule("T001", "first-rule"))
	registry.RegisterAlias("LegacyName", "T001")

	id, rule, ok := registry.Resolve("LegacyName")
	require.True(t, ok)
	assert.Equal(t, "T001", id)
	assert.Equal(t, "first-rule", rule.Name())

	_, _, ok = registry.Resolve("UnknownAlias")
	assert.False(t, ok)
}

func TestRegistryRulesSorted(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(newReportingRule("T003", "c"))
	registry.Register(newReportingRule("T001", "a"))
	registry.Register(newReportingRule("T002", "b"))

	var ids []string
	for _, rule := range registry.Rules() {
		ids = append(ids, rule.ID())
	}
	assert.Equal(t, []string{"T001", "T002", "T003"}, ids)
	assert.Equal(t, []string{"T001", "T002", "T003"}, registry.IDs())
}

func TestRegistryReplaceOnSameID(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(newReportingRule("T001", "old"))
	registry.Register(newReportingRule("T001", "new"))

	rule, ok := registry.GetByID("T001")
	require.True(t, ok)
	assert.Equal(t, "new", rule.Name())
}
