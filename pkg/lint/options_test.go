package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOptionsDefaults(t *testing.T) {
	t.Parallel()

	specs := []OptionSpec{
		{Name: "limit", Type: OptionInt, Default: 10},
		{Name: "mode", Type: OptionString, Default: "strict"},
	}

	decoded, err := DecodeOptions("T001", specs, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, decoded["limit"])
	assert.Equal(t, "strict", decoded["mode"])
}

func TestDecodeOptionsUnknownKey(t *testing.T) {
	t.Parallel()

	_, err := DecodeOptions("T001", nil, map[string]any{"mystery": 1})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "T001", cfgErr.RuleID)
	assert.Equal(t, "mystery", cfgErr.Option)
}

func TestDecodeOptionsTypeCoercion(t *testing.T) {
	t.Parallel()

	specs := []OptionSpec{{Name: "limit", Type: OptionInt, Default: 0}}

	// YAML hands integral numbers over as float64 in some paths.
	decoded, err := DecodeOptions("T001", specs, map[string]any{"limit": float64(7)})
	require.NoError(t, err)
	assert.Equal(t, 7, decoded["limit"])

	_, err = DecodeOptions("T001", specs, map[string]any{"limit": 7.5})
	require.Error(t, err)

	_, err = DecodeOptions("T001", specs, map[string]any{"limit": "7"})
	require.Error(t, err)
}

func TestDecodeOptionsTypeMismatch(t *testing.T) {
	t.Parallel()

	specs := []OptionSpec{
		{Name: "mode", Type: OptionString, Default: ""},
		{Name: "flag", Type: OptionBool, Default: false},
	}

	_, err := DecodeOptions("T001", specs, map[string]any{"mode": true})
	require.Error(t, err)

	_, err = DecodeOptions("T001", specs, map[string]any{"flag": "yes"})
	require.Error(t, err)
}

func TestConfigErrorMessage(t *testing.T) {
	t.Parallel()

	err := &ConfigError{RuleID: "T001", Option: "limit", Reason: "too big"}
	assert.Equal(t, `rule T001: option "limit": too big`, err.Error())

	err = &ConfigError{RuleID: "T001", Reason: "unknown rule"}
	assert.Equal(t, "rule T001: unknown rule", err.Error())
}
