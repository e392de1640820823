package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOptionsRequired(t *testing.T) {
	opts := []*Option{
		SetDefaultValue(GcpProjectsOpt, ""),
		SetDefaultValue(GcpRegionsOpt, "us-central1"),
	}

	err := ValidateOptions(opts, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project is required")

	GetOptionByName(GcpProjectsOpt.Name, opts).Value = "demo-proj"
	assert.NoError(t, ValidateOptions(opts, opts))
}

func TestSetHelpersCopy(t *testing.T) {
	modified := SetRequired(VerboseOpt, true)
	assert.True(t, modified.Required)
	assert.False(t, VerboseOpt.Required, "package option var must not be mutated")

	withValue := SetDefaultValue(OutputOpt, "elsewhere")
	assert.Equal(t, "elsewhere", withValue.Value)
	assert.Equal(t, "output", OutputOpt.Value)
}

func TestCreateDeepCopyOfOptions(t *testing.T) {
	original := []*Option{&GcpProjectsOpt}
	copied := CreateDeepCopyOfOptions(original)
	copied[0].Value = "mutated"
	assert.Empty(t, GcpProjectsOpt.Value)
}
