package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_SetAndGet(t *testing.T) {
	withServices(t, nil, nil)

	out, err := execute(t, "config", "set", "session", "abc123")
	require.NoError(t, err)
	assert.Contains(t, out, "Set session")

	out, err = execute(t, "config", "get", "session")
	require.NoError(t, err)
	assert.Contains(t, out, "abc123")
}

func TestConfigCmd_GetMissingKey(t *testing.T) {
	withServices(t, nil, nil)

	_, err := execute(t, "config", "get", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not set")
}

func TestConfigCmd_Path(t *testing.T) {
	withServices(t, nil, nil)

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "config.toml")
}
