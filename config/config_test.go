package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	cfg := Default()
	cfg.NET.ReadBufferSize = 0
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.NET.ReadBufferSize = -1
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.HTTP.SessionPoolSize = -1
	require.Error(t, cfg.Validate())
}
