package app

import (
	"testing"

	"github.com/hance08/optbank/internal/config"
	"github.com/hance08/optbank/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	application, cleanup, err := NewApp(config.NewDefault())
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, application.Service)
	assert.Equal(t, "built-in fixtures", application.Store.Source())
	assert.Equal(t, "built-in fixtures", application.Service.Source)
}

func TestNewAppRejectsBadLogLevel(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Log.Level = "chatty"

	_, _, err := NewApp(cfg)
	assert.Error(t, err)
}

func TestNewAppRejectsBadLedger(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Store.Accounts = []config.AccountConfig{
		{ID: 1, Balance: &config.BalanceConfig{Currency: "POUND"}},
	}

	_, _, err := NewApp(cfg)
	assert.ErrorIs(t, err, store.ErrInvalidEntry)
}
