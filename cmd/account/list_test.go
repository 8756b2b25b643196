package account

import (
	"testing"

	"github.com/hance08/optbank/internal/config"
	"github.com/hance08/optbank/internal/service"
	"github.com/hance08/optbank/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAccounts(t *testing.T) {
	svc := service.NewService(store.NewFixtureRepository(), config.NewDefault(), nil)
	accounts, err := svc.Account.List()
	require.NoError(t, err)

	visible := filterAccounts(accounts, &listFlags{})
	require.Len(t, visible, 3)
	for _, acc := range visible {
		assert.NotEqual(t, store.EntryTombstoned, acc.Status)
	}

	assert.Len(t, filterAccounts(accounts, &listFlags{ShowTombstones: true}), 4)

	absent := filterAccounts(accounts, &listFlags{ShowTombstones: true, OnlyAbsent: true})
	assert.Len(t, absent, 3)
}

func TestNewAccountCmd(t *testing.T) {
	svc := service.NewService(store.NewFixtureRepository(), config.NewDefault(), nil)
	cmd := NewAccountCmd(svc)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"list", "show"}, names)
}
