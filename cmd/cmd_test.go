package cmd

import (
	"testing"

	"github.com/hance08/optbank/internal/config"
	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/optional"
	"github.com/hance08/optbank/internal/service"
	"github.com/hance08/optbank/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFlagFromArgs(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"convert", "1"}, ""},
		{[]string{"--config", "a.yaml", "laws"}, "a.yaml"},
		{[]string{"laws", "-c", "b.yaml"}, "b.yaml"},
		{[]string{"--config=c.yaml"}, "c.yaml"},
		{[]string{"-c=d.yaml", "info"}, "d.yaml"},
		{[]string{"--config"}, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, configFlagFromArgs(tt.args), "%v", tt.args)
	}
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1", "none", "-", "4"})
	require.NoError(t, err)
	assert.Equal(t, []optional.Optional[model.AccountID]{
		optional.Some[model.AccountID](1),
		optional.None[model.AccountID](),
		optional.None[model.AccountID](),
		optional.Some[model.AccountID](4),
	}, ids)

	_, err = parseIDs([]string{"1", "x"})
	assert.Error(t, err)
}

func TestWithoutFallback(t *testing.T) {
	svc := service.NewService(store.NewFixtureRepository(), config.NewDefault(), nil)

	convs, err := svc.Conversion.ConvertAll([]optional.Optional[model.AccountID]{
		optional.Some[model.AccountID](1),
		optional.Some[model.AccountID](3),
	})
	require.NoError(t, err)
	assert.True(t, hasAbsent(convs))
	assert.True(t, convs[1].UsedFallback)

	stripped := withoutFallback(convs)
	assert.True(t, stripped[1].Resolved.IsEmpty())
	assert.False(t, stripped[1].UsedFallback)
	assert.True(t, decimal.NewFromInt(110).Equal(stripped[0].Resolved.OrElse(decimal.Zero)))

	// the input is left untouched
	assert.True(t, convs[1].UsedFallback)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Failed", capitalize("failed"))
	assert.Equal(t, "", capitalize(""))
}

func TestCollectIDsDefaultsToLedger(t *testing.T) {
	svc := service.NewService(store.NewFixtureRepository(), config.NewDefault(), nil)
	runner := &convertRunner{svc: svc, flags: &convertFlags{}}

	ids, err := runner.collectIDs(nil)
	require.NoError(t, err)
	require.Len(t, ids, 4)
	assert.Equal(t, optional.Some[model.AccountID](6), ids[3])
}
