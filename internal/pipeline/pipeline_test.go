package pipeline

import (
	"testing"

	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/optional"
	"github.com/hance08/optbank/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureLedger(t *testing.T) *store.Ledger {
	t.Helper()

	ledger, err := store.NewFixtureRepository().Snapshot()
	require.NoError(t, err)
	return ledger
}

func amount(s string) optional.Optional[decimal.Decimal] {
	return optional.Some(decimal.RequireFromString(s))
}

func TestRunPolicyTable(t *testing.T) {
	ledger := fixtureLedger(t)

	tests := []struct {
		name    string
		id      optional.Optional[model.AccountID]
		want    optional.Optional[decimal.Decimal]
		lookup  StageOutcome
		extract StageOutcome
		convert StageOutcome
	}{
		{"normal", optional.Some[model.AccountID](1), amount("110"), StagePresent, StagePresent, StagePresent},
		{"absent id", optional.None[model.AccountID](), optional.None[decimal.Decimal](), StageSkipped, StageSkipped, StageSkipped},
		{"id not in store", optional.Some[model.AccountID](3), optional.None[decimal.Decimal](), StageAbsent, StageSkipped, StageSkipped},
		{"tombstoned record", optional.Some[model.AccountID](4), optional.None[decimal.Decimal](), StageAbsent, StageSkipped, StageSkipped},
		{"record with no balance", optional.Some[model.AccountID](5), optional.None[decimal.Decimal](), StagePresent, StageAbsent, StageSkipped},
		{"balance with absent amount", optional.Some[model.AccountID](6), optional.None[decimal.Decimal](), StagePresent, StagePresent, StageAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Run(ledger, tt.id)
			assert.True(t, AmountEqual(tt.want, got), "want %s, got %s", tt.want, got)

			tr := Explain(ledger, tt.id)
			assert.Equal(t, tt.lookup, tr.Lookup, "lookup")
			assert.Equal(t, tt.extract, tr.Extract, "extract")
			assert.Equal(t, tt.convert, tr.Convert, "convert")
			assert.True(t, AmountEqual(got, tr.Result))
		})
	}
}

func TestExplainRecordsEntryStatus(t *testing.T) {
	ledger := fixtureLedger(t)

	assert.Equal(t, store.EntryTombstoned, Explain(ledger, optional.Some[model.AccountID](4)).Entry)
	assert.Equal(t, store.EntryMissing, Explain(ledger, optional.Some[model.AccountID](3)).Entry)
	assert.Equal(t, store.EntryPresent, Explain(ledger, optional.Some[model.AccountID](5)).Entry)
	assert.Equal(t, store.EntryMissing, Explain(ledger, optional.None[model.AccountID]()).Entry)
}

func TestChainedEqualsComposed(t *testing.T) {
	ledger := fixtureLedger(t)
	composed := Composed(ledger)

	for id := model.AccountID(0); id <= 7; id++ {
		idOpt := optional.Some(id)
		chained := Chained(ledger, idOpt)

		assert.True(t, AmountEqual(chained, composed(id)), "id %d", id)
		assert.True(t, AmountEqual(chained, Run(ledger, idOpt)), "id %d", id)
	}

	assert.True(t, Chained(ledger, optional.None[model.AccountID]()).IsEmpty())
}

func TestToReferenceAmountRates(t *testing.T) {
	hundred := decimal.NewFromInt(100)

	tests := []struct {
		currency model.Currency
		want     string
	}{
		{model.CurrencyReference, "100"},
		{model.CurrencyB, "130"},
		{model.CurrencyC, "110"},
	}

	for _, tt := range tests {
		t.Run(tt.currency.String(), func(t *testing.T) {
			got := ToReferenceAmount(model.Balance{Amount: &hundred, Currency: tt.currency})
			assert.True(t, AmountEqual(amount(tt.want), got), "got %s", got)
		})
	}

	assert.True(t, ToReferenceAmount(model.Balance{Currency: model.CurrencyB}).IsEmpty())
}

func TestBoundaryDefaults(t *testing.T) {
	ledger := fixtureLedger(t)

	for _, id := range []model.AccountID{3, 4, 5, 6} {
		got := ResolveAmount(Run(ledger, optional.Some(id)))
		assert.True(t, decimal.Zero.Equal(got), "id %d", id)
	}
	assert.True(t, decimal.Zero.Equal(ResolveAmount(Run(ledger, optional.None[model.AccountID]()))))
	assert.True(t, decimal.NewFromInt(110).Equal(ResolveAmount(Run(ledger, optional.Some[model.AccountID](1)))))

	def := ResolveBalance(BalanceOf(ledger, optional.Some[model.AccountID](5)))
	assert.Equal(t, model.CurrencyReference, def.Currency)
	require.NotNil(t, def.Amount)
	assert.True(t, decimal.Zero.Equal(*def.Amount))

	got := ResolveBalance(BalanceOf(ledger, optional.Some[model.AccountID](1)))
	assert.Equal(t, model.CurrencyC, got.Currency)
}

func TestDefaultBalanceIsFresh(t *testing.T) {
	a := DefaultBalance()
	*a.Amount = decimal.NewFromInt(5)

	assert.True(t, decimal.Zero.Equal(*DefaultBalance().Amount))
	assert.True(t, decimal.Zero.Equal(DefaultAmount))
}
