package laws

import (
	"testing"

	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/optional"
	"github.com/hance08/optbank/internal/pipeline/naive"
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

func eqInt(a, b int) bool { return a == b }

func TestGenericLaws(t *testing.T) {
	half := func(v int) optional.Optional[int] {
		if v%2 != 0 {
			return optional.None[int]()
		}
		return optional.Some(v / 2)
	}
	dec := func(v int) optional.Optional[int] {
		if v == 0 {
			return optional.None[int]()
		}
		return optional.Some(v - 1)
	}

	for _, x := range []int{0, 1, 2, 8, 9} {
		assert.True(t, LeftIdentity(x, half, eqInt), "left identity %d", x)
		assert.True(t, Associativity(optional.Some(x), half, dec, eqInt), "associativity %d", x)
		assert.True(t, Idempotence(optional.Some(x), half, eqInt), "idempotence %d", x)
	}
	assert.True(t, Associativity(optional.None[int](), half, dec, eqInt))
	assert.True(t, Idempotence(optional.None[int](), half, eqInt))
}

func TestAssociativityDetectsViolation(t *testing.T) {
	// g is impure, so the two groupings observe different call counts.
	calls := 0
	f := func(v int) optional.Optional[int] { return optional.Some(v) }
	g := func(v int) optional.Optional[int] {
		calls++
		return optional.Some(calls)
	}

	assert.False(t, Associativity(optional.Some(1), f, g, eqInt))
}

func TestVerifyCanonicalScenarios(t *testing.T) {
	report := Verify(fixtureLedger(t), CanonicalScenarios())

	require.Len(t, report.Checks, 3*len(CanonicalScenarios()))
	assert.True(t, report.OK(), "failures: %v", report.Failures())
}

func TestVerifyArbitraryIDs(t *testing.T) {
	ledger := fixtureLedger(t)

	var scenarios []Scenario
	for id := model.AccountID(-2); id <= 10; id++ {
		scenarios = append(scenarios, Scenario{Name: "sweep", ID: optional.Some(id)})
	}

	assert.True(t, Verify(ledger, scenarios).OK())
}

func TestContrast(t *testing.T) {
	divergences := Contrast(fixtureLedger(t), CanonicalScenarios())
	require.Len(t, divergences, 6)

	byName := make(map[string]Divergence, len(divergences))
	for _, d := range divergences {
		byName[d.Scenario.Name] = d
	}

	normal := byName["stored with balance"]
	assert.False(t, normal.Diverges())
	assert.False(t, normal.DeviatesFromPipeline())
	assert.Equal(t, "Optional[110]", normal.Pipeline.String())

	assert.False(t, byName["absent id"].Diverges())

	for _, name := range []string{"id not in store", "tombstoned record", "record with no balance"} {
		d := byName[name]
		assert.True(t, d.Diverges(), name)
		assert.True(t, d.DeviatesFromPipeline(), name)
		assert.True(t, d.Pipeline.Value.IsEmpty(), name)
		assert.True(t, d.MapChain.Value.IsEmpty(), name)
		assert.True(t, decimal.Zero.Equal(d.MapComposed.Value.OrElse(decimal.NewFromInt(-1))), name)
	}

	absentAmount := byName["balance with absent amount"]
	assert.ErrorIs(t, absentAmount.MapChain.Err, naive.ErrNilDereference)
	assert.ErrorIs(t, absentAmount.MapComposed.Err, naive.ErrNilDereference)
	assert.False(t, absentAmount.Diverges())
	assert.True(t, absentAmount.DeviatesFromPipeline())
	assert.Contains(t, absentAmount.MapChain.String(), "error: nil dereference")
}

func TestScenarioLabel(t *testing.T) {
	assert.Equal(t, "x (id 3)", Scenario{Name: "x", ID: optional.Some[model.AccountID](3)}.Label())
	assert.Equal(t, "x (no id)", Scenario{Name: "x", ID: optional.None[model.AccountID]()}.Label())
}
