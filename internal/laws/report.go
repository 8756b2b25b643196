package laws

import (
	"fmt"

	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/optional"
	"github.com/hance08/optbank/internal/pipeline"
	"github.com/hance08/optbank/internal/pipeline/naive"
	"github.com/hance08/optbank/internal/store"
	"github.com/shopspring/decimal"
)

const (
	LawLeftIdentity  = "left identity"
	LawAssociativity = "associativity"
	LawIdempotence   = "ofNullable idempotence"
)

type Scenario struct {
	Name string
	ID   optional.Optional[model.AccountID]
}

func (s Scenario) Label() string {
	if id, err := s.ID.Get(); err == nil {
		return fmt.Sprintf("%s (id %d)", s.Name, id)
	}
	return fmt.Sprintf("%s (no id)", s.Name)
}

// CanonicalScenarios matches the fixture ledger in package store.
func CanonicalScenarios() []Scenario {
	return []Scenario{
		{Name: "stored with balance", ID: optional.Some[model.AccountID](1)},
		{Name: "absent id", ID: optional.None[model.AccountID]()},
		{Name: "id not in store", ID: optional.Some[model.AccountID](3)},
		{Name: "tombstoned record", ID: optional.Some[model.AccountID](4)},
		{Name: "record with no balance", ID: optional.Some[model.AccountID](5)},
		{Name: "balance with absent amount", ID: optional.Some[model.AccountID](6)},
	}
}

type Check struct {
	Scenario Scenario
	Law      string
	Holds    bool
}

type Report struct {
	Checks []Check
}

func (r Report) Failures() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.Holds {
			failed = append(failed, c)
		}
	}
	return failed
}

func (r Report) OK() bool {
	return len(r.Failures()) == 0
}

// Verify checks the Optional pipeline against every law for each scenario.
func Verify(l *store.Ledger, scenarios []Scenario) Report {
	composed := pipeline.Composed(l)
	toBalance := optional.Compose(pipeline.Lookup(l), pipeline.ExtractBalance)

	var report Report
	for _, sc := range scenarios {
		leftIdentity := optional.FlatMap(sc.ID, func(id model.AccountID) optional.Optional[bool] {
			return optional.Some(LeftIdentity(id, composed, decimal.Decimal.Equal))
		}).OrElse(true)

		assoc := Associativity(sc.ID, toBalance, pipeline.ToReferenceAmount, decimal.Decimal.Equal) &&
			pipeline.AmountEqual(pipeline.Chained(l, sc.ID), pipeline.Run(l, sc.ID))

		report.Checks = append(report.Checks,
			Check{Scenario: sc, Law: LawLeftIdentity, Holds: leftIdentity},
			Check{Scenario: sc, Law: LawAssociativity, Holds: assoc},
			Check{Scenario: sc, Law: LawIdempotence, Holds: Idempotence(sc.ID, composed, decimal.Decimal.Equal)},
		)
	}
	return report
}

// Outcome is the result of one variant, or the error it failed with.
type Outcome struct {
	Value optional.Optional[decimal.Decimal]
	Err   error
}

func (o Outcome) String() string {
	if o.Err != nil {
		return "error: " + o.Err.Error()
	}
	return o.Value.String()
}

func (o Outcome) equal(other Outcome) bool {
	if o.Err != nil || other.Err != nil {
		return o.Err != nil && other.Err != nil
	}
	return pipeline.AmountEqual(o.Value, other.Value)
}

// Divergence lines up the Optional pipeline with the nullable variants for
// one scenario.
type Divergence struct {
	Scenario    Scenario
	Pipeline    Outcome
	MapChain    Outcome
	MapComposed Outcome
}

// Diverges reports whether the nullable map-chain and its pre-composed form
// disagree, which is the associativity failure.
func (d Divergence) Diverges() bool {
	return !d.MapChain.equal(d.MapComposed)
}

// DeviatesFromPipeline reports whether the pre-composed nullable form
// disagrees with the Optional pipeline.
func (d Divergence) DeviatesFromPipeline() bool {
	return !d.MapComposed.equal(d.Pipeline)
}

func Contrast(l *store.Ledger, scenarios []Scenario) []Divergence {
	out := make([]Divergence, 0, len(scenarios))
	for _, sc := range scenarios {
		out = append(out, Divergence{
			Scenario:    sc,
			Pipeline:    Outcome{Value: pipeline.Run(l, sc.ID)},
			MapChain:    capture(func() optional.Optional[decimal.Decimal] { return naive.MapChain(l, sc.ID) }),
			MapComposed: capture(func() optional.Optional[decimal.Decimal] { return naive.MapComposed(l, sc.ID) }),
		})
	}
	return out
}

func capture(fn func() optional.Optional[decimal.Decimal]) Outcome {
	v, err := naive.Safely(fn)
	return Outcome{Value: v, Err: err}
}
