package pipeline

import (
	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/optional"
	"github.com/hance08/optbank/internal/store"
	"github.com/shopspring/decimal"
)

type StageOutcome int

const (
	StageSkipped StageOutcome = iota
	StageAbsent
	StagePresent
)

func (o StageOutcome) String() string {
	switch o {
	case StagePresent:
		return "present"
	case StageAbsent:
		return "absent"
	default:
		return "-"
	}
}

// Trace records what each stage produced for one input. A stage that was
// never reached is StageSkipped.
type Trace struct {
	ID      optional.Optional[model.AccountID]
	Entry   store.EntryStatus
	Lookup  StageOutcome
	Extract StageOutcome
	Convert StageOutcome
	Result  optional.Optional[decimal.Decimal]
}

// Explain runs the pipeline stage by stage and records each outcome.
// Result always equals Run(l, idOpt).
func Explain(l *store.Ledger, idOpt optional.Optional[model.AccountID]) Trace {
	tr := Trace{ID: idOpt, Entry: store.EntryMissing}

	account := optional.FlatMap(idOpt, func(id model.AccountID) optional.Optional[model.Account] {
		tr.Entry = l.Status(id)
		return Lookup(l)(id)
	})
	tr.Lookup = outcome(idOpt.IsPresent(), account.IsPresent())

	balance := optional.FlatMap(account, ExtractBalance)
	tr.Extract = outcome(account.IsPresent(), balance.IsPresent())

	tr.Result = optional.FlatMap(balance, ToReferenceAmount)
	tr.Convert = outcome(balance.IsPresent(), tr.Result.IsPresent())

	return tr
}

func outcome(reached, present bool) StageOutcome {
	switch {
	case !reached:
		return StageSkipped
	case present:
		return StagePresent
	default:
		return StageAbsent
	}
}
