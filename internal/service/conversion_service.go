package service

import (
	"fmt"

	"github.com/hance08/optbank/internal/config"
	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/optional"
	"github.com/hance08/optbank/internal/pipeline"
	"github.com/hance08/optbank/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Conversion is the pipeline result for one id together with the value shown
// to the user.
type Conversion struct {
	ID       optional.Optional[model.AccountID]
	Raw      optional.Optional[decimal.Decimal]
	Resolved optional.Optional[decimal.Decimal]
	// UsedFallback is set when Raw was empty and the default was applied.
	UsedFallback bool
}

type ConversionService struct {
	repo   store.Repository
	config *config.Config
	logger *zap.Logger
}

func NewConversionService(repo store.Repository, cfg *config.Config, logger *zap.Logger) *ConversionService {
	if cfg == nil {
		cfg = config.NewDefault()
	}
	return &ConversionService{repo: repo, config: cfg, logger: logger}
}

func (cs *ConversionService) Convert(idOpt optional.Optional[model.AccountID]) (Conversion, error) {
	ledger, err := cs.snapshot()
	if err != nil {
		return Conversion{}, err
	}
	return cs.convert(ledger, idOpt), nil
}

// ConvertAll converts every id against a single snapshot.
func (cs *ConversionService) ConvertAll(ids []optional.Optional[model.AccountID]) ([]Conversion, error) {
	ledger, err := cs.snapshot()
	if err != nil {
		return nil, err
	}

	out := make([]Conversion, 0, len(ids))
	for _, idOpt := range ids {
		out = append(out, cs.convert(ledger, idOpt))
	}
	return out, nil
}

// Quote runs only the conversion stage on an ad-hoc balance.
func (cs *ConversionService) Quote(balance model.Balance) Conversion {
	raw := pipeline.ToReferenceAmount(balance)
	return cs.resolve(optional.None[model.AccountID](), raw)
}

func (cs *ConversionService) Explain(idOpt optional.Optional[model.AccountID]) (pipeline.Trace, error) {
	ledger, err := cs.snapshot()
	if err != nil {
		return pipeline.Trace{}, err
	}
	return pipeline.Explain(ledger, idOpt), nil
}

func (cs *ConversionService) FallbackEnabled() bool {
	return cs.config.Defaults.ApplyFallback
}

func (cs *ConversionService) convert(ledger *store.Ledger, idOpt optional.Optional[model.AccountID]) Conversion {
	raw := pipeline.Run(ledger, idOpt)

	cs.logger.Debug("pipeline run",
		zap.Stringer("id", idOpt),
		zap.Stringer("result", raw),
	)

	return cs.resolve(idOpt, raw)
}

// resolve is the output boundary; the default is applied here and nowhere
// inside the pipeline.
func (cs *ConversionService) resolve(idOpt optional.Optional[model.AccountID], raw optional.Optional[decimal.Decimal]) Conversion {
	conv := Conversion{ID: idOpt, Raw: raw, Resolved: raw}

	if raw.IsEmpty() && cs.config.Defaults.ApplyFallback {
		conv.Resolved = optional.Some(pipeline.ResolveAmount(raw))
		conv.UsedFallback = true
	}
	return conv
}

func (cs *ConversionService) snapshot() (*store.Ledger, error) {
	ledger, err := cs.repo.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	cs.logger.Debug("ledger loaded", zap.Int("accounts", ledger.Len()), zap.String("source", cs.repo.Source()))
	return ledger, nil
}
