package service

import (
	"fmt"

	"github.com/hance08/optbank/internal/laws"
	"github.com/hance08/optbank/internal/optional"
	"github.com/hance08/optbank/internal/store"
	"go.uber.org/zap"
)

type LawService struct {
	repo   store.Repository
	logger *zap.Logger
}

func NewLawService(repo store.Repository, logger *zap.Logger) *LawService {
	return &LawService{repo: repo, logger: logger}
}

// Scenarios returns the canonical scenarios followed by one scenario per
// ledger id not already covered.
func (ls *LawService) Scenarios(ledger *store.Ledger) []laws.Scenario {
	scenarios := laws.CanonicalScenarios()

	covered := make(map[string]bool, len(scenarios))
	for _, sc := range scenarios {
		covered[sc.ID.String()] = true
	}

	for _, id := range ledger.IDs() {
		idOpt := optional.Some(id)
		if covered[idOpt.String()] {
			continue
		}
		scenarios = append(scenarios, laws.Scenario{
			Name: fmt.Sprintf("ledger entry (%s)", ledger.Status(id)),
			ID:   idOpt,
		})
	}
	return scenarios
}

func (ls *LawService) Verify() (laws.Report, error) {
	ledger, err := ls.repo.Snapshot()
	if err != nil {
		return laws.Report{}, fmt.Errorf("failed to load ledger: %w", err)
	}

	report := laws.Verify(ledger, ls.Scenarios(ledger))
	for _, c := range report.Failures() {
		ls.logger.Warn("law violated",
			zap.String("law", c.Law),
			zap.String("scenario", c.Scenario.Label()),
		)
	}
	return report, nil
}

func (ls *LawService) Contrast() ([]laws.Divergence, error) {
	ledger, err := ls.repo.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	divergences := laws.Contrast(ledger, ls.Scenarios(ledger))
	for _, d := range divergences {
		if d.Diverges() || d.DeviatesFromPipeline() {
			ls.logger.Debug("nullable variant diverges",
				zap.String("scenario", d.Scenario.Label()),
				zap.Stringer("pipeline", d.Pipeline),
				zap.Stringer("map_chain", d.MapChain),
				zap.Stringer("map_composed", d.MapComposed),
			)
		}
	}
	return divergences, nil
}
