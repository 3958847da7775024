package suite

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/selebrow/journey/internal/scenario"
	"github.com/selebrow/journey/pkg/config"
	"github.com/selebrow/journey/pkg/models"
)

// Suite runs the scenario once per platform
type Suite struct {
	r        scenario.Runner
	descs    []models.CapabilityDescriptor
	creds    config.Credentials
	parallel int
	l        *zap.SugaredLogger
}

// NewSuite parallel <= 0 runs every platform at once
func NewSuite(
	r scenario.Runner,
	descs []models.CapabilityDescriptor,
	creds config.Credentials,
	parallel int,
	l *zap.Logger,
) *Suite {
	if parallel <= 0 || parallel > len(descs) {
		parallel = len(descs)
	}
	return &Suite{
		r:        r,
		descs:    descs,
		creds:    creds,
		parallel: parallel,
		l:        l.Sugar(),
	}
}

// Run returns one result per platform in catalog order
func (s *Suite) Run(ctx context.Context) []models.ScenarioResult {
	results := make([]models.ScenarioResult, len(s.descs))
	if len(s.descs) == 0 {
		return results
	}
	s.l.Infow("running scenarios", zap.Int("platforms", len(s.descs)), zap.Int("parallel", s.parallel))

	var g errgroup.Group
	g.SetLimit(s.parallel)
	for i, desc := range s.descs {
		i, desc := i, desc
		g.Go(func() error {
			results[i] = s.r.Run(ctx, desc, s.creds)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func AllPassed(results []models.ScenarioResult) bool {
	for _, r := range results {
		if !r.Passed() {
			return false
		}
	}
	return len(results) > 0
}
