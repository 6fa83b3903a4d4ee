package usecase

import (
	"context"

	"FundScope/internal/domain/models"
	drepo "FundScope/internal/domain/repository"
	"FundScope/pkg/logger"
	"FundScope/pkg/metrics"
)

// FetchOutcome is the explicit result of one strategy attempt: data, empty,
// or failure. Failures never propagate past the chain.
type FetchOutcome struct {
	Strategy     string
	Observations []models.Observation
	Err          error
}

// HasData reports whether the attempt produced observations.
func (o FetchOutcome) HasData() bool {
	return o.Err == nil && len(o.Observations) > 0
}

// SourceChain tries fetch strategies in priority order and returns the
// first non-empty result. Upstream providers are unreliable and change
// response shapes without notice; the chain's only visible outcomes are
// "got data" and "got nothing", so a bad provider day never fails a run.
type SourceChain struct {
	strategies   []drepo.FetchStrategy
	lookbackDays int
	metrics      drepo.Metrics
	logger       *logger.Logger
}

// NewSourceChain creates a chain over strategies in priority order.
func NewSourceChain(strategies []drepo.FetchStrategy, lookbackDays int, m drepo.Metrics, l *logger.Logger) *SourceChain {
	return &SourceChain{
		strategies:   strategies,
		lookbackDays: lookbackDays,
		metrics:      m,
		logger:       l,
	}
}

// Fetch returns the first non-empty strategy result for the fund,
// short-circuiting the remaining strategies. All-empty yields nil, which
// the caller treats as "proceed with stored history".
func (c *SourceChain) Fetch(ctx context.Context, fund models.Fund) []models.Observation {
	for _, strat := range c.strategies {
		out := c.attempt(ctx, strat, fund)
		if out.HasData() {
			return out.Observations
		}
	}
	c.logger.Warn("all sources empty", logger.String("fund", fund.Code))
	return nil
}

// attempt runs one strategy, downgrading its failure to an empty outcome.
func (c *SourceChain) attempt(ctx context.Context, strat drepo.FetchStrategy, fund models.Fund) FetchOutcome {
	obs, err := strat.Fetch(ctx, fund.SecID, c.lookbackDays)
	out := FetchOutcome{Strategy: strat.Name(), Observations: obs, Err: err}

	switch {
	case err != nil:
		c.metrics.RecordFetch(strat.Name(), metrics.OutcomeError)
		c.logger.Debug("fetch strategy failed",
			logger.String("fund", fund.Code),
			logger.String("strategy", strat.Name()),
			logger.Error(err),
		)
	case len(obs) == 0:
		c.metrics.RecordFetch(strat.Name(), metrics.OutcomeEmpty)
	default:
		c.metrics.RecordFetch(strat.Name(), metrics.OutcomeHit)
		c.logger.Debug("fetched observations",
			logger.String("fund", fund.Code),
			logger.String("strategy", strat.Name()),
			logger.Int("records", len(obs)),
		)
	}
	return out
}
