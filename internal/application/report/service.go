package report

import (
	"context"

	"github.com/onu-facilities/partstrack/pkg/logger"
)

// Service fronts the aggregator with the result cache. The cache is
// constructed explicitly in main and injected here; repeated requests for the
// same (month, filter) within the TTL skip recomputation. Errors are never
// cached.
type Service struct {
	agg   *Aggregator
	cache *ResultCache
	log   *logger.Logger
}

// NewService builds the report service. cache may be nil to disable caching.
func NewService(agg *Aggregator, cache *ResultCache, log *logger.Logger) *Service {
	return &Service{agg: agg, cache: cache, log: log}
}

// Monthly returns the report for month ("MM/YYYY") and filter, from cache
// when fresh.
func (s *Service) Monthly(ctx context.Context, month string, f Filter) (*Result, error) {
	if s.cache != nil {
		if res, ok := s.cache.Get(month, f); ok {
			s.log.Debug().Str("month", month).Str("type", string(f)).Msg("report cache hit")
			return res, nil
		}
	}
	res, err := s.agg.Aggregate(ctx, month, f)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(month, f, res)
	}
	s.log.Info().
		Str("month", month).
		Str("type", string(f)).
		Int("records", len(res.Records)).
		Str("total", res.TotalCost.StringFixed(2)).
		Msg("monthly report computed")
	return res, nil
}
