package usecase

import (
	"context"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/matching"
	"jobfit/internal/domain/profile"
	"jobfit/internal/pkg/workerpool"
)

const batchWorkers = 4

type MatchingUsecase interface {
	Match(ctx context.Context, p profile.Profile, rec job.Record) (matching.MatchResult, error)
	MatchBatch(ctx context.Context, p profile.Profile, recs []job.Record) ([]matching.MatchResult, error)
}

type Matching struct{}

func NewMatchingUsecase() *Matching {
	return &Matching{}
}

// Match scores one profile against one record. The engine is pure
// computation; the context is accepted for interface symmetry and
// cancellation of batch runs.
func (u *Matching) Match(ctx context.Context, p profile.Profile, rec job.Record) (matching.MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return matching.MatchResult{}, err
	}
	return matching.Score(p, rec), nil
}

// MatchBatch scores one profile against several records concurrently.
// Results come back in input order; each task owns its own slot so no
// locking is needed around the shared slice.
func (u *Matching) MatchBatch(ctx context.Context, p profile.Profile, recs []job.Record) ([]matching.MatchResult, error) {
	if len(recs) == 0 {
		return []matching.MatchResult{}, nil
	}

	results := make([]matching.MatchResult, len(recs))

	pool := workerpool.New(batchWorkers, len(recs))
	out := pool.Run(ctx)

	for i := range recs {
		i := i
		rec := recs[i]
		pool.Submit(func(ctx context.Context) error {
			results[i] = matching.Score(p, rec)
			return nil
		})
	}
	pool.Close()

	for res := range out {
		if res.Err != nil {
			return nil, res.Err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

var _ MatchingUsecase = (*Matching)(nil)
