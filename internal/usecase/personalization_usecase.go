package usecase

import (
	"context"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/matching"
	"jobfit/internal/domain/profile"
	"jobfit/internal/modelrouter"
	"jobfit/internal/personalizer"
)

type sectionDrafter interface {
	Draft(ctx context.Context, prof profile.Profile, rec job.Record, match matching.MatchResult, modelID string) (*personalizer.Sections, error)
}

type PersonalizationUsecase interface {
	Personalize(ctx context.Context, tier modelrouter.PlanTier, prof profile.Profile, rec job.Record, match matching.MatchResult) (*personalizer.Sections, error)
}

type Personalization struct {
	drafter sectionDrafter
	router  *modelrouter.Router
}

func NewPersonalizationUsecase(drafter sectionDrafter, router *modelrouter.Router) *Personalization {
	return &Personalization{drafter: drafter, router: router}
}

// Personalize drafts CV sections with the model tier the plan allows:
// quality model for paid plans, fast model otherwise.
func (u *Personalization) Personalize(
	ctx context.Context,
	tier modelrouter.PlanTier,
	prof profile.Profile,
	rec job.Record,
	match matching.MatchResult,
) (*personalizer.Sections, error) {
	if u == nil || u.drafter == nil {
		return nil, ErrInternal
	}
	modelID := u.router.SelectModel(tier, modelrouter.TaskCVDraft)
	return u.drafter.Draft(ctx, prof, rec, match, modelID)
}

var _ PersonalizationUsecase = (*Personalization)(nil)
