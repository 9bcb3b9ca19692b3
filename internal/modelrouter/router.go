package modelrouter

import "strings"

type PlanTier string

const (
	TierFree    PlanTier = "free"
	TierPro     PlanTier = "pro"
	TierPremium PlanTier = "premium"
)

type TaskType string

const (
	TaskExtraction  TaskType = "extraction"
	TaskRelevance   TaskType = "relevance"
	TaskCVDraft     TaskType = "cv_draft"
	TaskCoverLetter TaskType = "cover_letter"
)

const (
	defaultFastModel    = "gemini-2.5-flash"
	defaultQualityModel = "gemini-2.5-pro"
)

// Router maps (plan tier, task type) to a model id. Pure data, no I/O:
// the same pair always resolves to the same model. Extraction and the
// relevance pre-check always use the fast model because both are
// structure-parsing tasks where latency dominates; drafting tasks get the
// quality model on paid-plan tiers only.
type Router struct {
	table map[PlanTier]map[TaskType]string
	fast  string
}

func New(fastModel, qualityModel string) *Router {
	fast := strings.TrimSpace(fastModel)
	if fast == "" {
		fast = defaultFastModel
	}
	quality := strings.TrimSpace(qualityModel)
	if quality == "" {
		quality = defaultQualityModel
	}

	table := map[PlanTier]map[TaskType]string{
		TierFree: {
			TaskExtraction:  fast,
			TaskRelevance:   fast,
			TaskCVDraft:     fast,
			TaskCoverLetter: fast,
		},
		TierPro: {
			TaskExtraction:  fast,
			TaskRelevance:   fast,
			TaskCVDraft:     quality,
			TaskCoverLetter: fast,
		},
		TierPremium: {
			TaskExtraction:  fast,
			TaskRelevance:   fast,
			TaskCVDraft:     quality,
			TaskCoverLetter: quality,
		},
	}

	return &Router{table: table, fast: fast}
}

// SelectModel resolves the model id for a plan/task pair. An unknown plan
// tier degrades to the free mapping and an unknown task to the fast model,
// so ambiguous billing state never blocks generation.
func (r *Router) SelectModel(tier PlanTier, task TaskType) string {
	if r == nil {
		return defaultFastModel
	}

	row, ok := r.table[normalizeTier(tier)]
	if !ok {
		row = r.table[TierFree]
	}
	model, ok := row[task]
	if !ok || strings.TrimSpace(model) == "" {
		return r.fast
	}
	return model
}

func normalizeTier(tier PlanTier) PlanTier {
	return PlanTier(strings.ToLower(strings.TrimSpace(string(tier))))
}
