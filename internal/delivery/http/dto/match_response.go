package dto

import "jobfit/internal/domain/matching"

type GapEntryResponse struct {
	Requirement string `json:"requirement"`
	Rationale   string `json:"rationale,omitempty"`
}

type GapAnalysisResponse struct {
	DirectMatches       []GapEntryResponse `json:"direct_matches"`
	TransferableSkills  []GapEntryResponse `json:"transferable_skills"`
	MissingRequirements []GapEntryResponse `json:"missing_requirements"`
}

type ComponentScoresResponse struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
}

type MatchResultResponse struct {
	OverallScore    int                     `json:"overall_score"`
	ComponentScores ComponentScoresResponse `json:"component_scores"`
	GapAnalysis     GapAnalysisResponse     `json:"gap_analysis"`
}

func NewMatchResultResponse(res matching.MatchResult) MatchResultResponse {
	return MatchResultResponse{
		OverallScore: res.OverallScore,
		ComponentScores: ComponentScoresResponse{
			Skills:     res.ComponentScores.Skills,
			Experience: res.ComponentScores.Experience,
			Education:  res.ComponentScores.Education,
		},
		GapAnalysis: GapAnalysisResponse{
			DirectMatches:       newGapEntries(res.GapAnalysis.DirectMatches),
			TransferableSkills:  newGapEntries(res.GapAnalysis.TransferableSkills),
			MissingRequirements: newGapEntries(res.GapAnalysis.MissingRequirements),
		},
	}
}

func newGapEntries(entries []matching.GapEntry) []GapEntryResponse {
	out := make([]GapEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, GapEntryResponse{Requirement: e.Requirement, Rationale: e.Rationale})
	}
	return out
}
