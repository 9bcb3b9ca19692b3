package dto

type PersonalizationResponse struct {
	ProfessionalSummary string   `json:"professional_summary"`
	BulletSuggestions   []string `json:"bullet_suggestions"`
	SkillsToHighlight   []string `json:"skills_to_highlight"`
}
