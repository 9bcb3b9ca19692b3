package profile

import "strings"

// Experience is one entry of the candidate's work history.
type Experience struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// Profile is the candidate master profile consumed by the matching engine.
// Any field may be empty; consumers must degrade gracefully.
type Profile struct {
	TechnicalSkills []string     `json:"technical_skills"`
	SoftSkills      []string     `json:"soft_skills"`
	WorkExperience  []Experience `json:"work_experience"`
	EducationLevel  string       `json:"education_level"`
	EducationField  string       `json:"education_field"`
}

// Normalize ensures slices are never nil and trims free text.
func (p *Profile) Normalize() {
	if p == nil {
		return
	}

	p.TechnicalSkills = trimList(p.TechnicalSkills)
	p.SoftSkills = trimList(p.SoftSkills)
	p.EducationLevel = strings.TrimSpace(p.EducationLevel)
	p.EducationField = strings.TrimSpace(p.EducationField)

	exps := make([]Experience, 0, len(p.WorkExperience))
	for _, e := range p.WorkExperience {
		e.Title = strings.TrimSpace(e.Title)
		e.Description = strings.TrimSpace(e.Description)
		e.Duration = strings.TrimSpace(e.Duration)
		if e.Title == "" && e.Description == "" && e.Duration == "" {
			continue
		}
		exps = append(exps, e)
	}
	p.WorkExperience = exps
}

// Education joins the non-empty parts of the education descriptor.
func (p *Profile) Education() string {
	if p == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	if p.EducationLevel != "" {
		parts = append(parts, p.EducationLevel)
	}
	if p.EducationField != "" {
		parts = append(parts, p.EducationField)
	}
	return strings.Join(parts, " in ")
}

// ExperienceText flattens the work history into one searchable text blob.
func (p *Profile) ExperienceText() string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	for _, e := range p.WorkExperience {
		if e.Title != "" {
			sb.WriteString(e.Title)
			sb.WriteString(" ")
		}
		if e.Description != "" {
			sb.WriteString(e.Description)
			sb.WriteString(" ")
		}
	}
	return strings.TrimSpace(sb.String())
}

func trimList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, it := range in {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		out = append(out, it)
	}
	return out
}
