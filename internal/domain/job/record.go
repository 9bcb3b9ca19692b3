package job

import (
	"strings"
	"time"
)

// DeadlineNotFound is the sentinel emitted when no application deadline
// exists anywhere in the source posting. It is never silently replaced
// with an empty string.
const DeadlineNotFound = "not_found"

const canonicalDateLayout = "2006-01-02"

// Record is the canonical structured representation of a job posting.
// Created once per extraction; treated as immutable afterwards.
type Record struct {
	Title              string `json:"title"`
	CompanyName        string `json:"company_name"`
	Location           string `json:"location"`
	Description        string `json:"description"`
	CompanyDescription string `json:"company_description"`
	CompanyIndustry    string `json:"company_industry"`
	CompanySize        string `json:"company_size"`

	KeyRequirements  []string `json:"key_requirements"`
	PreferredSkills  []string `json:"preferred_skills"`
	NiceToHave       []string `json:"nice_to_have"`
	Responsibilities []string `json:"responsibilities"`
	Benefits         []string `json:"benefits"`

	JobLevel       string `json:"job_level"`
	EmploymentType string `json:"employment_type"`

	SalaryRange *string `json:"salary_range"`

	ApplicationDeadline      string `json:"application_deadline"`
	ApplicationDeadlineNotes string `json:"application_deadline_notes"`

	ApplicationEmailTo *string `json:"application_email_to"`
	ApplicationEmailCC *string `json:"application_email_cc"`
	ApplicationMethod  string  `json:"application_method"`
	ApplicationURL     string  `json:"application_url"`

	// Warnings carries non-fatal validation findings (e.g. cc without to).
	Warnings []string `json:"warnings,omitempty"`
}

// Only layouts whose day/month order is unambiguous. All-numeric forms like
// 03/04/2025 cannot be read without knowing the source locale and are kept
// verbatim in application_deadline_notes instead.
var dateLayouts = []string{
	canonicalDateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// Normalize enforces the record invariants in place:
// every list field is an empty slice rather than nil, free-text fields are
// trimmed, and application_deadline is either the sentinel or a canonical
// calendar date. An unparseable deadline is rewritten as the sentinel with
// the literal text pushed into application_deadline_notes.
func (r *Record) Normalize() {
	if r == nil {
		return
	}

	r.Title = strings.TrimSpace(r.Title)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.Location = strings.TrimSpace(r.Location)
	r.Description = strings.TrimSpace(r.Description)
	r.CompanyDescription = strings.TrimSpace(r.CompanyDescription)
	r.CompanyIndustry = strings.TrimSpace(r.CompanyIndustry)
	r.CompanySize = strings.TrimSpace(r.CompanySize)
	r.JobLevel = strings.TrimSpace(r.JobLevel)
	r.EmploymentType = strings.TrimSpace(r.EmploymentType)
	r.ApplicationMethod = strings.TrimSpace(r.ApplicationMethod)
	r.ApplicationURL = strings.TrimSpace(r.ApplicationURL)
	r.ApplicationDeadlineNotes = strings.TrimSpace(r.ApplicationDeadlineNotes)

	r.SalaryRange = normalizeOptional(r.SalaryRange)
	r.ApplicationEmailTo = normalizeOptional(r.ApplicationEmailTo)
	r.ApplicationEmailCC = normalizeOptional(r.ApplicationEmailCC)

	r.KeyRequirements = normalizeList(r.KeyRequirements)
	r.PreferredSkills = normalizeList(r.PreferredSkills)
	r.NiceToHave = normalizeList(r.NiceToHave)
	r.Responsibilities = normalizeList(r.Responsibilities)
	r.Benefits = normalizeList(r.Benefits)

	r.normalizeDeadline()
}

func (r *Record) normalizeDeadline() {
	raw := strings.TrimSpace(r.ApplicationDeadline)
	if raw == "" || strings.EqualFold(raw, DeadlineNotFound) {
		r.ApplicationDeadline = DeadlineNotFound
		return
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		r.ApplicationDeadline = t.Format(canonicalDateLayout)
		return
	}

	// Relative or ambiguous phrasing: keep the literal in the notes and
	// fall back to the sentinel so the field stays machine-readable.
	if r.ApplicationDeadlineNotes == "" {
		r.ApplicationDeadlineNotes = raw
	} else if !strings.Contains(r.ApplicationDeadlineNotes, raw) {
		r.ApplicationDeadlineNotes = r.ApplicationDeadlineNotes + "; " + raw
	}
	r.ApplicationDeadline = DeadlineNotFound
}

// Validate returns non-fatal warnings about the record. A cc address
// without a to address is suspicious but does not fail the extraction.
func (r *Record) Validate() []string {
	if r == nil {
		return nil
	}

	warnings := make([]string, 0)

	if r.ApplicationEmailCC != nil && r.ApplicationEmailTo == nil {
		warnings = append(warnings, "application_email_cc present without application_email_to")
	}
	if r.Title == "" {
		warnings = append(warnings, "title is empty")
	}
	if len(r.KeyRequirements) == 0 && len(r.PreferredSkills) == 0 {
		warnings = append(warnings, "no requirements extracted; matching will return a zero score")
	}

	return warnings
}

// HasDeadline reports whether a concrete calendar deadline was found.
func (r *Record) HasDeadline() bool {
	if r == nil {
		return false
	}
	return r.ApplicationDeadline != "" && r.ApplicationDeadline != DeadlineNotFound
}

func normalizeList(in []string) []string {
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

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
