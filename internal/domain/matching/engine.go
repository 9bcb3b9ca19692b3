package matching

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/profile"
)

// Overlap thresholds for the three-way gap classification. A requirement
// whose token coverage against the best candidate source reaches the direct
// threshold is a direct match; between the two thresholds it is transferable;
// below the transferable threshold it is missing.
const (
	directThreshold       = 0.75
	transferableThreshold = 0.30
)

// Component weights for the overall score. Skills dominate shortlisting in
// this market segment; experience and education follow.
const (
	skillsWeight     = 0.5
	experienceWeight = 0.3
	educationWeight  = 0.2
)

// key_requirements count double against preferred_skills in the skills score.
const (
	keyRequirementWeight = 2.0
	preferredSkillWeight = 1.0
)

type GapEntry struct {
	Requirement string `json:"requirement"`
	Rationale   string `json:"rationale,omitempty"`
}

type GapAnalysis struct {
	DirectMatches       []GapEntry `json:"direct_matches"`
	TransferableSkills  []GapEntry `json:"transferable_skills"`
	MissingRequirements []GapEntry `json:"missing_requirements"`
}

type ComponentScores struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
}

type MatchResult struct {
	OverallScore    int             `json:"overall_score"`
	ComponentScores ComponentScores `json:"component_scores"`
	GapAnalysis     GapAnalysis     `json:"gap_analysis"`
}

type candidateSource struct {
	name   string
	tokens map[string]bool
}

type requirement struct {
	text  string
	key   bool
	terms map[string]bool
}

// Score computes the deterministic match between a candidate profile and a
// structured job record. Pure computation: no I/O, no randomness; identical
// inputs always yield identical results. A record with no requirement lists
// is a valid degenerate input and scores zero without error.
func Score(p profile.Profile, rec job.Record) MatchResult {
	p.Normalize()
	rec.Normalize()

	reqs := collectRequirements(rec)
	if len(reqs) == 0 {
		return MatchResult{
			OverallScore:    0,
			ComponentScores: ComponentScores{},
			GapAnalysis: GapAnalysis{
				DirectMatches:       make([]GapEntry, 0),
				TransferableSkills:  make([]GapEntry, 0),
				MissingRequirements: make([]GapEntry, 0),
			},
		}
	}

	sources := collectSources(p)
	exact := exactSkillSet(p)

	gaps := GapAnalysis{
		DirectMatches:       make([]GapEntry, 0),
		TransferableSkills:  make([]GapEntry, 0),
		MissingRequirements: make([]GapEntry, 0),
	}

	var matchedWeight, totalWeight float64

	for _, r := range reqs {
		weight := preferredSkillWeight
		if r.key {
			weight = keyRequirementWeight
		}
		totalWeight += weight

		if exact[normalizeText(r.text)] {
			matchedWeight += weight
			gaps.DirectMatches = append(gaps.DirectMatches, GapEntry{Requirement: r.text})
			continue
		}

		best, bestSource := bestCoverage(r.terms, sources)

		switch {
		case best >= directThreshold:
			matchedWeight += weight
			gaps.DirectMatches = append(gaps.DirectMatches, GapEntry{Requirement: r.text})
		case best >= transferableThreshold:
			gaps.TransferableSkills = append(gaps.TransferableSkills, GapEntry{
				Requirement: r.text,
				Rationale:   fmt.Sprintf("partially overlaps candidate %s", bestSource),
			})
		default:
			gaps.MissingRequirements = append(gaps.MissingRequirements, GapEntry{
				Requirement: r.text,
				Rationale:   "no overlapping skill or experience found in profile",
			})
		}
	}

	skills := 0
	if totalWeight > 0 {
		skills = int(math.Round(100 * matchedWeight / totalWeight))
	}
	experience := experienceScore(p, rec.JobLevel)
	education := educationScore(p, rec)

	overall := int(math.Round(
		skillsWeight*float64(skills) +
			experienceWeight*float64(experience) +
			educationWeight*float64(education),
	))

	return MatchResult{
		OverallScore: clamp(overall, 0, 100),
		ComponentScores: ComponentScores{
			Skills:     clamp(skills, 0, 100),
			Experience: clamp(experience, 0, 100),
			Education:  clamp(education, 0, 100),
		},
		GapAnalysis: gaps,
	}
}

func collectRequirements(rec job.Record) []requirement {
	seen := make(map[string]bool)
	out := make([]requirement, 0, len(rec.KeyRequirements)+len(rec.PreferredSkills))

	add := func(text string, key bool) {
		norm := normalizeText(text)
		if norm == "" || seen[norm] {
			return
		}
		seen[norm] = true
		// A requirement whose every token is filtered out (single-letter
		// skills, stop-word phrases) still counts: the normalized string
		// itself becomes its term so it lands in a bucket and the score
		// denominator.
		terms := tokenize(text)
		if len(terms) == 0 {
			terms = map[string]bool{norm: true}
		}
		out = append(out, requirement{text: text, key: key, terms: terms})
	}

	for _, r := range rec.KeyRequirements {
		add(r, true)
	}
	for _, r := range rec.PreferredSkills {
		add(r, false)
	}
	return out
}

func collectSources(p profile.Profile) []candidateSource {
	sources := make([]candidateSource, 0, len(p.TechnicalSkills)+len(p.SoftSkills)+1)
	for _, s := range p.TechnicalSkills {
		if src, ok := skillSource(s); ok {
			sources = append(sources, src)
		}
	}
	for _, s := range p.SoftSkills {
		if src, ok := skillSource(s); ok {
			sources = append(sources, src)
		}
	}
	if expText := p.ExperienceText(); expText != "" {
		if terms := tokenize(expText); len(terms) > 0 {
			sources = append(sources, candidateSource{name: "work experience", tokens: terms})
		}
	}
	return sources
}

// skillSource tokenizes one candidate skill, falling back to the normalized
// string when tokenization filters everything out, so skills like "C" or "R"
// stay matchable.
func skillSource(s string) (candidateSource, bool) {
	terms := tokenize(s)
	if len(terms) == 0 {
		norm := normalizeText(s)
		if norm == "" {
			return candidateSource{}, false
		}
		terms = map[string]bool{norm: true}
	}
	return candidateSource{name: fmt.Sprintf("skill %q", s), tokens: terms}, true
}

// exactSkillSet indexes the candidate's skills by normalized text. A
// requirement that names a skill verbatim is always a direct match,
// independent of what tokenization keeps.
func exactSkillSet(p profile.Profile) map[string]bool {
	out := make(map[string]bool, len(p.TechnicalSkills)+len(p.SoftSkills))
	for _, s := range p.TechnicalSkills {
		if norm := normalizeText(s); norm != "" {
			out[norm] = true
		}
	}
	for _, s := range p.SoftSkills {
		if norm := normalizeText(s); norm != "" {
			out[norm] = true
		}
	}
	return out
}

// bestCoverage scans sources in stable order; the first source wins ties so
// the result is deterministic for identical inputs.
func bestCoverage(terms map[string]bool, sources []candidateSource) (float64, string) {
	best := 0.0
	bestSource := ""
	for _, src := range sources {
		c := coverage(terms, src.tokens)
		if c > best {
			best = c
			bestSource = src.name
		}
	}
	return best, bestSource
}

var (
	yearsRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*(?:year|yr)`)
	monthsRe = regexp.MustCompile(`(\d+)\s*month`)
)

// expectedYearsByLevel maps the posting's job level to the tenure that earns
// a full experience score.
func expectedYearsByLevel(level string) float64 {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "junior":
		return 1
	case "mid":
		return 3
	case "senior":
		return 5
	case "lead":
		return 7
	case "executive":
		return 10
	default:
		return 2
	}
}

func experienceScore(p profile.Profile, jobLevel string) int {
	if len(p.WorkExperience) == 0 {
		return 0
	}

	total := 0.0
	parsedAny := false
	for _, e := range p.WorkExperience {
		y, ok := parseDurationYears(e.Duration)
		if ok {
			total += y
			parsedAny = true
		}
	}

	if !parsedAny {
		// History exists but durations are unparseable: presence credit only.
		return 40
	}

	expected := expectedYearsByLevel(jobLevel)
	ratio := total / expected
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(100 * ratio))
}

func parseDurationYears(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	if m := yearsRe.FindStringSubmatch(s); len(m) > 1 {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return v, true
		}
	}
	if m := monthsRe.FindStringSubmatch(s); len(m) > 1 {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return v / 12, true
		}
	}
	return 0, false
}

// educationLevels orders degree keywords from lowest to highest so scanning
// posting text yields comparable ranks.
var educationLevels = []struct {
	rank     int
	keywords []string
}{
	{1, []string{"high school", "secondary school"}},
	{2, []string{"diploma", "associate"}},
	{3, []string{"bachelor", "bsc", "b.sc", "undergraduate degree", "s1"}},
	{4, []string{"master", "msc", "m.sc", "mba", "s2"}},
	{5, []string{"phd", "ph.d", "doctorate", "doctoral"}},
}

func educationRank(text string) int {
	text = strings.ToLower(text)
	best := 0
	for _, lvl := range educationLevels {
		for _, kw := range lvl.keywords {
			if strings.Contains(text, kw) && lvl.rank > best {
				best = lvl.rank
			}
		}
	}
	return best
}

// statedMinimumEducation scans requirement lists first, then the description,
// returning the lowest degree rank mentioned (the minimum the posting asks for).
func statedMinimumEducation(rec job.Record) int {
	min := 0
	scan := func(text string) {
		text = strings.ToLower(text)
		for _, lvl := range educationLevels {
			for _, kw := range lvl.keywords {
				if strings.Contains(text, kw) {
					if min == 0 || lvl.rank < min {
						min = lvl.rank
					}
					return
				}
			}
		}
	}

	for _, r := range rec.KeyRequirements {
		scan(r)
	}
	for _, r := range rec.PreferredSkills {
		scan(r)
	}
	if min > 0 {
		return min
	}

	scan(rec.Description)
	return min
}

func educationScore(p profile.Profile, rec job.Record) int {
	candidate := educationRank(p.Education())
	required := statedMinimumEducation(rec)

	if required == 0 {
		// Nothing stated: education neither qualifies nor disqualifies.
		if candidate > 0 {
			return 75
		}
		return 50
	}
	if candidate == 0 {
		return 0
	}
	if candidate >= required {
		return 100
	}
	return int(math.Round(100 * float64(candidate) / float64(required)))
}

func clamp(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
