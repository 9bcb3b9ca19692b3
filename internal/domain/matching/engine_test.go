package matching

import (
	"reflect"
	"testing"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/profile"
)

func TestScore_NoRequirements(t *testing.T) {
	p := profile.Profile{TechnicalSkills: []string{"Go", "PostgreSQL"}}
	res := Score(p, job.Record{Title: "Backend Engineer"})

	if res.OverallScore != 0 {
		t.Fatalf("expected overall 0, got %d", res.OverallScore)
	}
	if res.ComponentScores != (ComponentScores{}) {
		t.Fatalf("expected zero components, got %+v", res.ComponentScores)
	}
	for name, bucket := range map[string][]GapEntry{
		"direct_matches":       res.GapAnalysis.DirectMatches,
		"transferable_skills":  res.GapAnalysis.TransferableSkills,
		"missing_requirements": res.GapAnalysis.MissingRequirements,
	} {
		if bucket == nil {
			t.Fatalf("expected %s to be empty slice, got nil", name)
		}
		if len(bucket) != 0 {
			t.Fatalf("expected %s to be empty, got %v", name, bucket)
		}
	}
}

func TestScore_GapBuckets(t *testing.T) {
	p := profile.Profile{TechnicalSkills: []string{"Python", "PostgreSQL"}}
	rec := job.Record{KeyRequirements: []string{
		"Python",
		"PostgreSQL database administration",
		"Kubernetes",
	}}

	res := Score(p, rec)

	if len(res.GapAnalysis.DirectMatches) != 1 || res.GapAnalysis.DirectMatches[0].Requirement != "Python" {
		t.Fatalf("unexpected direct matches: %v", res.GapAnalysis.DirectMatches)
	}
	if len(res.GapAnalysis.TransferableSkills) != 1 || res.GapAnalysis.TransferableSkills[0].Requirement != "PostgreSQL database administration" {
		t.Fatalf("unexpected transferable: %v", res.GapAnalysis.TransferableSkills)
	}
	if res.GapAnalysis.TransferableSkills[0].Rationale == "" {
		t.Fatalf("expected rationale on transferable entry")
	}
	if len(res.GapAnalysis.MissingRequirements) != 1 || res.GapAnalysis.MissingRequirements[0].Requirement != "Kubernetes" {
		t.Fatalf("unexpected missing: %v", res.GapAnalysis.MissingRequirements)
	}
}

func TestScore_SkillsScoreWeighted(t *testing.T) {
	rec := job.Record{
		KeyRequirements: []string{"Go"},
		PreferredSkills: []string{"Rust"},
	}

	// A matched key requirement counts double a matched preferred skill.
	res := Score(profile.Profile{TechnicalSkills: []string{"Go"}}, rec)
	if res.ComponentScores.Skills != 67 {
		t.Fatalf("expected skills 67 for key match, got %d", res.ComponentScores.Skills)
	}

	res = Score(profile.Profile{TechnicalSkills: []string{"Rust"}}, rec)
	if res.ComponentScores.Skills != 33 {
		t.Fatalf("expected skills 33 for preferred match, got %d", res.ComponentScores.Skills)
	}
}

func TestScore_PartialKeyCoverage(t *testing.T) {
	p := profile.Profile{TechnicalSkills: []string{"Python", "SQL"}}
	rec := job.Record{KeyRequirements: []string{"Python", "SQL", "Leadership"}}

	res := Score(p, rec)

	if res.ComponentScores.Skills != 67 {
		t.Fatalf("expected skills 67, got %d", res.ComponentScores.Skills)
	}
	if len(res.GapAnalysis.DirectMatches) != 2 {
		t.Fatalf("expected 2 direct matches, got %v", res.GapAnalysis.DirectMatches)
	}
	if len(res.GapAnalysis.MissingRequirements) != 1 || res.GapAnalysis.MissingRequirements[0].Requirement != "Leadership" {
		t.Fatalf("unexpected missing: %v", res.GapAnalysis.MissingRequirements)
	}
}

func TestScore_SingleCharacterSkills(t *testing.T) {
	p := profile.Profile{TechnicalSkills: []string{"C", "SQL"}}

	res := Score(p, job.Record{KeyRequirements: []string{"C", "SQL"}})
	if len(res.GapAnalysis.DirectMatches) != 2 {
		t.Fatalf("expected both requirements direct, got %v", res.GapAnalysis.DirectMatches)
	}
	if res.ComponentScores.Skills != 100 {
		t.Fatalf("expected skills 100, got %d", res.ComponentScores.Skills)
	}

	res = Score(p, job.Record{KeyRequirements: []string{"C", "SQL", "R"}})
	if len(res.GapAnalysis.MissingRequirements) != 1 || res.GapAnalysis.MissingRequirements[0].Requirement != "R" {
		t.Fatalf("expected R missing, got %v", res.GapAnalysis.MissingRequirements)
	}
	if res.ComponentScores.Skills != 67 {
		t.Fatalf("expected skills 67 with R unmatched, got %d", res.ComponentScores.Skills)
	}
}

func TestScore_EveryRequirementLandsInABucket(t *testing.T) {
	p := profile.Profile{TechnicalSkills: []string{"Go"}}
	rec := job.Record{KeyRequirements: []string{"Go", "R", "Experience"}}

	res := Score(p, rec)

	total := len(res.GapAnalysis.DirectMatches) +
		len(res.GapAnalysis.TransferableSkills) +
		len(res.GapAnalysis.MissingRequirements)
	if total != 3 {
		t.Fatalf("expected every requirement bucketed, got %d of 3: %+v", total, res.GapAnalysis)
	}
}

func TestScore_StopWordOnlyRequirementCounted(t *testing.T) {
	p := profile.Profile{TechnicalSkills: []string{"Go"}}
	rec := job.Record{KeyRequirements: []string{"Go", "Experience"}}

	res := Score(p, rec)

	// The stop-word requirement stays in the denominator and in a bucket.
	if res.ComponentScores.Skills != 50 {
		t.Fatalf("expected skills 50, got %d", res.ComponentScores.Skills)
	}
	if len(res.GapAnalysis.MissingRequirements) != 1 || res.GapAnalysis.MissingRequirements[0].Requirement != "Experience" {
		t.Fatalf("expected stop-word requirement missing, got %v", res.GapAnalysis.MissingRequirements)
	}
}

func TestScore_VerbatimSkillAlwaysDirect(t *testing.T) {
	// Exact skill/requirement equality wins regardless of tokenization.
	p := profile.Profile{TechnicalSkills: []string{"R"}, SoftSkills: []string{"Attention to detail"}}
	rec := job.Record{
		KeyRequirements: []string{"R"},
		PreferredSkills: []string{"Attention to detail"},
	}

	res := Score(p, rec)
	if len(res.GapAnalysis.DirectMatches) != 2 {
		t.Fatalf("expected verbatim skills direct, got %v", res.GapAnalysis.DirectMatches)
	}
	if res.ComponentScores.Skills != 100 {
		t.Fatalf("expected skills 100, got %d", res.ComponentScores.Skills)
	}
}

func TestScore_Deterministic(t *testing.T) {
	p := profile.Profile{
		TechnicalSkills: []string{"Go", "PostgreSQL", "Docker", "Kubernetes"},
		SoftSkills:      []string{"Communication"},
		WorkExperience: []profile.Experience{
			{Title: "Backend Engineer", Description: "Built APIs in Go with PostgreSQL", Duration: "3 years"},
		},
		EducationLevel: "Bachelor",
		EducationField: "Computer Science",
	}
	rec := job.Record{
		Description:     "We need a senior engineer with a bachelor degree.",
		KeyRequirements: []string{"Go", "PostgreSQL", "AWS"},
		PreferredSkills: []string{"Docker", "Terraform"},
		JobLevel:        "senior",
	}

	first := Score(p, rec)
	for i := 0; i < 5; i++ {
		if got := Score(p, rec); !reflect.DeepEqual(first, got) {
			t.Fatalf("score not deterministic: run %d differs\nfirst: %+v\ngot:   %+v", i, first, got)
		}
	}
}

func TestScore_DuplicateRequirementsCollapse(t *testing.T) {
	p := profile.Profile{TechnicalSkills: []string{"Go"}}
	rec := job.Record{
		KeyRequirements: []string{"Go", "  go "},
		PreferredSkills: []string{"Go"},
	}

	res := Score(p, rec)

	if len(res.GapAnalysis.DirectMatches) != 1 {
		t.Fatalf("expected duplicates collapsed, got %v", res.GapAnalysis.DirectMatches)
	}
	if res.ComponentScores.Skills != 100 {
		t.Fatalf("expected skills 100, got %d", res.ComponentScores.Skills)
	}
}

func TestExperienceScore(t *testing.T) {
	if got := experienceScore(profile.Profile{}, "senior"); got != 0 {
		t.Fatalf("expected 0 without history, got %d", got)
	}

	p := profile.Profile{WorkExperience: []profile.Experience{{Duration: "3 years"}}}
	if got := experienceScore(p, "senior"); got != 60 {
		t.Fatalf("expected 60 for 3y vs senior, got %d", got)
	}

	p = profile.Profile{WorkExperience: []profile.Experience{{Duration: "18 months"}}}
	if got := experienceScore(p, "junior"); got != 100 {
		t.Fatalf("expected cap at 100, got %d", got)
	}

	p = profile.Profile{WorkExperience: []profile.Experience{{Duration: "a while"}}}
	if got := experienceScore(p, "mid"); got != 40 {
		t.Fatalf("expected presence credit 40, got %d", got)
	}
}

func TestParseDurationYears(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"3 years", 3, true},
		{"2.5 yrs", 2.5, true},
		{"5+ years", 5, true},
		{"6 months", 0.5, true},
		{"some time", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := parseDurationYears(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("parseDurationYears(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestEducationScore(t *testing.T) {
	withBachelor := profile.Profile{EducationLevel: "Bachelor", EducationField: "Informatics"}
	withMaster := profile.Profile{EducationLevel: "Master", EducationField: "CS"}
	none := profile.Profile{}

	noMention := job.Record{Description: "great team, remote friendly"}
	if got := educationScore(withBachelor, noMention); got != 75 {
		t.Fatalf("expected 75 when nothing stated, got %d", got)
	}
	if got := educationScore(none, noMention); got != 50 {
		t.Fatalf("expected 50 when nothing stated and no education, got %d", got)
	}

	asksBachelor := job.Record{KeyRequirements: []string{"Bachelor's degree in Computer Science"}}
	if got := educationScore(none, asksBachelor); got != 0 {
		t.Fatalf("expected 0 when minimum stated but no education, got %d", got)
	}
	if got := educationScore(withMaster, asksBachelor); got != 100 {
		t.Fatalf("expected 100 when above minimum, got %d", got)
	}

	asksMaster := job.Record{KeyRequirements: []string{"Master's degree required"}}
	if got := educationScore(withBachelor, asksMaster); got != 75 {
		t.Fatalf("expected 75 when below minimum, got %d", got)
	}
}

func TestStatedMinimumEducation_RequirementListsWinOverDescription(t *testing.T) {
	rec := job.Record{
		Description:     "PhD preferred for research track",
		KeyRequirements: []string{"Bachelor's degree"},
	}
	if got := statedMinimumEducation(rec); got != 3 {
		t.Fatalf("expected bachelor rank 3, got %d", got)
	}
}
