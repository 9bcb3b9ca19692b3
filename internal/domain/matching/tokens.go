package matching

import (
	"strings"
	"unicode"
)

// stopWords are common words that add noise to requirement/skill overlap.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"able": true, "such": true, "must": true, "plus": true, "good": true,
	"strong": true, "excellent": true, "years": true, "year": true,
	"experience": true, "knowledge": true, "skills": true, "ability": true,
	"working": true, "proficiency": true, "familiarity": true, "required": true,
	"preferred": true, "minimum": true, "least": true,
}

// normalizeText case-folds, trims, and collapses internal whitespace.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// tokenize splits text into a lowercase token set, skipping stop words.
// The characters + # . are kept inside tokens so "c++", "c#" and "node.js"
// survive intact.
func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	var word strings.Builder

	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(w)) < 2 {
			return
		}
		if stopWords[w] {
			return
		}
		tokens[w] = true
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// coverage is the fraction of requirement tokens present in the candidate
// token set. 1.0 means every meaningful requirement token is covered.
func coverage(requirement, candidate map[string]bool) float64 {
	if len(requirement) == 0 {
		return 0
	}
	hit := 0
	for t := range requirement {
		if candidate[t] {
			hit++
		}
	}
	return float64(hit) / float64(len(requirement))
}
