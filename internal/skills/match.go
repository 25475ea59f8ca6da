package skills

import (
	"regexp"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// punctuationBoundary replaces \b for skills such as "C++", "C#" or "CI/CD",
// where word-boundary semantics break on the punctuation itself.
const punctuationBoundary = `[\s/(),;]`

// Result is the outcome of matching a text against a dictionary.
type Result struct {
	Skills        types.ExtractedSkills
	Detected      []string // Flat list in dictionary order
	CategoryCount int      // Categories with at least one hit; the fallback counts as zero
}

// IsFallback reports whether nothing in the dictionary matched.
func (r *Result) IsFallback() bool {
	return r.CategoryCount == 0
}

type skillPattern struct {
	name string
	re   *regexp.Regexp
}

type categoryPatterns struct {
	name     string
	patterns []skillPattern
}

// Matcher holds compiled patterns for a dictionary. It is immutable after
// construction and safe for concurrent use.
type Matcher struct {
	categories []categoryPatterns
}

// NewMatcher compiles one pattern per skill in dict.
func NewMatcher(dict Dictionary) *Matcher {
	m := &Matcher{categories: make([]categoryPatterns, 0, len(dict))}
	for _, cat := range dict {
		cp := categoryPatterns{name: cat.Name, patterns: make([]skillPattern, 0, len(cat.Skills))}
		for _, skill := range cat.Skills {
			cp.patterns = append(cp.patterns, skillPattern{
				name: skill,
				re:   regexp.MustCompile(buildPattern(skill)),
			})
		}
		m.categories = append(m.categories, cp)
	}
	return m
}

var defaultMatcher = NewMatcher(DefaultDictionary())

// Match scans text with the default dictionary.
func Match(text string) *Result {
	return defaultMatcher.Match(text)
}

// Match scans text for dictionary skills. If nothing matches, the result holds
// the single "other" category with the fallback skills.
func (m *Matcher) Match(text string) *Result {
	lower := strings.ToLower(text)

	result := &Result{Skills: make(types.ExtractedSkills)}
	for _, cat := range m.categories {
		var detected []string
		for _, p := range cat.patterns {
			if p.re.MatchString(lower) {
				detected = append(detected, p.name)
			}
		}
		if len(detected) > 0 {
			result.Skills[cat.name] = detected
			result.Detected = append(result.Detected, detected...)
			result.CategoryCount++
		}
	}

	if len(result.Detected) == 0 {
		result.Skills[FallbackCategory] = append([]string(nil), fallbackSkills...)
		result.Detected = append([]string(nil), fallbackSkills...)
	}

	return result
}

// buildPattern returns the case-insensitive pattern used to find skill in lower-cased text.
func buildPattern(skill string) string {
	quoted := regexp.QuoteMeta(skill)
	if isAlphanumeric(skill) {
		return `(?i)\b` + quoted + `\b`
	}
	return `(?i)(?:^|` + punctuationBoundary + `)` + quoted + `(?:$|` + punctuationBoundary + `)`
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
