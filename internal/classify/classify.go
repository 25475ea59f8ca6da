// Package classify derives coarse role attributes from job description text.
//
// Every rule is a case-insensitive substring test, not a word-boundary match.
// This is a best-effort heuristic: "lead" also fires inside "leadership" and
// "tata" inside any longer name containing it. Scored outputs depend on this
// behavior, so it must not be tightened silently.
package classify

import "strings"

// Seniority levels.
const (
	SeniorityEntry  = "Entry"
	SeniorityMid    = "Mid-Level"
	SenioritySenior = "Senior"
)

// Role categories.
const (
	CategoryEngineering = "Engineering"
	CategoryProduct     = "Product"
	CategoryDesign      = "Design"
)

// Work locations.
const (
	LocationRemote = "Remote"
	LocationHybrid = "Hybrid"
	LocationOnSite = "On-site"
)

var (
	remoteTerms = []string{"remote", "work from home"}
	hybridTerms = []string{"hybrid"}
	seniorTerms = []string{"senior", "lead", "staff"}
	entryTerms  = []string{"junior", "intern", "fresher"}
)

// enterpriseCompanies triggers the longer enterprise interview template.
var enterpriseCompanies = []string{
	"amazon", "infosys", "tcs", "google", "microsoft", "meta", "apple", "ibm",
	"oracle", "sap", "wipro", "accenture", "cognizant", "reliance", "hcl", "tata",
}

// Profile is the classifier output for one job description.
type Profile struct {
	Seniority string `json:"seniority"`
	Category  string `json:"category"`
	Location  string `json:"location"`
}

// Classify derives seniority, category and location from jdText.
// Rules are checked in priority order; the first hit wins.
func Classify(jdText string) Profile {
	lower := strings.ToLower(jdText)
	return Profile{
		Seniority: seniority(lower),
		Category:  category(lower),
		Location:  location(lower),
	}
}

func location(lower string) string {
	switch {
	case containsAny(lower, remoteTerms):
		return LocationRemote
	case containsAny(lower, hybridTerms):
		return LocationHybrid
	default:
		return LocationOnSite
	}
}

func seniority(lower string) string {
	switch {
	case containsAny(lower, seniorTerms):
		return SenioritySenior
	case containsAny(lower, entryTerms):
		return SeniorityEntry
	default:
		return SeniorityMid
	}
}

func category(lower string) string {
	switch {
	case strings.Contains(lower, "product"):
		return CategoryProduct
	case strings.Contains(lower, "design"):
		return CategoryDesign
	default:
		return CategoryEngineering
	}
}

// IsEnterprise reports whether company contains one of the known enterprise names.
func IsEnterprise(company string) bool {
	return containsAny(strings.ToLower(strings.TrimSpace(company)), enterpriseCompanies)
}

// EnterpriseCompanies returns a copy of the enterprise name list.
func EnterpriseCompanies() []string {
	return append([]string(nil), enterpriseCompanies...)
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
