// Package report expands classifier output into the fixed-shape role report,
// roadmap, interview rounds and preparation plan of an analysis.
//
// Every field is chosen from a small table of pre-written variants keyed on
// seniority, company and the detected skills. Identical inputs always produce
// identical output.
package report

import (
	"fmt"

	"github.com/jonathan/placement-prep/internal/classify"
	"github.com/jonathan/placement-prep/internal/types"
)

// Placeholders used when company or role is blank.
const (
	defaultCompany   = "the target company"
	defaultRoleFocus = "core technical contributions"
)

var responsibilities = []string{
	"Lead development of core features and systems using modern architectural patterns.",
	"Collaborate with cross-functional teams to define requirements and success metrics.",
	"Ensure high quality through automated testing, code reviews, and documentation.",
	"Optimize performance and scalability of existing products to handle increased load.",
}

// seniorityVariant holds the report fields that depend on seniority.
type seniorityVariant struct {
	mustHave       string
	years          string
	compensation   string
	pathway        string
	technical      float64
	responsibility float64
	experience     float64
}

var (
	seniorVariant = seniorityVariant{
		mustHave:       "Strong leadership and architectural background with proven delivery.",
		years:          "5-8 years",
		compensation:   "₹25L - ₹45L",
		pathway:        "Principal Engineer / CTO Office",
		technical:      8.5,
		responsibility: 9.0,
		experience:     8.0,
	}
	midVariant = seniorityVariant{
		mustHave:       "Solid fundamental knowledge and rapid learning ability in production environments.",
		years:          "3-5 years",
		compensation:   "15L - 25L",
		pathway:        "Senior Developer / Tech Lead",
		technical:      6.5,
		responsibility: 5.0,
		experience:     4.0,
	}
)

func variantFor(seniority string) seniorityVariant {
	switch seniority {
	case classify.SenioritySenior:
		return seniorVariant
	case classify.SeniorityEntry:
		v := midVariant
		v.years = "0-2 years"
		v.compensation = "08L - 15L"
		return v
	default:
		return midVariant
	}
}

// RoleReport builds the ten-section role breakdown for a classified job description.
func RoleReport(company, role string, profile classify.Profile) *types.RoleReport {
	v := variantFor(profile.Seniority)

	intel := "The company operates in a competitive tech environment requiring high agility."
	if company != "" {
		intel = fmt.Sprintf("%s is a key player in its segment, focusing on digital transformation and innovative user experiences.", company)
	}

	return &types.RoleReport{
		Overview: types.RoleOverview{
			Summary: fmt.Sprintf(
				"This is a %s %s role at %s focusing on %s. It requires a blend of practical execution and strategic understanding.",
				profile.Seniority, profile.Category, orDefault(company, defaultCompany), orDefault(role, defaultRoleFocus),
			),
			Seniority: profile.Seniority,
			Category:  profile.Category,
			Location:  profile.Location,
		},
		Responsibilities: append([]string(nil), responsibilities...),
		Skills: types.RoleSkills{
			Hard:     []string{"Technical Architecture", "Core Programming", "System Design", "Cloud Infrastructure", "API Security"},
			Soft:     []string{"Communication", "Problem Solving", "Stakeholder Management", "Leadership", "Critical Thinking"},
			MustHave: v.mustHave,
		},
		Experience: types.RoleExperience{
			Years:     v.years,
			Education: "Bachelor's or Master's degree in Computer Science or related field.",
			Industry:  "Technology or SaaS sector experience preferred with high-growth startup exposure.",
		},
		Context: types.CompanyContext{
			Sector:      "Technology / SaaS",
			Size:        "Enterprise / Growth Stage",
			Environment: "Fast-paced, high-ownership, and innovation-driven culture.",
			Intel:       intel,
		},
		Compensation: types.Compensation{
			Range:     v.compensation,
			MarketFit: "Highly competitive with industry standards for this level of role.",
			Perks:     []string{"Equity/ESOPs", "Health Insurance", "Remote Setup Stipend", "Learning Credits"},
		},
		Growth: types.Growth{
			Pathway:     v.pathway,
			Mentorship:  "High - direct exposure to senior leadership and complex system design.",
			Scalability: "The role offers clear transitions into leadership or deep domain expertise.",
		},
		Complexity: types.Complexity{
			Technical:         v.technical,
			Responsibility:    v.responsibility,
			Experience:        v.experience,
			Diversity:         7.5,
			PerformanceMetric: "Code quality, deployment frequency, and architectural impact.",
		},
		Insights: types.CandidateInsight{
			IdealCandidate: "An ownership-driven professional who thrives in fast-paced environments and values clean code and architectural integrity.",
			Challenges:     "Navigating complex legacy systems while delivering new features on tight schedules.",
			RedFlags:       "Vague descriptions of tech stack or unclear success metrics in the JD.",
		},
		Market: types.Market{
			Attractiveness:  "High - the requirements align well with industry standards for current tech roles.",
			Competitiveness: "Strong - expects high technical proficiency and cultural alignment.",
			Demand:          "Exceptional - this role is in the top 5% of in-demand technical trajectories.",
		},
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
