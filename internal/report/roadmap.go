package report

import (
	"fmt"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// focusSkillCount is how many detected skills anchor the plan and roadmap.
const focusSkillCount = 3

// Roadmap builds the long-form preparation roadmap. The first phase and the
// first critical gap are keyed off the leading detected skills.
func Roadmap(company, role string, detected []string) *types.Roadmap {
	focus := topSkills(detected)
	lead := ""
	if len(focus) > 0 {
		lead = focus[0]
	}

	return &types.Roadmap{
		GapAnalysis: types.GapAnalysis{
			PositionSummary: fmt.Sprintf(
				"Strategic %s position at %s, demanding a high-degree of ownership over technical delivery and architectural quality.",
				orDefault(role, "technical"), orDefault(company, "the target firm"),
			),
			CriticalGaps: []string{
				fmt.Sprintf("Transitioning from broad technical knowledge to %s depth.", orDefault(lead, "core engineering")),
				"Bridging the gap between individual contribution and architectural thinking.",
				"Aligning technical decisions with business-critical success metrics.",
			},
			Qualifications: types.Qualifications{
				MustHave:   []string{"Strong problem solving primitives", "Proven track record in technical delivery", "Cultural alignment with high-ownership teams"},
				NiceToHave: []string{"Previous startup scaling experience", "Contributions to open-source", "Niche domain certifications"},
			},
		},
		LearningPathways: []types.LearningPhase{
			{
				Phase:    "Phase 1: Foundation (Month 1)",
				Focus:    "Solidifying " + orDefault(strings.Join(focus, " & "), "Fundamentals"),
				Topics:   []string{"Deep dive into core runtime environments", "Architectural patterns for scalability", "Automated testing strategies"},
				Projects: fmt.Sprintf("Build a production-ready micro-service focusing on %s.", orDefault(lead, "clean architecture")),
			},
			{
				Phase:    "Phase 2: Intermediate (Months 2-3)",
				Focus:    "System Design & Integration",
				Topics:   []string{"Distributed systems and messaging queues", "Cloud-native deployment patterns", "Performance profiling and optimization"},
				Projects: "Implement a real-time data sync engine or a complex dashboard with high-concurrency.",
			},
			{
				Phase:    "Phase 3: Mastery (Months 4-6)",
				Focus:    "Strategic Leadership & Depth",
				Topics:   []string{"Technical decision making and trade-offs", "Team mentorship and code review standards", "Service reliability engineering"},
				Projects: "Contribute to a high-impact open source project or design a system from 0 to 1.",
			},
		},
		ActionSteps: []types.ActionStep{
			{
				Area:           "Technical Depth",
				Resources:      []string{"System Design Primer (GitHub)", "Modern Operating Systems (Tanenbaum)"},
				TimeInvestment: "10-12 hours/week",
			},
			{
				Area:           "Domain Knowledge",
				Resources:      []string{"Industry whitepapers", "Tech Blogs (Netflix/Uber/Airbnb)"},
				TimeInvestment: "4-6 hours/week",
			},
		},
		Portfolio: types.Portfolio{
			SuggestedProjects: []string{
				"Full-stack Scalable System: Demonstrates end-to-end ownership.",
				"Technical Documentation: Showcases ability to communicate complex ideas.",
				"Open Source PRs: Signals collaboration and code quality.",
			},
			Demonstrators: []string{"GitHub Organization profile", "Technical Blog on Medium/Hashnode", "Public portfolio site"},
		},
		Readiness: types.ApplicationReady{
			ResumeTips: []string{
				"Quantify your impact using the X-Y-Z formula.",
				"Highlight relevant tech stack matching the JD keywords.",
				"Create a separate section for architectural contributions.",
			},
			InterviewFocus: []string{"Core DSA Performance", "System Design Trade-offs", "Behavioral (STAR Method)"},
			QuestionsToAsk: []string{
				"What does success look like for this role in the first 90 days?",
				"How does the team handle technical debt?",
				"What is the biggest technical challenge the team is currently facing?",
			},
		},
		Timeline: []types.TimelineMilestone{
			{Period: "Month 1", Milestone: "Complete core architecture certification & first project."},
			{Period: "Month 2-3", Milestone: "Submit 5 high-quality PRs and build a complex system."},
			{Period: "Month 4-6", Milestone: "Mock interviews completed & Resume optimized for target tier."},
		},
	}
}

func topSkills(detected []string) []string {
	if len(detected) > focusSkillCount {
		return detected[:focusSkillCount]
	}
	return detected
}
