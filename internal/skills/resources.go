package skills

import "github.com/jonathan/placement-prep/internal/types"

// minResources is the count below which generic resources are appended.
const minResources = 3

type studyLink struct {
	title, url, kind string
}

// studyResources maps a canonical skill to curated study links.
var studyResources = map[string][]studyLink{
	"DSA": {
		{"NeetCode 150", "https://neetcode.io/practice", "Practice"},
		{"Striver's SDE Sheet", "https://takeuforward.org/interviews/strivers-sde-sheet-top-coding-interview-problems/", "Curated List"},
	},
	"React": {
		{"Beta React Docs", "https://react.dev/learn", "Docs"},
		{"Epic React by Kent C. Dodds", "https://epicreact.dev/", "Course"},
	},
	"Node.js": {
		{"Node.js Best Practices", "https://github.com/goldbergyoni/nodebestpractices", "Guide"},
		{"Node.js Design Patterns", "https://www.nodejsdesignpatterns.com/", "Advanced"},
	},
	"Next.js": {
		{"Next.js Learn Course", "https://nextjs.org/learn", "Official"},
	},
	"JavaScript": {
		{"MDN JavaScript Guide", "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide", "Docs"},
		{"Just JavaScript", "https://justjavascript.com/", "Mental Models"},
	},
	"Python": {
		{"Real Python Tutorials", "https://realpython.com/", "Tutorials"},
		{"Python Roadmap", "https://roadmap.sh/python", "Map"},
	},
	"Java": {
		{"Baeldung Java Tutorials", "https://www.baeldung.com/", "Tutorials"},
		{"Java Roadmap", "https://roadmap.sh/java", "Map"},
	},
	"SQL": {
		{"SQLBolt Interactive", "https://sqlbolt.com/", "Interactive"},
		{"Database Indexing Explain", "https://use-the-index-luke.com/", "Advanced"},
	},
	"AWS": {
		{"AWS Cloud Practitioner Path", "https://explore.skillbuilder.aws/learn", "Certification"},
	},
	"Problem solving": {
		{"Cracking the Coding Interview", "https://www.careercup.com/book", "Book"},
	},
}

var genericResources = []types.Resource{
	{Title: "Interviewing.io Guides", URL: "https://interviewing.io/guides", Type: "Interview Prep", Skill: "General"},
	{Title: "GeeksforGeeks SDE Prep", URL: "https://www.geeksforgeeks.org/software-development-engineer-sde-roadmap/", Type: "Roadmap", Skill: "General"},
}

// Resources gathers study links for the detected skills in order. When fewer
// than three links are found, the two generic entries are appended.
func Resources(detected []string) []types.Resource {
	resources := make([]types.Resource, 0, len(detected)+len(genericResources))
	for _, skill := range detected {
		for _, link := range studyResources[skill] {
			resources = append(resources, types.Resource{
				Title: link.title,
				URL:   link.url,
				Type:  link.kind,
				Skill: skill,
			})
		}
	}

	if len(resources) < minResources {
		resources = append(resources, genericResources...)
	}
	return resources
}
