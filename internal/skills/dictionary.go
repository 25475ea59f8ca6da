// Package skills detects canonical skills in free text using a fixed category dictionary.
package skills

// Category is a named, ordered group of canonical skill names.
type Category struct {
	Name   string
	Skills []string
}

// Dictionary is an ordered list of skill categories. Order is significant:
// detected skills are reported in dictionary order, not text order.
type Dictionary []Category

// FallbackCategory is reported when no dictionary skill matches.
const FallbackCategory = "other"

// fallbackSkills is the load-bearing default used when nothing was detected.
var fallbackSkills = []string{"Communication", "Problem solving"}

// DefaultDictionary returns the built-in skill dictionary. Each call returns a fresh copy.
func DefaultDictionary() Dictionary {
	return Dictionary{
		{Name: "coreCS", Skills: []string{"DSA", "OOP", "DBMS", "OS", "Networks"}},
		{Name: "languages", Skills: []string{"Java", "Python", "JavaScript", "TypeScript", "C", "C++", "C#", "Go"}},
		{Name: "web", Skills: []string{"React", "Next.js", "Node.js", "Express", "REST", "GraphQL"}},
		{Name: "data", Skills: []string{"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis"}},
		{Name: "cloud", Skills: []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Linux"}},
		{Name: "testing", Skills: []string{"Selenium", "Cypress", "Playwright", "JUnit", "PyTest"}},
	}
}

// Names returns the category names in dictionary order.
func (d Dictionary) Names() []string {
	names := make([]string, 0, len(d))
	for _, c := range d {
		names = append(names, c.Name)
	}
	return names
}
