package report

import "slices"

// Questions returns ten likely interview questions. Detecting SQL or DSA swaps
// a generic question for a topic-specific one.
func Questions(detected []string) []string {
	third := "Explain how you handle state in your applications."
	if slices.Contains(detected, "SQL") {
		third = "Explain indexing and ACID properties."
	}
	fourth := "How do you optimize your development workflow?"
	if slices.Contains(detected, "DSA") {
		fourth = "What is the complexity of your most used algorithm?"
	}

	return []string{
		"Tell me about your most challenging technical project.",
		"How do you stay updated with new technologies?",
		third,
		fourth,
		"How do you handle conflict in a team setting?",
		"Where do you see yourself in 2 years?",
		"What is your approach to learning a new language?",
		"Give an example of a time you handled a tight deadline.",
		"What do you look for in a team culture?",
		"Do you have any questions for us?",
	}
}
