package scoring

import "fmt"

// UnknownSkillError is returned when a confidence change names a skill the analysis did not detect.
type UnknownSkillError struct {
	AnalysisID string
	Skill      string
}

func (e *UnknownSkillError) Error() string {
	return fmt.Sprintf("skill %q is not part of analysis %s", e.Skill, e.AnalysisID)
}

// InvalidConfidenceError is returned for a confidence value other than "know" or "practice".
type InvalidConfidenceError struct {
	Value string
}

func (e *InvalidConfidenceError) Error() string {
	return fmt.Sprintf("invalid confidence %q (valid: know, practice)", e.Value)
}
