package scoring

import "github.com/jonathan/placement-prep/internal/types"

// FinalScore applies the confidence map to base: +2 per known skill, -2 per
// skill still to practice, clamped to [0, 100].
func FinalScore(base int, confidence map[string]types.Confidence) int {
	delta := 0
	for _, c := range confidence {
		switch c {
		case types.ConfidenceKnow:
			delta += confidenceStep
		case types.ConfidencePractice:
			delta -= confidenceStep
		}
	}
	return clamp(base + delta)
}

// SetConfidence records c for skill and recomputes the final score.
// Only skills detected by the analysis can be set.
func SetConfidence(a *types.AnalysisResult, skill string, c types.Confidence) error {
	if c != types.ConfidenceKnow && c != types.ConfidencePractice {
		return &InvalidConfidenceError{Value: string(c)}
	}
	if _, ok := a.SkillConfidenceMap[skill]; !ok {
		return &UnknownSkillError{AnalysisID: a.ID, Skill: skill}
	}
	a.SkillConfidenceMap[skill] = c
	a.FinalScore = FinalScore(a.BaseScore, a.SkillConfidenceMap)
	return nil
}

// ToggleSkill flips skill between "know" and "practice" and returns the new state.
func ToggleSkill(a *types.AnalysisResult, skill string) (types.Confidence, error) {
	current, ok := a.SkillConfidenceMap[skill]
	if !ok {
		return "", &UnknownSkillError{AnalysisID: a.ID, Skill: skill}
	}

	next := types.ConfidenceKnow
	if current == types.ConfidenceKnow {
		next = types.ConfidencePractice
	}
	if err := SetConfidence(a, skill, next); err != nil {
		return "", err
	}
	return next, nil
}
