package assessment

import (
	"math"

	"github.com/jonathan/placement-prep/internal/types"
)

// Grade scores answers, keyed by question id, against test. The score is the
// rounded percentage of correct answers; unanswered questions count as wrong.
// The breakdown is grouped by each question's skill.
func Grade(test *types.MockTest, answers map[string]string) *types.TestResult {
	result := &types.TestResult{
		Total:     len(test.Questions),
		Breakdown: make(map[string]types.SkillBreakdown),
	}

	for _, q := range test.Questions {
		b := result.Breakdown[q.Skill]
		b.Total++
		if answer, ok := answers[q.QuestionID]; ok && answer == q.Answer {
			result.Correct++
			b.Correct++
		}
		result.Breakdown[q.Skill] = b
	}

	if result.Total > 0 {
		result.Score = int(math.Round(float64(result.Correct) / float64(result.Total) * 100))
	}
	result.Passed = result.Score >= test.PassingScore
	return result
}
