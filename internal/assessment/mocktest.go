package assessment

import (
	"fmt"
	"time"

	"github.com/jonathan/placement-prep/internal/types"
)

// Mock test parameters
const (
	questionsPerSkill = 2
	hardPoints        = 10
	defaultPoints     = 5
	passingScore      = 70
	defaultDuration   = "30 min"
	balanced          = "Balanced"
)

// GenerateMockTest picks up to two questions per selected skill. Skills with
// no questions of their own draw from the JavaScript pool.
//
// A Difficulty other than "Balanced" keeps only questions of that difficulty
// when the pool has any. A positive Count caps the total number of questions.
func GenerateMockTest(selected []string, cfg types.TestConfig, now time.Time) *types.MockTest {
	if cfg.Duration == "" {
		cfg.Duration = defaultDuration
	}

	questions := make([]types.Question, 0, len(selected)*questionsPerSkill)
	for _, skill := range selected {
		pool := filterDifficulty(poolFor(skill), cfg.Difficulty)
		if len(pool) > questionsPerSkill {
			pool = pool[:questionsPerSkill]
		}
		for _, q := range pool {
			q.Options = append([]string(nil), q.Options...)
			q.Skill = skill
			questions = append(questions, q)
		}
	}
	if cfg.Count > 0 && len(questions) > cfg.Count {
		questions = questions[:cfg.Count]
	}

	for i := range questions {
		questions[i].QuestionID = fmt.Sprintf("Q%d", i+1)
		questions[i].Points = defaultPoints
		if questions[i].Difficulty == "Hard" {
			questions[i].Points = hardPoints
		}
	}

	return &types.MockTest{
		TestID:         fmt.Sprintf("test_%d", now.UnixMilli()),
		SkillsCovered:  append([]string(nil), selected...),
		TotalQuestions: len(questions),
		TotalDuration:  cfg.Duration,
		PassingScore:   passingScore,
		Questions:      questions,
	}
}

func filterDifficulty(pool []types.Question, difficulty string) []types.Question {
	if difficulty == "" || difficulty == balanced {
		return pool
	}
	var out []types.Question
	for _, q := range pool {
		if q.Difficulty == difficulty {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return pool
	}
	return out
}
