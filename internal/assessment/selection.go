// Package assessment builds mock skill assessments from an analysis and grades them.
package assessment

import (
	"fmt"

	"github.com/jonathan/placement-prep/internal/classify"
	"github.com/jonathan/placement-prep/internal/skills"
	"github.com/jonathan/placement-prep/internal/types"
)

// Selection defaults
const (
	proficiencySenior          = "Advanced"
	proficiencyDefault         = "Intermediate"
	suggestedQuestionsPerSkill = 5
	recommendedDuration        = "45 minutes"
	recommendedTotalQuestions  = 20
)

// SkillSelection lists every detected skill of an analysis as a selectable,
// mandatory assessment skill. Categories follow dictionary order with the
// fallback category last. A nil analysis yields nil.
func SkillSelection(a *types.AnalysisResult) *types.SkillSelection {
	if a == nil || a.ExtractedSkills == nil {
		return nil
	}

	proficiency := proficiencyDefault
	if a.RoleReport != nil && a.RoleReport.Overview.Seniority == classify.SenioritySenior {
		proficiency = proficiencySenior
	}

	order := append(skills.DefaultDictionary().Names(), skills.FallbackCategory)
	categories := make([]types.SkillCategory, 0, len(a.ExtractedSkills))
	total := 0
	for _, name := range order {
		detected := a.ExtractedSkills[name]
		if len(detected) == 0 {
			continue
		}
		selected := make([]types.SelectedSkill, len(detected))
		for i, skill := range detected {
			total++
			selected[i] = types.SelectedSkill{
				ID:                     fmt.Sprintf("skill_%d", total),
				Name:                   skill,
				Proficiency:            proficiency,
				IsMandatory:            true,
				SuggestedQuestionCount: suggestedQuestionsPerSkill,
			}
		}
		categories = append(categories, types.SkillCategory{Category: name, Skills: selected})
	}

	return &types.SkillSelection{
		Role:                      a.Role,
		Company:                   a.Company,
		TotalSkillsIdentified:     total,
		SkillCategories:           categories,
		RecommendedTestDuration:   recommendedDuration,
		RecommendedTotalQuestions: recommendedTotalQuestions,
	}
}
