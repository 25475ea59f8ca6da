package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_SeniorBackendScenario(t *testing.T) {
	text := "Senior Backend Engineer role requiring React, Node.js, AWS, and SQL. Remote work available."

	result := Match(text)

	assert.Equal(t, []string{"React", "Node.js"}, result.Skills["web"])
	assert.Equal(t, []string{"SQL"}, result.Skills["data"])
	assert.Equal(t, []string{"AWS"}, result.Skills["cloud"])
	assert.NotContains(t, result.Skills, FallbackCategory)
	assert.Equal(t, 3, result.CategoryCount)
	assert.Equal(t, []string{"React", "Node.js", "SQL", "AWS"}, result.Detected)
}

func TestMatch_EmptyTextFallsBack(t *testing.T) {
	for _, text := range []string{"", "   ", "We value kindness and curiosity."} {
		result := Match(text)

		require.Len(t, result.Skills, 1)
		assert.Equal(t, []string{"Communication", "Problem solving"}, result.Skills[FallbackCategory])
		assert.Equal(t, []string{"Communication", "Problem solving"}, result.Detected)
		assert.Equal(t, 0, result.CategoryCount)
		assert.True(t, result.IsFallback())
	}
}

func TestMatch_FallbackNeverMixedWithCategories(t *testing.T) {
	texts := []string{
		"Python and Docker",
		"nothing relevant here",
		"C++ (STL), C#; CI/CD",
		"java",
		"",
	}

	for _, text := range texts {
		result := Match(text)
		_, hasFallback := result.Skills[FallbackCategory]
		if hasFallback {
			assert.Len(t, result.Skills, 1, "fallback must be the only category for %q", text)
		}
		for name, skills := range result.Skills {
			assert.NotEmpty(t, skills, "category %s for %q must not be empty", name, text)
		}
	}
}

func TestMatch_PunctuatedSkills(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		category string
		want     []string
	}{
		{"cpp at start", "C++ developers wanted", "languages", []string{"C", "C++"}},
		{"csharp after comma", "Java,C# and more", "languages", []string{"Java", "C", "C#"}},
		{"cicd in parens", "Own the pipeline (CI/CD)", "cloud", []string{"CI/CD"}},
		{"nodejs after slash", "React/Node.js stack", "web", []string{"React", "Node.js"}},
		{"nextjs at end", "experience with next.js", "web", []string{"Next.js"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Match(tt.text)
			assert.Equal(t, tt.want, result.Skills[tt.category])
		})
	}
}

func TestMatch_PunctuatedSkillNeedsBoundary(t *testing.T) {
	// A trailing period is not one of the accepted separators.
	result := Match("We use Node.js.")
	assert.NotContains(t, result.Skills["web"], "Node.js")
}

func TestMatch_WordBoundaryForAlphanumericSkills(t *testing.T) {
	result := Match("JavaScript engineers")

	assert.Equal(t, []string{"JavaScript"}, result.Skills["languages"])
	assert.NotContains(t, result.Skills["languages"], "Java")
}

func TestMatch_DictionaryOrderNotTextOrder(t *testing.T) {
	result := Match("Kubernetes, Docker and AWS")

	assert.Equal(t, []string{"AWS", "Docker", "Kubernetes"}, result.Skills["cloud"])
}

func TestMatch_CaseInsensitive(t *testing.T) {
	result := Match("POSTGRESQL and mongodb")

	assert.Equal(t, []string{"MongoDB", "PostgreSQL"}, result.Skills["data"])
}

func TestMatch_Idempotent(t *testing.T) {
	text := "Go, Redis, Kubernetes and GraphQL"
	assert.Equal(t, Match(text), Match(text))
}

func TestNewMatcher_CustomDictionary(t *testing.T) {
	m := NewMatcher(Dictionary{{Name: "infra", Skills: []string{"Terraform", "gRPC"}}})

	result := m.Match("terraform modules and gRPC services")
	assert.Equal(t, []string{"Terraform", "gRPC"}, result.Skills["infra"])
	assert.Equal(t, 1, result.CategoryCount)
}

func TestDefaultDictionary_ReturnsCopy(t *testing.T) {
	d := DefaultDictionary()
	d[0].Skills[0] = "mutated"

	assert.Equal(t, "DSA", DefaultDictionary()[0].Skills[0])
	assert.Equal(t, []string{"coreCS", "languages", "web", "data", "cloud", "testing"}, DefaultDictionary().Names())
}

func TestResources(t *testing.T) {
	t.Run("pads when fewer than three", func(t *testing.T) {
		res := Resources([]string{"Communication", "Problem solving"})

		require.Len(t, res, 3)
		assert.Equal(t, "Problem solving", res[0].Skill)
		assert.Equal(t, "General", res[1].Skill)
		assert.Equal(t, "General", res[2].Skill)
	})

	t.Run("no padding when enough", func(t *testing.T) {
		res := Resources([]string{"React", "SQL"})

		require.Len(t, res, 4)
		for _, r := range res {
			assert.NotEqual(t, "General", r.Skill)
		}
		assert.Equal(t, "React", res[0].Skill)
		assert.Equal(t, "SQL", res[3].Skill)
	})

	t.Run("unknown skills only", func(t *testing.T) {
		res := Resources([]string{"Kubernetes"})
		assert.Len(t, res, 2)
	})
}
