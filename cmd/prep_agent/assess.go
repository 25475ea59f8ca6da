package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/assessment"
	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/observability"
	"github.com/jonathan/placement-prep/internal/storage"
	"github.com/jonathan/placement-prep/internal/types"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Generate and grade mock skill assessments",
}

var assessSkillsCmd = &cobra.Command{
	Use:   "skills <analysis-id|latest>",
	Short: "List the assessable skills of a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssessSkills,
}

var assessGenerateCmd = &cobra.Command{
	Use:   "generate <analysis-id|latest>",
	Short: "Generate a mock test over the skills of a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssessGenerate,
}

var assessGradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade answers to a generated mock test",
	Args:  cobra.NoArgs,
	RunE:  runAssessGrade,
}

var (
	assessSkillList   string
	assessDifficulty  string
	assessDuration    string
	assessCount       int
	assessOut         string
	assessTestFile    string
	assessAnswersFile string
	assessJSON        bool
)

func init() {
	assessGenerateCmd.Flags().StringVar(&assessSkillList, "skills", "", "Comma-separated skills to cover (default every detected skill)")
	assessGenerateCmd.Flags().StringVar(&assessDifficulty, "difficulty", "", "Easy, Medium, Hard or Balanced")
	assessGenerateCmd.Flags().StringVar(&assessDuration, "duration", "", "Test duration label (default 30 min)")
	assessGenerateCmd.Flags().IntVar(&assessCount, "count", 0, "Maximum number of questions")
	assessGenerateCmd.Flags().StringVarP(&assessOut, "out", "o", "", "Write the test JSON to this file (default stdout)")

	assessGradeCmd.Flags().StringVar(&assessTestFile, "test", "", "Path to a generated test JSON file (required)")
	assessGradeCmd.Flags().StringVar(&assessAnswersFile, "answers", "", "Path to a JSON object of question_id to answer (required)")
	_ = assessGradeCmd.MarkFlagRequired("test")
	_ = assessGradeCmd.MarkFlagRequired("answers")

	assessCmd.PersistentFlags().BoolVar(&assessJSON, "json", false, "Print results as JSON")
	assessCmd.AddCommand(assessSkillsCmd, assessGenerateCmd, assessGradeCmd)
	rootCmd.AddCommand(assessCmd)
}

func runAssessSkills(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		a, err := lookupAnalysis(ctx, storage.NewHistory(store), args[0])
		if err != nil {
			return err
		}
		selection := assessment.SkillSelection(a)
		if assessJSON {
			return writeJSON(cmd.OutOrStdout(), selection)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s at %s: %d skills, %s, %d questions recommended\n",
			orUnknown(selection.Role), orUnknown(selection.Company), selection.TotalSkillsIdentified,
			selection.RecommendedTestDuration, selection.RecommendedTotalQuestions)
		for _, category := range selection.SkillCategories {
			fmt.Fprintf(out, "%s\n", category.Category)
			for _, skill := range category.Skills {
				fmt.Fprintf(out, "  %-10s %-20s %s\n", skill.ID, skill.Name, skill.Proficiency)
			}
		}
		return nil
	})
}

func runAssessGenerate(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		a, err := lookupAnalysis(ctx, storage.NewHistory(store), args[0])
		if err != nil {
			return err
		}

		selected := splitSkills(assessSkillList)
		if len(selected) == 0 {
			for _, category := range assessment.SkillSelection(a).SkillCategories {
				for _, skill := range category.Skills {
					selected = append(selected, skill.Name)
				}
			}
		}

		req := &types.AssessmentRequest{
			Skills: selected,
			Config: types.TestConfig{Difficulty: assessDifficulty, Duration: assessDuration, Count: assessCount},
		}
		if err := req.Validate(); err != nil {
			return err
		}
		test := assessment.GenerateMockTest(req.Skills, req.Config, time.Now())

		if assessOut == "" {
			return writeJSON(cmd.OutOrStdout(), test)
		}
		data, err := json.MarshalIndent(test, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(assessOut, data, 0600); err != nil {
			return fmt.Errorf("failed to write test: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d questions to %s\n", test.TotalQuestions, assessOut)
		return nil
	})
}

func runAssessGrade(cmd *cobra.Command, _ []string) error {
	testData, err := readInput(assessTestFile)
	if err != nil {
		return err
	}
	answersData, err := readInput(assessAnswersFile)
	if err != nil {
		return err
	}

	req := &types.GradeRequest{}
	if err := json.Unmarshal(testData, &req.Test); err != nil {
		return fmt.Errorf("failed to parse test: %w", err)
	}
	if err := json.Unmarshal(answersData, &req.Answers); err != nil {
		return fmt.Errorf("failed to parse answers: %w", err)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	result := assessment.Grade(req.Test, req.Answers)
	if assessJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintTestResult(result)
	return nil
}

func splitSkills(list string) []string {
	var out []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func orUnknown(s string) string {
	if s == "" {
		return "(unspecified)"
	}
	return s
}
