package schemas

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/placement-prep/internal/types"
	schemafiles "github.com/jonathan/placement-prep/schemas"
)

// DecodeResume validates data against the resume schema and decodes it.
func DecodeResume(data []byte) (*types.ResumeData, error) {
	resume := types.NewResumeData()
	if err := decode(schemafiles.Resume, data, resume); err != nil {
		return nil, err
	}
	if err := resume.Validate(); err != nil {
		return nil, err
	}
	return resume, nil
}

// DecodePreferences validates data against the preferences schema and decodes it.
// A JSON null yields nil preferences.
func DecodePreferences(data []byte) (*types.JobPreferences, error) {
	if string(data) == "null" {
		return nil, nil
	}
	var prefs types.JobPreferences
	if err := decode(schemafiles.Preferences, data, &prefs); err != nil {
		return nil, err
	}
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// DecodeJobs validates data against the job list schema and decodes it.
func DecodeJobs(data []byte) ([]types.Job, error) {
	var jobs []types.Job
	if err := decode(schemafiles.Jobs, data, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func decode(schemaName string, data []byte, v any) error {
	if err := ValidateJSON(schemaName, data); err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", schemaName, err)
	}
	return nil
}
