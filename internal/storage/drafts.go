package storage

import (
	"context"
	"slices"

	"github.com/jonathan/placement-prep/internal/types"
)

// Draft and tracker keys
const (
	ResumeDraftKey     = "resumeBuilderData_v2"
	BuilderConfigKey   = "resumeBuilderConfig_v2"
	PreferencesKey     = "jobTrackerPreferences"
	StatusKey          = "jobTrackerStatus"
	SavedJobsKey       = "saved_job_ids"
	digestKeyPrefix    = "jobTrackerDigest_"
	jdDraftCompanyKey  = "jd_draft_company"
	jdDraftRoleKey     = "jd_draft_role"
	jdDraftTextKey     = "jd_draft_text"
	TestChecklistKey   = "prp_test_checklist"
	SubmissionKey      = "prp_final_submission"
	requiredTestsCount = 10
)

// Platform ship states.
const (
	PlatformShipped    = "Shipped"
	PlatformInProgress = "In Progress"
)

// JDDraft is an unsubmitted job description form.
type JDDraft struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	JDText  string `json:"jdText"`
}

// Submission holds the final proof-of-work links.
type Submission struct {
	Lovable  string `json:"lovable"`
	GitHub   string `json:"github"`
	Deployed string `json:"deployed"`
}

// Complete reports whether all three links are present.
func (s Submission) Complete() bool {
	return s.Lovable != "" && s.GitHub != "" && s.Deployed != ""
}

// Drafts persists resume builder state, job tracker state and JD drafts.
type Drafts struct {
	store Store
}

// NewDrafts returns Drafts over store.
func NewDrafts(store Store) *Drafts {
	return &Drafts{store: store}
}

// ResumeDraft returns the saved resume, or an empty one.
func (d *Drafts) ResumeDraft(ctx context.Context) (*types.ResumeData, error) {
	r := types.NewResumeData()
	if _, err := getJSON(ctx, d.store, ResumeDraftKey, r); err != nil {
		return nil, err
	}
	return r, nil
}

// SaveResumeDraft stores r.
func (d *Drafts) SaveResumeDraft(ctx context.Context, r *types.ResumeData) error {
	return setJSON(ctx, d.store, ResumeDraftKey, r)
}

// BuilderConfig returns the saved builder config, or the default one.
func (d *Drafts) BuilderConfig(ctx context.Context) (types.BuilderConfig, error) {
	cfg := types.DefaultBuilderConfig()
	if _, err := getJSON(ctx, d.store, BuilderConfigKey, &cfg); err != nil {
		return types.BuilderConfig{}, err
	}
	return cfg, nil
}

// SaveBuilderConfig stores cfg.
func (d *Drafts) SaveBuilderConfig(ctx context.Context, cfg types.BuilderConfig) error {
	return setJSON(ctx, d.store, BuilderConfigKey, cfg)
}

// Preferences returns the saved job preferences, or nil when none were saved.
func (d *Drafts) Preferences(ctx context.Context) (*types.JobPreferences, error) {
	var prefs types.JobPreferences
	ok, err := getJSON(ctx, d.store, PreferencesKey, &prefs)
	if err != nil || !ok {
		return nil, err
	}
	return &prefs, nil
}

// SavePreferences stores prefs.
func (d *Drafts) SavePreferences(ctx context.Context, prefs *types.JobPreferences) error {
	return setJSON(ctx, d.store, PreferencesKey, prefs)
}

// Statuses returns the application status of every tracked job.
func (d *Drafts) Statuses(ctx context.Context) (map[string]types.ApplicationStatus, error) {
	statuses := make(map[string]types.ApplicationStatus)
	if _, err := getJSON(ctx, d.store, StatusKey, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// SetStatus records status for jobID.
func (d *Drafts) SetStatus(ctx context.Context, jobID string, status types.ApplicationStatus) error {
	if !status.IsValid() {
		return &InvalidStatusError{Status: string(status)}
	}
	statuses, err := d.Statuses(ctx)
	if err != nil {
		return err
	}
	statuses[jobID] = status
	return setJSON(ctx, d.store, StatusKey, statuses)
}

// SavedJobs returns the bookmarked job ids in the order they were saved.
func (d *Drafts) SavedJobs(ctx context.Context) ([]string, error) {
	ids := []string{}
	if _, err := getJSON(ctx, d.store, SavedJobsKey, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// ToggleSavedJob bookmarks jobID, or removes the bookmark if present. It
// returns whether the job is saved afterwards.
func (d *Drafts) ToggleSavedJob(ctx context.Context, jobID string) (bool, error) {
	ids, err := d.SavedJobs(ctx)
	if err != nil {
		return false, err
	}
	saved := !slices.Contains(ids, jobID)
	if saved {
		ids = append(ids, jobID)
	} else {
		ids = slices.DeleteFunc(ids, func(id string) bool { return id == jobID })
	}
	return saved, setJSON(ctx, d.store, SavedJobsKey, ids)
}

// DigestKey returns the cache key of the digest for date (YYYY-MM-DD).
func DigestKey(date string) string {
	return digestKeyPrefix + date
}

// Digest returns the cached digest for date, if one was generated.
func (d *Drafts) Digest(ctx context.Context, date string) ([]types.ScoredJob, bool, error) {
	var digest []types.ScoredJob
	ok, err := getJSON(ctx, d.store, DigestKey(date), &digest)
	return digest, ok, err
}

// SaveDigest caches digest for date.
func (d *Drafts) SaveDigest(ctx context.Context, date string, digest []types.ScoredJob) error {
	return setJSON(ctx, d.store, DigestKey(date), digest)
}

// JDDraft returns the unsubmitted analysis form.
func (d *Drafts) JDDraft(ctx context.Context) (JDDraft, error) {
	var draft JDDraft
	for key, dst := range map[string]*string{
		jdDraftCompanyKey: &draft.Company,
		jdDraftRoleKey:    &draft.Role,
		jdDraftTextKey:    &draft.JDText,
	} {
		v, _, err := d.store.Get(ctx, key)
		if err != nil {
			return JDDraft{}, &StoreError{Op: "get", Key: key, Cause: err}
		}
		*dst = v
	}
	return draft, nil
}

// SaveJDDraft stores the form fields as plain strings.
func (d *Drafts) SaveJDDraft(ctx context.Context, draft JDDraft) error {
	fields := [][2]string{
		{jdDraftCompanyKey, draft.Company},
		{jdDraftRoleKey, draft.Role},
		{jdDraftTextKey, draft.JDText},
	}
	for _, f := range fields {
		if err := d.store.Set(ctx, f[0], f[1]); err != nil {
			return &StoreError{Op: "set", Key: f[0], Cause: err}
		}
	}
	return nil
}

// ClearJDDraft removes the saved form once an analysis was submitted.
func (d *Drafts) ClearJDDraft(ctx context.Context) error {
	for _, key := range []string{jdDraftCompanyKey, jdDraftRoleKey, jdDraftTextKey} {
		if err := d.store.Delete(ctx, key); err != nil {
			return &StoreError{Op: "delete", Key: key, Cause: err}
		}
	}
	return nil
}

// TestChecklist returns the verification checklist, keyed by item number.
func (d *Drafts) TestChecklist(ctx context.Context) (map[string]bool, error) {
	checklist := make(map[string]bool)
	if _, err := getJSON(ctx, d.store, TestChecklistKey, &checklist); err != nil {
		return nil, err
	}
	return checklist, nil
}

// SaveTestChecklist stores checklist.
func (d *Drafts) SaveTestChecklist(ctx context.Context, checklist map[string]bool) error {
	return setJSON(ctx, d.store, TestChecklistKey, checklist)
}

// ResetTestChecklist clears every checklist item.
func (d *Drafts) ResetTestChecklist(ctx context.Context) error {
	if err := d.store.Delete(ctx, TestChecklistKey); err != nil {
		return &StoreError{Op: "delete", Key: TestChecklistKey, Cause: err}
	}
	return nil
}

// Submission returns the final submission links.
func (d *Drafts) Submission(ctx context.Context) (Submission, error) {
	var s Submission
	if _, err := getJSON(ctx, d.store, SubmissionKey, &s); err != nil {
		return Submission{}, err
	}
	return s, nil
}

// SaveSubmission stores s.
func (d *Drafts) SaveSubmission(ctx context.Context, s Submission) error {
	return setJSON(ctx, d.store, SubmissionKey, s)
}

// PlatformStatus is "Shipped" once all ten checklist items pass and all three
// submission links are present, "In Progress" otherwise.
func (d *Drafts) PlatformStatus(ctx context.Context) (string, error) {
	checklist, err := d.TestChecklist(ctx)
	if err != nil {
		return "", err
	}
	passed := 0
	for _, ok := range checklist {
		if ok {
			passed++
		}
	}

	submission, err := d.Submission(ctx)
	if err != nil {
		return "", err
	}

	if passed == requiredTestsCount && submission.Complete() {
		return PlatformShipped, nil
	}
	return PlatformInProgress, nil
}
