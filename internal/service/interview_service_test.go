package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepwise/internal/model"
)

func newInterviewFixture(t *testing.T, isActive bool) (*InterviewService, *fakeInterviewRepo, string) {
	t.Helper()

	templates := newFakeTemplateRepo()
	interviews := newFakeInterviewRepo()

	templateID, err := templates.Create(context.Background(), &model.InterviewTemplate{
		CompanyName: "Acme Corp",
		IsActive:    isActive,
		Rounds: []model.Round{
			{ID: "r1", Name: "Aptitude Screen", Type: model.RoundTypeAptitude},
			{ID: "r2", Name: "Coding Exercise", Type: model.RoundTypeCode},
		},
	})
	require.NoError(t, err)

	return NewInterviewService(interviews, templates), interviews, templateID
}

func TestGetOrCreateInterviewProvisionsOnce(t *testing.T) {
	svc, _, templateID := newInterviewFixture(t, true)

	first, err := svc.GetOrCreateInterview(context.Background(), "user-1", templateID, false)
	require.NoError(t, err)
	second, err := svc.GetOrCreateInterview(context.Background(), "user-1", templateID, false)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Acme Corp", first.CompanyName)
	assert.Len(t, first.Rounds, 2)
	assert.Empty(t, first.CompletedRounds)
}

func TestGetOrCreateInterviewSeparatePerUser(t *testing.T) {
	svc, _, templateID := newInterviewFixture(t, true)

	a, err := svc.GetOrCreateInterview(context.Background(), "user-a", templateID, false)
	require.NoError(t, err)
	b, err := svc.GetOrCreateInterview(context.Background(), "user-b", templateID, false)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestGetOrCreateInterviewSnapshotsRounds(t *testing.T) {
	templates := newFakeTemplateRepo()
	interviews := newFakeInterviewRepo()
	template := &model.InterviewTemplate{
		CompanyName: "Acme Corp",
		IsActive:    true,
		Rounds:      []model.Round{{ID: "r1", Name: "Aptitude Screen", Type: model.RoundTypeAptitude}},
	}
	templateID, err := templates.Create(context.Background(), template)
	require.NoError(t, err)
	svc := NewInterviewService(interviews, templates)

	interview, err := svc.GetOrCreateInterview(context.Background(), "user-1", templateID, false)
	require.NoError(t, err)

	// Editing the template afterwards must not change the instance.
	template.Rounds[0].Name = "Renamed"
	assert.Equal(t, "Aptitude Screen", interview.Rounds[0].Name)
}

func TestGetOrCreateInterviewInactiveTemplate(t *testing.T) {
	svc, _, templateID := newInterviewFixture(t, false)

	_, err := svc.GetOrCreateInterview(context.Background(), "user-1", templateID, false)
	assert.ErrorIs(t, err, ErrTemplateUnavailable)

	// Admins can still exercise inactive templates.
	interview, err := svc.GetOrCreateInterview(context.Background(), "admin-1", templateID, true)
	require.NoError(t, err)
	assert.NotEmpty(t, interview.ID)
}

func TestGetOrCreateInterviewUnknownTemplate(t *testing.T) {
	svc, _, _ := newInterviewFixture(t, true)

	_, err := svc.GetOrCreateInterview(context.Background(), "user-1", "missing", false)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestGetInterviewUnknown(t *testing.T) {
	svc, _, _ := newInterviewFixture(t, true)

	_, err := svc.GetInterview(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrInterviewNotFound)
}

func TestMarkRoundCompleteOnce(t *testing.T) {
	svc, repo, templateID := newInterviewFixture(t, true)
	interview, err := svc.GetOrCreateInterview(context.Background(), "user-1", templateID, false)
	require.NoError(t, err)

	require.NoError(t, svc.MarkRoundComplete(context.Background(), interview.ID, "r1"))

	stored := repo.interviews[interview.ID]
	assert.Equal(t, []string{"r1"}, stored.CompletedRounds)
}

func TestMarkRoundCompleteIdempotent(t *testing.T) {
	svc, repo, templateID := newInterviewFixture(t, true)
	interview, err := svc.GetOrCreateInterview(context.Background(), "user-1", templateID, false)
	require.NoError(t, err)

	require.NoError(t, svc.MarkRoundComplete(context.Background(), interview.ID, "r1"))

	// A second mark is a no-op, with no write against the repo.
	repo.setErr = context.DeadlineExceeded
	require.NoError(t, svc.MarkRoundComplete(context.Background(), interview.ID, "r1"))

	assert.Equal(t, []string{"r1"}, repo.interviews[interview.ID].CompletedRounds)
}

func TestMarkRoundCompleteUnknownInterview(t *testing.T) {
	svc, _, _ := newInterviewFixture(t, true)

	err := svc.MarkRoundComplete(context.Background(), "missing", "r1")
	assert.ErrorIs(t, err, ErrInterviewNotFound)
}
