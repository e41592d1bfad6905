package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"prepwise/internal/model"
)

// In-memory repository fakes shared by the service tests. Each fake stores
// documents in a map keyed the same way the Mongo indexes are, and supports
// forcing errors to exercise failure paths.

type fakeTemplateRepo struct {
	templates map[string]*model.InterviewTemplate
	getErr    error
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: map[string]*model.InterviewTemplate{}}
}

func (r *fakeTemplateRepo) Create(ctx context.Context, tmpl *model.InterviewTemplate) (string, error) {
	id := fmt.Sprintf("tmpl-%d", len(r.templates)+1)
	tmpl.ID = id
	r.templates[id] = tmpl
	return id, nil
}

func (r *fakeTemplateRepo) GetByID(ctx context.Context, id string) (*model.InterviewTemplate, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.templates[id], nil
}

func (r *fakeTemplateRepo) List(ctx context.Context, includeInactive bool) ([]*model.InterviewTemplate, error) {
	var out []*model.InterviewTemplate
	for _, tmpl := range r.templates {
		if tmpl.IsActive || includeInactive {
			out = append(out, tmpl)
		}
	}
	return out, nil
}

func (r *fakeTemplateRepo) Update(ctx context.Context, tmpl *model.InterviewTemplate) error {
	r.templates[tmpl.ID] = tmpl
	return nil
}

func (r *fakeTemplateRepo) Delete(ctx context.Context, id string) error {
	delete(r.templates, id)
	return nil
}

type fakeInterviewRepo struct {
	interviews map[string]*model.InterviewInstance
	setErr     error
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{interviews: map[string]*model.InterviewInstance{}}
}

func (r *fakeInterviewRepo) Create(ctx context.Context, interview *model.InterviewInstance) error {
	r.interviews[interview.ID] = interview
	return nil
}

func (r *fakeInterviewRepo) GetByID(ctx context.Context, id string) (*model.InterviewInstance, error) {
	return r.interviews[id], nil
}

func (r *fakeInterviewRepo) GetByUserID(ctx context.Context, userID string) ([]*model.InterviewInstance, error) {
	var out []*model.InterviewInstance
	for _, interview := range r.interviews {
		if interview.UserID == userID {
			out = append(out, interview)
		}
	}
	return out, nil
}

func (r *fakeInterviewRepo) SetCompletedRounds(ctx context.Context, id string, roundIDs []string) error {
	if r.setErr != nil {
		return r.setErr
	}
	interview, ok := r.interviews[id]
	if !ok {
		return errors.New("interview not stored")
	}
	interview.CompletedRounds = roundIDs
	return nil
}

type fakeRoundFeedbackRepo struct {
	docs   map[string]*model.RoundFeedback // key: interviewID|userID|roundID
	nextID int
	getErr error
}

func newFakeRoundFeedbackRepo() *fakeRoundFeedbackRepo {
	return &fakeRoundFeedbackRepo{docs: map[string]*model.RoundFeedback{}}
}

func roundKey(interviewID, userID, roundID string) string {
	return interviewID + "|" + userID + "|" + roundID
}

func (r *fakeRoundFeedbackRepo) GetByRound(ctx context.Context, interviewID, userID, roundID string) (*model.RoundFeedback, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	fb, ok := r.docs[roundKey(interviewID, userID, roundID)]
	if !ok {
		return nil, nil
	}
	cp := *fb
	return &cp, nil
}

func (r *fakeRoundFeedbackRepo) GetByInterview(ctx context.Context, interviewID, userID string) ([]*model.RoundFeedback, error) {
	var out []*model.RoundFeedback
	for key, fb := range r.docs {
		if strings.HasPrefix(key, interviewID+"|"+userID+"|") {
			cp := *fb
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRoundFeedbackRepo) Upsert(ctx context.Context, feedback *model.RoundFeedback) (string, error) {
	key := roundKey(feedback.InterviewID, feedback.UserID, feedback.RoundID)
	if existing, ok := r.docs[key]; ok {
		feedback.ID = existing.ID
	} else if feedback.ID == "" {
		r.nextID++
		feedback.ID = fmt.Sprintf("fb-%d", r.nextID)
	}
	cp := *feedback
	r.docs[key] = &cp
	return feedback.ID, nil
}

// seed installs a document directly, bypassing the attempt bookkeeping.
func (r *fakeRoundFeedbackRepo) seed(fb *model.RoundFeedback) {
	cp := *fb
	r.docs[roundKey(fb.InterviewID, fb.UserID, fb.RoundID)] = &cp
}

type fakeCompanyFeedbackRepo struct {
	docs    map[string]*model.CompanyFeedback // key: interviewID|userID
	saveErr error
}

func newFakeCompanyFeedbackRepo() *fakeCompanyFeedbackRepo {
	return &fakeCompanyFeedbackRepo{docs: map[string]*model.CompanyFeedback{}}
}

func (r *fakeCompanyFeedbackRepo) Save(ctx context.Context, feedback *model.CompanyFeedback) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *feedback
	r.docs[feedback.InterviewID+"|"+feedback.UserID] = &cp
	return nil
}

func (r *fakeCompanyFeedbackRepo) Get(ctx context.Context, interviewID, userID string) (*model.CompanyFeedback, error) {
	fb, ok := r.docs[interviewID+"|"+userID]
	if !ok {
		return nil, nil
	}
	cp := *fb
	return &cp, nil
}

type fakeQuestionBankRepo struct {
	banks map[string]*model.QuestionBank
}

func newFakeQuestionBankRepo() *fakeQuestionBankRepo {
	return &fakeQuestionBankRepo{banks: map[string]*model.QuestionBank{}}
}

func (r *fakeQuestionBankRepo) Create(ctx context.Context, bank *model.QuestionBank) (string, error) {
	id := fmt.Sprintf("bank-%d", len(r.banks)+1)
	bank.ID = id
	r.banks[id] = bank
	return id, nil
}

func (r *fakeQuestionBankRepo) GetByID(ctx context.Context, id string) (*model.QuestionBank, error) {
	return r.banks[id], nil
}

func (r *fakeQuestionBankRepo) List(ctx context.Context) ([]*model.QuestionBank, error) {
	var out []*model.QuestionBank
	for _, bank := range r.banks {
		out = append(out, bank)
	}
	return out, nil
}

func (r *fakeQuestionBankRepo) Update(ctx context.Context, bank *model.QuestionBank) error {
	r.banks[bank.ID] = bank
	return nil
}

func (r *fakeQuestionBankRepo) Delete(ctx context.Context, id string) error {
	delete(r.banks, id)
	return nil
}

type fakeFeedbackCache struct {
	entries map[string]*model.CompanyFeedback
	getErr  error
	setErr  error
}

func newFakeFeedbackCache() *fakeFeedbackCache {
	return &fakeFeedbackCache{entries: map[string]*model.CompanyFeedback{}}
}

func (c *fakeFeedbackCache) Get(ctx context.Context, interviewID, userID string) (*model.CompanyFeedback, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[interviewID+"|"+userID], nil
}

func (c *fakeFeedbackCache) Set(ctx context.Context, feedback *model.CompanyFeedback) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[feedback.InterviewID+"|"+feedback.UserID] = feedback
	return nil
}

func (c *fakeFeedbackCache) Invalidate(ctx context.Context, interviewID, userID string) error {
	delete(c.entries, interviewID+"|"+userID)
	return nil
}

// fakeRunner answers each Run call from a scripted stdout per stdin.
type fakeRunner struct {
	outputs map[string]string // stdin -> stdout
	err     error
}

func (r *fakeRunner) Run(ctx context.Context, sourceCode, languageID, stdin string) (*model.ExecutionResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &model.ExecutionResult{Stdout: r.outputs[stdin], Status: "Finished"}, nil
}

// fakeGrader returns a fixed evaluation.
type fakeGrader struct {
	eval *model.InterviewEvaluation
}

func (g *fakeGrader) Grade(ctx context.Context, transcript []model.TranscriptMessage) *model.InterviewEvaluation {
	return g.eval
}

func intPtr(v int) *int { return &v }
