package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"hackfest-backend/internal/models"
	"hackfest-backend/internal/notify"
	"hackfest-backend/internal/repository"
	"hackfest-backend/internal/sentiment"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var errStoreDown = errors.New("store down")

type fakeTeamStore struct {
	mu    sync.Mutex
	teams []models.Team
	err   error
}

func (s *fakeTeamStore) Create(ctx context.Context, team *models.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for _, t := range s.teams {
		if t.Leader.Email == team.Leader.Email {
			return repository.ErrDuplicate
		}
	}
	team.ID = bson.NewObjectID()
	s.teams = append(s.teams, *team)
	return nil
}

func (s *fakeTeamStore) find(id bson.ObjectID) *models.Team {
	for i := range s.teams {
		if s.teams[i].ID == id {
			return &s.teams[i]
		}
	}
	return nil
}

func (s *fakeTeamStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if t := s.find(id); t != nil {
		copied := *t
		return &copied, nil
	}
	return nil, nil
}

func (s *fakeTeamStore) FindByLeaderEmail(ctx context.Context, email string) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, t := range s.teams {
		if t.Leader.Email == email {
			return &t, nil
		}
	}
	return nil, nil
}

func (s *fakeTeamStore) List(ctx context.Context) ([]models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.Team(nil), s.teams...), nil
}

func (s *fakeTeamStore) update(id bson.ObjectID, fn func(t *models.Team)) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	t := s.find(id)
	if t == nil {
		return nil, nil
	}
	fn(t)
	copied := *t
	return &copied, nil
}

func (s *fakeTeamStore) SaveScores(ctx context.Context, id bson.ObjectID, scores models.Scores, comments string) (*models.Team, error) {
	return s.update(id, func(t *models.Team) {
		total := scores.Total()
		t.Scores = &scores
		t.Score = &total
		t.Comments = comments
	})
}

func (s *fakeTeamStore) UpdateStatus(ctx context.Context, id bson.ObjectID, status models.TeamStatus) (*models.Team, error) {
	return s.update(id, func(t *models.Team) { t.Status = status })
}

func (s *fakeTeamStore) SetPayment(ctx context.Context, id bson.ObjectID, payment models.Payment) (*models.Team, error) {
	return s.update(id, func(t *models.Team) { t.Payment = &payment })
}

func (s *fakeTeamStore) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	for i := range s.teams {
		if s.teams[i].ID == id {
			s.teams = append(s.teams[:i], s.teams[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeRegistrationStore struct {
	mu   sync.Mutex
	regs []models.Registration
}

func (s *fakeRegistrationStore) conflicts(reg *models.Registration, skip bson.ObjectID) bool {
	for _, r := range s.regs {
		if r.ID != skip && r.Email == reg.Email && r.Workshop == reg.Workshop {
			return true
		}
	}
	return false
}

func (s *fakeRegistrationStore) Create(ctx context.Context, reg *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conflicts(reg, bson.NilObjectID) {
		return repository.ErrDuplicate
	}
	reg.ID = bson.NewObjectID()
	s.regs = append(s.regs, *reg)
	return nil
}

func (s *fakeRegistrationStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.regs {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, nil
}

func (s *fakeRegistrationStore) List(ctx context.Context) ([]models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Registration(nil), s.regs...), nil
}

func (s *fakeRegistrationStore) Update(ctx context.Context, id bson.ObjectID, reg *models.Registration) (*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.regs {
		if s.regs[i].ID != id {
			continue
		}
		if s.conflicts(reg, id) {
			return nil, repository.ErrDuplicate
		}
		reg.ID = id
		reg.Manual = s.regs[i].Manual
		s.regs[i] = *reg
		return reg, nil
	}
	return nil, nil
}

func (s *fakeRegistrationStore) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.regs {
		if s.regs[i].ID == id {
			s.regs = append(s.regs[:i], s.regs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeFeedbackStore struct {
	items []models.Feedback
	err   error
}

func (s *fakeFeedbackStore) Create(ctx context.Context, f *models.Feedback) error {
	if s.err != nil {
		return s.err
	}
	f.ID = bson.NewObjectID()
	s.items = append(s.items, *f)
	return nil
}

func (s *fakeFeedbackStore) List(ctx context.Context) ([]models.Feedback, error) {
	return s.items, s.err
}

type fakeAnalysisStore struct {
	runs []models.AnalysisRun
}

func (s *fakeAnalysisStore) Create(ctx context.Context, run *models.AnalysisRun) error {
	run.ID = bson.NewObjectID()
	s.runs = append(s.runs, *run)
	return nil
}

func (s *fakeAnalysisStore) Latest(ctx context.Context) (*models.AnalysisRun, error) {
	if len(s.runs) == 0 {
		return nil, nil
	}
	return &s.runs[len(s.runs)-1], nil
}

type fakeRunner struct {
	gotFeedback []sentiment.Feedback
	gotTeams    []sentiment.Team
	report      sentiment.Report
	err         error
}

func (r *fakeRunner) Run(ctx context.Context, feedback []sentiment.Feedback, teams []sentiment.Team) (sentiment.Report, error) {
	r.gotFeedback = feedback
	r.gotTeams = teams
	return r.report, r.err
}

type recordingNotifier struct {
	sent chan notify.Message
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(chan notify.Message, 8)}
}

func (n *recordingNotifier) Send(ctx context.Context, msg notify.Message) error {
	n.sent <- msg
	return nil
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
