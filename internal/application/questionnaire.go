package application

import (
	"context"
	"sync"

	"github.com/coverdesk/claims-go/internal/client"
	"github.com/coverdesk/claims-go/internal/domain/claim"
	"github.com/coverdesk/claims-go/internal/domain/document"
	"github.com/coverdesk/claims-go/internal/domain/questionnaire"
	"github.com/coverdesk/claims-go/internal/domain/session"
	"github.com/coverdesk/claims-go/pkg/logger"
)

// claimContext stamps the claim onto the context so log lines from the
// engine and clients carry it.
func claimContext(ctx context.Context, claimID string) context.Context {
	return context.WithValue(ctx, logger.ClaimIDKey, claimID)
}

// QuestionnaireService keeps one live progression engine per claim being
// filled in. An engine lost to a restart is rebuilt from the backend on the
// next request; drafts are transient by design.
type QuestionnaireService struct {
	mu      sync.Mutex
	claims  client.ClaimsAPI
	docs    client.DocumentAPI
	engines map[string]*Engine
}

func NewQuestionnaireService(claims client.ClaimsAPI, docs client.DocumentAPI) *QuestionnaireService {
	return &QuestionnaireService{
		claims:  claims,
		docs:    docs,
		engines: make(map[string]*Engine),
	}
}

// Register starts a session for a freshly created claim.
func (s *QuestionnaireService) Register(sess session.Context, cl *claim.Claim) (*Engine, error) {
	eng, err := NewEngine(sess, s.claims, s.docs, cl)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.engines[cl.ID] = eng
	s.mu.Unlock()
	return eng, nil
}

// Drop forgets the session for a claim, discarding any local drafts.
func (s *QuestionnaireService) Drop(claimID string) {
	s.mu.Lock()
	delete(s.engines, claimID)
	s.mu.Unlock()
}

// engine returns the live session for a claim, fetching the claim and
// starting a fresh one when none exists.
func (s *QuestionnaireService) engine(ctx context.Context, sess session.Context, claimID string) (*Engine, error) {
	s.mu.Lock()
	eng, ok := s.engines[claimID]
	s.mu.Unlock()
	if ok {
		eng.UpdateSession(sess)
		return eng, nil
	}

	cl, err := s.claims.GetClaim(ctx, sess, claimID)
	if err != nil {
		return nil, err
	}
	eng, err = NewEngine(sess, s.claims, s.docs, cl)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	if existing, ok := s.engines[claimID]; ok {
		eng = existing
		eng.UpdateSession(sess)
	} else {
		s.engines[claimID] = eng
	}
	s.mu.Unlock()
	return eng, nil
}

func (s *QuestionnaireService) View(ctx context.Context, sess session.Context, claimID string) (questionnaire.View, error) {
	eng, err := s.engine(ctx, sess, claimID)
	if err != nil {
		return questionnaire.View{}, err
	}
	return eng.View(), nil
}

// SaveDraft records in-progress scalar answers without any network call.
func (s *QuestionnaireService) SaveDraft(ctx context.Context, sess session.Context, claimID string, answers []questionnaire.DraftInput) (questionnaire.View, error) {
	eng, err := s.engine(ctx, sess, claimID)
	if err != nil {
		return questionnaire.View{}, err
	}
	for _, a := range answers {
		if err := eng.SetDraft(a.QuestionID, a.Value); err != nil {
			return questionnaire.View{}, err
		}
	}
	return eng.View(), nil
}

// SelectFile records a selected file for a file question.
func (s *QuestionnaireService) SelectFile(ctx context.Context, sess session.Context, claimID, questionID string, files []document.File) (questionnaire.View, error) {
	eng, err := s.engine(ctx, sess, claimID)
	if err != nil {
		return questionnaire.View{}, err
	}
	if err := eng.SelectFiles(questionID, files); err != nil {
		return questionnaire.View{}, err
	}
	return eng.View(), nil
}

func (s *QuestionnaireService) Next(ctx context.Context, sess session.Context, claimID string) (questionnaire.View, error) {
	ctx = claimContext(ctx, claimID)
	eng, err := s.engine(ctx, sess, claimID)
	if err != nil {
		return questionnaire.View{}, err
	}
	if err := eng.Next(ctx); err != nil {
		return questionnaire.View{}, err
	}
	return eng.View(), nil
}

func (s *QuestionnaireService) Previous(ctx context.Context, sess session.Context, claimID string) (questionnaire.View, error) {
	eng, err := s.engine(ctx, sess, claimID)
	if err != nil {
		return questionnaire.View{}, err
	}
	if err := eng.Previous(); err != nil {
		return questionnaire.View{}, err
	}
	return eng.View(), nil
}

func (s *QuestionnaireService) Save(ctx context.Context, sess session.Context, claimID string) (questionnaire.View, error) {
	ctx = claimContext(ctx, claimID)
	eng, err := s.engine(ctx, sess, claimID)
	if err != nil {
		return questionnaire.View{}, err
	}
	if err := eng.SaveSection(ctx); err != nil {
		return questionnaire.View{}, err
	}
	return eng.View(), nil
}

func (s *QuestionnaireService) Submit(ctx context.Context, sess session.Context, claimID string, claimAmount float64) (claim.Claim, error) {
	ctx = claimContext(ctx, claimID)
	eng, err := s.engine(ctx, sess, claimID)
	if err != nil {
		return claim.Claim{}, err
	}
	if err := eng.Submit(ctx, claimAmount); err != nil {
		return claim.Claim{}, err
	}
	return eng.Claim(), nil
}
