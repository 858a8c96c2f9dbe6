package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/coverdesk/claims-go/internal/client"
	"github.com/coverdesk/claims-go/internal/domain/claim"
	"github.com/coverdesk/claims-go/internal/domain/document"
	"github.com/coverdesk/claims-go/internal/domain/questionnaire"
	"github.com/coverdesk/claims-go/internal/domain/session"
	"github.com/coverdesk/claims-go/pkg/logger"
)

// Engine drives one claimant through their claim's questionnaire: section by
// section, validating before each advance, turning selected files into
// document references before answers are persisted, and gating final
// submission on the server-confirmed completion flag.
//
// The engine owns the local draft state exclusively. A confirmed save clears
// the file drafts it uploaded so no file is ever uploaded twice; scalar
// drafts are kept as a cache of the last-entered value. No failure discards
// a draft.
type Engine struct {
	mu     sync.Mutex
	sess   session.Context
	claims client.ClaimsAPI
	docs   client.DocumentAPI

	claim  *claim.Claim
	q      *questionnaire.Questionnaire
	index  int
	ready  bool
	saving bool

	drafts map[string]questionnaire.Draft
	types  map[string]questionnaire.QuestionType
}

// NewEngine starts a questionnaire session for a fetched claim. It resumes at
// the first incomplete section; a questionnaire the server already reports
// complete lands directly on the final review step.
func NewEngine(sess session.Context, claims client.ClaimsAPI, docs client.DocumentAPI, cl *claim.Claim) (*Engine, error) {
	if cl == nil || cl.Questionnaire == nil {
		return nil, ErrNoQuestionnaire
	}
	q := cl.Questionnaire
	if len(q.Sections) == 0 {
		return nil, ErrNoQuestionnaire
	}
	q.Normalize()

	e := &Engine{
		sess:   sess,
		claims: claims,
		docs:   docs,
		claim:  cl,
		q:      q,
		drafts: make(map[string]questionnaire.Draft),
		types:  q.TypeIndex(),
	}
	for i := range q.Sections {
		if !q.Sections[i].IsComplete {
			e.index = i
			break
		}
		e.index = i
	}
	if q.IsComplete {
		e.index = len(q.Sections) - 1
		e.ready = true
	}
	return e, nil
}

// UpdateSession swaps in the caller's current token so long-lived sessions
// keep working across token refreshes.
func (e *Engine) UpdateSession(sess session.Context) {
	e.mu.Lock()
	e.sess = sess
	e.mu.Unlock()
}

// Claim returns the claim this session belongs to.
func (e *Engine) Claim() claim.Claim {
	e.mu.Lock()
	defer e.mu.Unlock()
	return *e.claim
}

func (e *Engine) CurrentIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index
}

// Ready reports whether the session reached the final review step.
func (e *Engine) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ready
}

// SetDraft records an in-progress scalar answer. File questions go through
// SelectFiles instead.
func (e *Engine) SetDraft(questionID string, value any) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.types[questionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	if t == questionnaire.TypeFile {
		return fmt.Errorf("question %s takes a file, not a value", questionID)
	}
	e.drafts[questionID] = questionnaire.Draft{Value: value}
	return nil
}

// SelectFiles is the explicit file-selection event. It only records the
// handles; nothing is uploaded until the section is saved. Callers that want
// save-on-select debounce on their side.
func (e *Engine) SelectFiles(questionID string, files []document.File) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.types[questionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	if t != questionnaire.TypeFile {
		return fmt.Errorf("question %s does not take a file", questionID)
	}
	e.drafts[questionID] = questionnaire.Draft{Files: files}
	return nil
}

// ClearDraft drops the local draft for one question.
func (e *Engine) ClearDraft(questionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.drafts, questionID)
}

// DisplayValue resolves what the UI shows for a question: the local draft
// wins as the user's most recent intent, unless it is empty, in which case
// the server-confirmed answer shows.
func (e *Engine) DisplayValue(questionID string) any {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.displayValueLocked(questionID)
}

func (e *Engine) displayValueLocked(questionID string) any {
	if d, ok := e.drafts[questionID]; ok && !d.IsEmpty() {
		if len(d.Files) > 0 {
			names := make([]string, len(d.Files))
			for i, f := range d.Files {
				names[i] = f.Name
			}
			return names
		}
		return d.Value
	}
	if q := e.q.Question(questionID); q != nil && q.Answer != nil {
		return q.Answer.Value()
	}
	return nil
}

// Previous steps back one section. Pure navigation: no validation, no
// network call.
func (e *Engine) Previous() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.index == 0 {
		return ErrAtFirstSection
	}
	e.index--
	e.ready = false
	return nil
}

// Next validates the current section, saves its answers, and advances. On
// validation failure nothing is sent; on save failure the index stays put and
// the action can be retried.
func (e *Engine) Next(ctx context.Context) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	e.mu.Lock()
	if !e.claim.Editable() {
		e.mu.Unlock()
		return ErrClaimNotEditable
	}
	if e.ready {
		e.mu.Unlock()
		return ErrAtFinalReview
	}
	sec := e.q.Sections[e.index]
	if verrs := e.validateSectionLocked(&sec); len(verrs) > 0 {
		e.mu.Unlock()
		return verrs
	}
	e.mu.Unlock()

	if err := e.save(ctx, sec.SectionID); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.index < len(e.q.Sections)-1 {
		e.index++
		return nil
	}
	if !e.q.IsComplete {
		return ErrQuestionnaireIncomplete
	}
	e.ready = true
	return nil
}

// SaveSection persists the current section without advancing, for explicit
// "save draft" actions in the stepper.
func (e *Engine) SaveSection(ctx context.Context) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	e.mu.Lock()
	if !e.claim.Editable() {
		e.mu.Unlock()
		return ErrClaimNotEditable
	}
	sectionID := e.q.Sections[e.index].SectionID
	e.mu.Unlock()

	return e.save(ctx, sectionID)
}

// Submit re-validates the current section, persists every outstanding draft,
// and — only if the server reports the questionnaire complete — submits the
// claim and moves it to the employee status.
func (e *Engine) Submit(ctx context.Context, claimAmount float64) error {
	if err := e.begin(); err != nil {
		return err
	}
	defer e.end()

	e.mu.Lock()
	if !e.claim.Editable() {
		e.mu.Unlock()
		return ErrClaimNotEditable
	}
	sec := e.q.Sections[e.index]
	if verrs := e.validateSectionLocked(&sec); len(verrs) > 0 {
		e.mu.Unlock()
		return verrs
	}
	e.mu.Unlock()

	if err := e.save(ctx, ""); err != nil {
		return err
	}

	e.mu.Lock()
	if !e.q.IsComplete {
		e.mu.Unlock()
		return ErrQuestionnaireIncomplete
	}
	documents := e.confirmedDocumentsLocked()
	sess, claimID := e.sess, e.claim.ID
	e.mu.Unlock()

	if _, err := e.claims.SubmitClaim(ctx, sess, claimID, claimAmount, documents); err != nil {
		return &SubmitError{Err: err}
	}
	updated, err := e.claims.UpdateClaimStatus(ctx, sess, claimID, string(claim.StatusEmployee), "")
	if err != nil {
		return &SubmitError{Err: err}
	}

	e.mu.Lock()
	e.claim.Status = updated.Status
	if updated.SubmittedAt != nil {
		e.claim.SubmittedAt = updated.SubmittedAt
	}
	e.ready = true
	e.mu.Unlock()
	return nil
}

// View assembles the stepper's rendering state.
func (e *Engine) View() questionnaire.View {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := questionnaire.View{
		ClaimID:           e.claim.ID,
		CurrentIndex:      e.index,
		ReadyForReview:    e.ready,
		TotalQuestions:    e.q.TotalQuestions,
		AnsweredQuestions: e.q.AnsweredQuestions,
		IsComplete:        e.q.IsComplete,
	}
	for i := range e.q.Sections {
		sec := &e.q.Sections[i]
		sv := questionnaire.SectionView{
			SectionID:   sec.SectionID,
			Title:       sec.Title,
			Description: sec.Description,
			IsComplete:  sec.IsComplete,
			Current:     i == e.index,
		}
		for _, qr := range sec.Questions {
			qv := questionnaire.QuestionView{
				QuestionID:   qr.QuestionID,
				Text:         qr.Text,
				Type:         qr.Type,
				Required:     qr.Required,
				Answered:     qr.Answered,
				Options:      qr.Options,
				DisplayValue: e.displayValueLocked(qr.QuestionID),
			}
			if d, ok := e.drafts[qr.QuestionID]; ok {
				for _, f := range d.Files {
					qv.PendingFiles = append(qv.PendingFiles, f.Name)
				}
			}
			sv.Questions = append(sv.Questions, qv)
		}
		v.Sections = append(v.Sections, sv)
	}
	return v
}

// begin takes the saving guard; a second save-bearing action on the same
// claim is rejected until the first settles.
func (e *Engine) begin() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.saving {
		return ErrSaveInProgress
	}
	e.saving = true
	return nil
}

func (e *Engine) end() {
	e.mu.Lock()
	e.saving = false
	e.mu.Unlock()
}

func (e *Engine) validateSectionLocked(sec *questionnaire.Section) ValidationErrors {
	var verrs ValidationErrors
	for _, qr := range sec.Questions {
		if !qr.Required {
			continue
		}
		if d, ok := e.drafts[qr.QuestionID]; ok && !d.IsEmpty() {
			continue
		}
		if qr.Answered {
			continue
		}
		verrs = append(verrs, FieldError{
			QuestionID: qr.QuestionID,
			Message:    "this question is required",
		})
	}
	return verrs
}

type pendingUpload struct {
	questionID string
	files      []document.File
}

// save persists drafts, scoped to one section when sectionID is non-empty or
// to the whole questionnaire otherwise. Files are uploaded first, one at a
// time, and their document identifiers replace the file handles in the batch;
// any upload failure aborts the entire save. Empty scalar drafts never enter
// the batch, and an empty batch is a no-op success with no network call.
func (e *Engine) save(ctx context.Context, sectionID string) error {
	e.mu.Lock()
	batch, uploads := e.collectLocked(sectionID)
	sess, claimID := e.sess, e.claim.ID
	claimTag := string(e.claim.ClaimType)
	e.mu.Unlock()

	for _, up := range uploads {
		ids := make([]string, 0, len(up.files))
		for _, f := range up.files {
			doc, err := e.docs.UploadDocument(ctx, sess, f, document.UploadMetadata{
				Type:           "claim",
				DocType:        "questionnaire-answer",
				UploadedBy:     sess.UserID,
				UploadedByRole: sess.Role,
				RefID:          claimID,
				Description:    "answer for question " + up.questionID,
				Tags:           []string{claimTag},
			})
			if err != nil {
				logger.Error(ctx, "file upload failed", "question", up.questionID, "error", err)
				return &UploadError{QuestionID: up.questionID, Err: err}
			}
			ids = append(ids, doc.ID)
		}
		var value any = ids[0]
		if len(ids) > 1 {
			value = ids
		}
		batch = append(batch, questionnaire.AnswerSubmission{QuestionID: up.questionID, Value: value})
	}

	if len(batch) == 0 {
		logger.Debug(ctx, "no pending answers to save")
		return nil
	}

	var res *questionnaire.SaveResult
	var err error
	if sectionID != "" {
		res, err = e.claims.SubmitSectionAnswers(ctx, sess, claimID, sectionID, batch)
	} else {
		res, err = e.claims.SubmitAllAnswers(ctx, sess, claimID, batch)
	}
	if err != nil {
		logger.Warn(ctx, "failed to save answers", "error", err)
		return &SaveError{Err: err}
	}

	e.mu.Lock()
	e.q.MergeSave(res)
	e.types = e.q.TypeIndex()
	// Clear only the exact file selections this batch uploaded. A file
	// reselected while the save was in flight is a different selection and
	// must stay pending.
	for _, up := range uploads {
		if cur, ok := e.drafts[up.questionID]; ok && sameSelection(cur.Files, up.files) {
			delete(e.drafts, up.questionID)
		}
	}
	e.mu.Unlock()
	logger.Info(ctx, "answers saved", "section", sectionID, "answers", len(batch))
	return nil
}

// sameSelection reports whether both slices are the very same selection, not
// merely equal content.
func sameSelection(a, b []document.File) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// collectLocked builds the scalar batch and the upload plan in question
// order. Questions outside the scoped section and drafts with empty values
// are skipped.
func (e *Engine) collectLocked(sectionID string) ([]questionnaire.AnswerSubmission, []pendingUpload) {
	var batch []questionnaire.AnswerSubmission
	var uploads []pendingUpload
	for i := range e.q.Sections {
		sec := &e.q.Sections[i]
		if sectionID != "" && sec.SectionID != sectionID {
			continue
		}
		for _, qr := range sec.Questions {
			d, ok := e.drafts[qr.QuestionID]
			if !ok || d.IsEmpty() {
				continue
			}
			if qr.Type == questionnaire.TypeFile {
				uploads = append(uploads, pendingUpload{questionID: qr.QuestionID, files: d.Files})
				continue
			}
			batch = append(batch, questionnaire.AnswerSubmission{QuestionID: qr.QuestionID, Value: d.Value})
		}
	}
	return batch, uploads
}

func (e *Engine) confirmedDocumentsLocked() []string {
	var ids []string
	for i := range e.q.Sections {
		for _, qr := range e.q.Sections[i].Questions {
			if qr.Type != questionnaire.TypeFile || qr.Answer == nil {
				continue
			}
			if qr.Answer.Kind == questionnaire.KindFile && qr.Answer.FileID != "" {
				ids = append(ids, qr.Answer.FileID)
			}
		}
	}
	return ids
}
