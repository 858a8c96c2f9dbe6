package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/coverdesk/claims-go/internal/application"
	"github.com/coverdesk/claims-go/internal/client/mock"
	"github.com/coverdesk/claims-go/internal/domain/claim"
	"github.com/coverdesk/claims-go/internal/domain/document"
	"github.com/coverdesk/claims-go/internal/domain/questionnaire"
	"github.com/coverdesk/claims-go/internal/domain/session"
	"github.com/coverdesk/claims-go/internal/testutils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func setupEngineMocks(t *testing.T) (*mock.MockClaimsAPI, *mock.MockDocumentAPI, session.Context) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClaims := mock.NewMockClaimsAPI(ctrl)
	mockDocs := mock.NewMockDocumentAPI(ctrl)
	sess := session.Context{AuthToken: "token123", UserID: "emp-7", Username: "alice", Role: session.RoleEmployee}
	return mockClaims, mockDocs, sess
}

func newTestClaim() *claim.Claim {
	return &claim.Claim{
		ID:            "clm-1",
		PolicyID:      "pol-1",
		ClaimType:     claim.TypeLife,
		ClaimOption:   "hospitalization",
		Status:        claim.StatusDraft,
		Questionnaire: testutils.NewTestQuestionnaire("clm-1"),
	}
}

// newTestClaimFirstSectionDone marks s1 answered so the engine resumes on the
// file section.
func newTestClaimFirstSectionDone() *claim.Claim {
	cl := newTestClaim()
	q := cl.Questionnaire
	s1 := q.Section("s1")
	s1.IsComplete = true
	s1.Questions[0].Answered = true
	s1.Questions[0].Answer = &questionnaire.Answer{Kind: questionnaire.KindText, Text: "broken arm"}
	q.AnsweredQuestions = 1
	return cl
}

func TestNext_MissingRequiredBlocksWithoutNetwork(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	eng, err := application.NewEngine(sess, mockClaims, mockDocs, newTestClaim())
	assert.NoError(t, err)

	err = eng.Next(context.Background())

	var verrs application.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 1)
	assert.Equal(t, "q1", verrs[0].QuestionID)
	assert.Equal(t, 0, eng.CurrentIndex())
}

func TestNext_SavesSectionAndAdvances(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	eng, err := application.NewEngine(sess, mockClaims, mockDocs, newTestClaim())
	assert.NoError(t, err)
	assert.NoError(t, eng.SetDraft("q1", "broken arm"))

	wantBatch := []questionnaire.AnswerSubmission{{QuestionID: "q1", Value: "broken arm"}}
	savedSection := &questionnaire.Section{
		SectionID:  "s1",
		Title:      "Incident details",
		Order:      1,
		IsComplete: true,
		Questions: []questionnaire.QuestionResponse{
			{QuestionID: "q1", Type: questionnaire.TypeText, Required: true, Answered: true, Order: 1,
				Answer: &questionnaire.Answer{Kind: questionnaire.KindText, Text: "broken arm"}},
			{QuestionID: "q2", Type: questionnaire.TypeNumber, Order: 2},
		},
	}
	mockClaims.EXPECT().
		SubmitSectionAnswers(gomock.Any(), sess, "clm-1", "s1", gomock.Eq(wantBatch)).
		Return(&questionnaire.SaveResult{
			Section:  savedSection,
			Progress: &questionnaire.Progress{TotalQuestions: 3, AnsweredQuestions: 1},
		}, nil)

	err = eng.Next(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, eng.CurrentIndex())
	assert.False(t, eng.Ready())
}

func TestNext_UploadsFileAndClearsDraft(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	eng, err := application.NewEngine(sess, mockClaims, mockDocs, newTestClaimFirstSectionDone())
	assert.NoError(t, err)
	assert.Equal(t, 1, eng.CurrentIndex())

	file := document.File{Name: "receipt.pdf", ContentType: "application/pdf", Content: []byte("%PDF-")}
	assert.NoError(t, eng.SelectFiles("qFile", []document.File{file}))

	mockDocs.EXPECT().
		UploadDocument(gomock.Any(), sess, file, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ session.Context, _ document.File, meta document.UploadMetadata) (*document.Document, error) {
			assert.Equal(t, "claim", meta.Type)
			assert.Equal(t, "clm-1", meta.RefID)
			assert.Equal(t, "emp-7", meta.UploadedBy)
			assert.Contains(t, meta.Tags, "life")
			return &document.Document{ID: "doc123", Name: "receipt.pdf"}, nil
		})

	wantBatch := []questionnaire.AnswerSubmission{{QuestionID: "qFile", Value: "doc123"}}
	mockClaims.EXPECT().
		SubmitSectionAnswers(gomock.Any(), sess, "clm-1", "s2", gomock.Eq(wantBatch)).
		Return(&questionnaire.SaveResult{
			Section: &questionnaire.Section{
				SectionID:  "s2",
				Order:      2,
				IsComplete: true,
				Questions: []questionnaire.QuestionResponse{
					{QuestionID: "qFile", Type: questionnaire.TypeFile, Required: true, Answered: true, Order: 1,
						Answer: &questionnaire.Answer{Kind: questionnaire.KindFile, FileID: "doc123"}},
				},
			},
			Progress: &questionnaire.Progress{TotalQuestions: 3, AnsweredQuestions: 2, IsComplete: true},
		}, nil)

	err = eng.Next(context.Background())

	assert.NoError(t, err)
	assert.True(t, eng.Ready())

	// The uploaded file's draft is gone, so nothing is pending re-upload.
	view := eng.View()
	for _, sec := range view.Sections {
		for _, q := range sec.Questions {
			assert.Empty(t, q.PendingFiles)
		}
	}
	assert.Equal(t, "doc123", eng.DisplayValue("qFile"))
}

func TestNext_FileReselectedDuringSaveStaysPending(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	eng, err := application.NewEngine(sess, mockClaims, mockDocs, newTestClaimFirstSectionDone())
	assert.NoError(t, err)

	oldFile := document.File{Name: "old.pdf", Content: []byte("v1")}
	newFile := document.File{Name: "new.pdf", Content: []byte("v2")}
	assert.NoError(t, eng.SelectFiles("qFile", []document.File{oldFile}))

	mockDocs.EXPECT().
		UploadDocument(gomock.Any(), sess, oldFile, gomock.Any()).
		DoAndReturn(func(context.Context, session.Context, document.File, document.UploadMetadata) (*document.Document, error) {
			// The user picks a replacement while the first file is in flight.
			if err := eng.SelectFiles("qFile", []document.File{newFile}); err != nil {
				return nil, err
			}
			return &document.Document{ID: "doc123", Name: "old.pdf"}, nil
		})
	mockClaims.EXPECT().
		SubmitSectionAnswers(gomock.Any(), sess, "clm-1", "s2", gomock.Any()).
		Return(&questionnaire.SaveResult{
			Section: &questionnaire.Section{
				SectionID:  "s2",
				Order:      2,
				IsComplete: true,
				Questions: []questionnaire.QuestionResponse{
					{QuestionID: "qFile", Type: questionnaire.TypeFile, Required: true, Answered: true, Order: 1,
						Answer: &questionnaire.Answer{Kind: questionnaire.KindFile, FileID: "doc123"}},
				},
			},
			Progress: &questionnaire.Progress{TotalQuestions: 3, AnsweredQuestions: 2, IsComplete: true},
		}, nil)

	assert.NoError(t, eng.Next(context.Background()))

	// The never-uploaded replacement survives the post-save cleanup.
	view := eng.View()
	assert.Equal(t, []string{"new.pdf"}, view.Sections[1].Questions[0].PendingFiles)
	assert.Equal(t, []string{"new.pdf"}, eng.DisplayValue("qFile"))
}

func TestNext_UploadFailureKeepsDraftAndIndex(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	eng, err := application.NewEngine(sess, mockClaims, mockDocs, newTestClaimFirstSectionDone())
	assert.NoError(t, err)

	file := document.File{Name: "receipt.pdf", Content: []byte("x")}
	assert.NoError(t, eng.SelectFiles("qFile", []document.File{file}))

	mockDocs.EXPECT().
		UploadDocument(gomock.Any(), sess, file, gomock.Any()).
		Return(nil, errors.New("storage unavailable"))

	err = eng.Next(context.Background())

	var uerr *application.UploadError
	assert.ErrorAs(t, err, &uerr)
	assert.Equal(t, "qFile", uerr.QuestionID)
	assert.Equal(t, 1, eng.CurrentIndex())

	view := eng.View()
	assert.Equal(t, []string{"receipt.pdf"}, view.Sections[1].Questions[0].PendingFiles)
}

func TestSaveSection_FailureKeepsDrafts(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	eng, err := application.NewEngine(sess, mockClaims, mockDocs, newTestClaim())
	assert.NoError(t, err)
	assert.NoError(t, eng.SetDraft("q1", "broken arm"))

	mockClaims.EXPECT().
		SubmitSectionAnswers(gomock.Any(), sess, "clm-1", "s1", gomock.Any()).
		Return(nil, errors.New("backend down"))

	err = eng.SaveSection(context.Background())

	var serr *application.SaveError
	assert.ErrorAs(t, err, &serr)
	assert.Equal(t, 0, eng.CurrentIndex())
	assert.Equal(t, "broken arm", eng.DisplayValue("q1"))
}

func TestSaveSection_EmptyDraftsAreNoOp(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	eng, err := application.NewEngine(sess, mockClaims, mockDocs, newTestClaim())
	assert.NoError(t, err)
	assert.NoError(t, eng.SetDraft("q1", ""))

	// No expectations registered: an empty batch must not hit the network.
	assert.NoError(t, eng.SaveSection(context.Background()))
}

func TestSubmit_PersistsThenMovesClaimToEmployee(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	cl := newTestClaimFirstSectionDone()
	q := cl.Questionnaire
	s2 := q.Section("s2")
	s2.IsComplete = true
	s2.Questions[0].Answered = true
	s2.Questions[0].Answer = &questionnaire.Answer{Kind: questionnaire.KindFile, FileID: "doc123"}
	q.AnsweredQuestions = 2
	q.IsComplete = true

	eng, err := application.NewEngine(sess, mockClaims, mockDocs, cl)
	assert.NoError(t, err)
	assert.True(t, eng.Ready())

	mockClaims.EXPECT().
		SubmitClaim(gomock.Any(), sess, "clm-1", 250.0, []string{"doc123"}).
		Return(cl, nil)
	mockClaims.EXPECT().
		UpdateClaimStatus(gomock.Any(), sess, "clm-1", "employee", "").
		Return(&claim.Claim{ID: "clm-1", Status: claim.StatusEmployee}, nil)

	err = eng.Submit(context.Background(), 250.0)

	assert.NoError(t, err)
	assert.Equal(t, claim.StatusEmployee, eng.Claim().Status)
}

func TestSubmit_RefusedWhileServerReportsIncomplete(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	cl := newTestClaimFirstSectionDone()
	s2 := cl.Questionnaire.Section("s2")
	s2.Questions[0].Answered = true
	s2.Questions[0].Answer = &questionnaire.Answer{Kind: questionnaire.KindFile, FileID: "doc123"}
	// The server has not confirmed completion; local state never overrides it.

	eng, err := application.NewEngine(sess, mockClaims, mockDocs, cl)
	assert.NoError(t, err)

	err = eng.Submit(context.Background(), 100)

	assert.ErrorIs(t, err, application.ErrQuestionnaireIncomplete)
	assert.Equal(t, claim.StatusDraft, eng.Claim().Status)
}

func TestNext_AtFinalReview(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	cl := newTestClaimFirstSectionDone()
	q := cl.Questionnaire
	s2 := q.Section("s2")
	s2.IsComplete = true
	s2.Questions[0].Answered = true
	s2.Questions[0].Answer = &questionnaire.Answer{Kind: questionnaire.KindFile, FileID: "doc123"}
	q.IsComplete = true

	eng, err := application.NewEngine(sess, mockClaims, mockDocs, cl)
	assert.NoError(t, err)
	assert.True(t, eng.Ready())

	assert.ErrorIs(t, eng.Next(context.Background()), application.ErrAtFinalReview)
	assert.True(t, eng.Ready())
}

func TestPrevious_AtFirstSection(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	eng, err := application.NewEngine(sess, mockClaims, mockDocs, newTestClaim())
	assert.NoError(t, err)

	assert.ErrorIs(t, eng.Previous(), application.ErrAtFirstSection)
	assert.Equal(t, 0, eng.CurrentIndex())
}

func TestPrevious_LeavesFinalReview(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	cl := newTestClaimFirstSectionDone()
	q := cl.Questionnaire
	s2 := q.Section("s2")
	s2.IsComplete = true
	s2.Questions[0].Answered = true
	s2.Questions[0].Answer = &questionnaire.Answer{Kind: questionnaire.KindFile, FileID: "doc123"}
	q.IsComplete = true

	eng, err := application.NewEngine(sess, mockClaims, mockDocs, cl)
	assert.NoError(t, err)
	assert.True(t, eng.Ready())
	assert.Equal(t, 1, eng.CurrentIndex())

	assert.NoError(t, eng.Previous())
	assert.False(t, eng.Ready())
	assert.Equal(t, 0, eng.CurrentIndex())
}

func TestDisplayValue_DraftWinsUnlessEmpty(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	eng, err := application.NewEngine(sess, mockClaims, mockDocs, newTestClaimFirstSectionDone())
	assert.NoError(t, err)

	// Server answer shows while no draft exists.
	assert.Equal(t, "broken arm", eng.DisplayValue("q1"))

	// A non-empty draft takes over.
	assert.NoError(t, eng.SetDraft("q1", "sprained wrist"))
	assert.Equal(t, "sprained wrist", eng.DisplayValue("q1"))

	// An empty draft falls back to the confirmed answer.
	assert.NoError(t, eng.SetDraft("q1", ""))
	assert.Equal(t, "broken arm", eng.DisplayValue("q1"))

	eng.ClearDraft("q1")
	assert.Equal(t, "broken arm", eng.DisplayValue("q1"))
}

func TestSetDraft_RejectsUnknownAndFileQuestions(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	eng, err := application.NewEngine(sess, mockClaims, mockDocs, newTestClaim())
	assert.NoError(t, err)

	assert.ErrorIs(t, eng.SetDraft("nope", "x"), application.ErrUnknownQuestion)
	assert.Error(t, eng.SetDraft("qFile", "not-a-file"))
	assert.Error(t, eng.SelectFiles("q1", []document.File{{Name: "a.txt"}}))
}

func TestNext_BlockedWhenClaimNotEditable(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	cl := newTestClaim()
	cl.Status = claim.StatusHR
	eng, err := application.NewEngine(sess, mockClaims, mockDocs, cl)
	assert.NoError(t, err)

	assert.ErrorIs(t, eng.Next(context.Background()), application.ErrClaimNotEditable)
}

func TestNewEngine_NoQuestionnaire(t *testing.T) {
	mockClaims, mockDocs, sess := setupEngineMocks(t)

	_, err := application.NewEngine(sess, mockClaims, mockDocs, &claim.Claim{ID: "clm-1"})
	assert.ErrorIs(t, err, application.ErrNoQuestionnaire)
}
