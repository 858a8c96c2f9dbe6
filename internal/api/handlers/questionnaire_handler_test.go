package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coverdesk/claims-go/internal/api/middleware"
	"github.com/coverdesk/claims-go/internal/client"
	"github.com/coverdesk/claims-go/internal/config"
	"github.com/coverdesk/claims-go/internal/domain/claim"
	"github.com/coverdesk/claims-go/internal/domain/questionnaire"
	"github.com/coverdesk/claims-go/internal/domain/session"
	"github.com/coverdesk/claims-go/internal/testutils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type portal struct {
	router  *gin.Engine
	backend *testutils.FakeBackend
	token   string
}

func setupPortal(t *testing.T) *portal {
	config.LoadConfig()
	middleware.Init()

	backend := testutils.NewFakeBackend()
	t.Cleanup(backend.Close)

	clients := client.New(client.Config{ClaimsBaseURL: backend.URL(), DocumentsBaseURL: backend.URL()})
	catalog, err := config.LoadCatalog("")
	assert.NoError(t, err)

	token, err := middleware.GenerateToken("emp-7", "alice", session.RoleEmployee, time.Hour)
	assert.NoError(t, err)

	return &portal{
		router:  testutils.SetupRouter(clients, catalog),
		backend: backend,
		token:   token,
	}
}

func (p *portal) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	return p.doAs(t, p.token, method, path, body)
}

func (p *portal) doAs(t *testing.T, token, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	contentType := ""
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewBuffer(raw)
		contentType = "application/json"
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	w := httptest.NewRecorder()
	p.router.ServeHTTP(w, req)
	return w
}

func (p *portal) startClaim(t *testing.T) string {
	w := p.do(t, http.MethodPost, "/claims", gin.H{
		"policyId":    "pol-1",
		"claimType":   "life",
		"claimOption": "hospitalization",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var cl claim.Claim
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cl))
	assert.NotEmpty(t, cl.ID)
	return cl.ID
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) questionnaire.View {
	var v questionnaire.View
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestQuestionnaireFlow_EndToEnd(t *testing.T) {
	p := setupPortal(t)
	claimID := p.startClaim(t)

	// Fresh questionnaire starts on the first section.
	w := p.do(t, http.MethodGet, "/claims/"+claimID+"/questionnaire", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	assert.Equal(t, 0, view.CurrentIndex)
	assert.False(t, view.ReadyForReview)

	// Advancing with the required question blank is refused locally.
	w = p.do(t, http.MethodPost, "/claims/"+claimID+"/questionnaire/next", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "q1")
	assert.Zero(t, p.backend.SaveCalls)

	// Draft the answer, then advance.
	w = p.do(t, http.MethodPut, "/claims/"+claimID+"/questionnaire/draft", gin.H{
		"answers": []gin.H{{"questionId": "q1", "value": "broken arm"}},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, p.backend.SaveCalls)

	w = p.do(t, http.MethodPost, "/claims/"+claimID+"/questionnaire/next", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	assert.Equal(t, 1, view.CurrentIndex)
	assert.Equal(t, 1, p.backend.SaveCalls)

	// Select a file for the evidence question.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("files", "receipt.pdf")
	assert.NoError(t, err)
	fw.Write([]byte("%PDF-content"))
	assert.NoError(t, mw.Close())

	req, _ := http.NewRequest(http.MethodPost, "/claims/"+claimID+"/questionnaire/questions/qFile/files", &buf)
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	p.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	view = decodeView(t, rec)
	assert.Equal(t, []string{"receipt.pdf"}, view.Sections[1].Questions[0].PendingFiles)
	assert.Zero(t, p.backend.UploadCalls)

	// Advancing off the last section uploads the file, saves, and lands on
	// the final review step with the pending file cleared.
	w = p.do(t, http.MethodPost, "/claims/"+claimID+"/questionnaire/next", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	view = decodeView(t, w)
	assert.True(t, view.ReadyForReview)
	assert.True(t, view.IsComplete)
	assert.Equal(t, 1, p.backend.UploadCalls)
	assert.Empty(t, view.Sections[1].Questions[0].PendingFiles)

	// Submit moves the claim to the employee status.
	w = p.do(t, http.MethodPost, "/claims/"+claimID+"/questionnaire/submit", gin.H{"claimAmount": 250.0})
	assert.Equal(t, http.StatusOK, w.Code)
	var submitted claim.Claim
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))
	assert.Equal(t, claim.StatusEmployee, submitted.Status)
}

func TestQuestionnaire_UploadFailureKeepsPendingFile(t *testing.T) {
	p := setupPortal(t)
	claimID := p.startClaim(t)

	w := p.do(t, http.MethodPut, "/claims/"+claimID+"/questionnaire/draft", gin.H{
		"answers": []gin.H{{"questionId": "q1", "value": "broken arm"}},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	w = p.do(t, http.MethodPost, "/claims/"+claimID+"/questionnaire/next", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("files", "receipt.pdf")
	fw.Write([]byte("x"))
	mw.Close()
	req, _ := http.NewRequest(http.MethodPost, "/claims/"+claimID+"/questionnaire/questions/qFile/files", &buf)
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	p.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	p.backend.FailUploads = true
	w = p.do(t, http.MethodPost, "/claims/"+claimID+"/questionnaire/next", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "qFile")

	// The selection survives the failure so the user can retry.
	w = p.do(t, http.MethodGet, "/claims/"+claimID+"/questionnaire", nil)
	view := decodeView(t, w)
	assert.Equal(t, 1, view.CurrentIndex)
	assert.Equal(t, []string{"receipt.pdf"}, view.Sections[1].Questions[0].PendingFiles)

	p.backend.FailUploads = false
	w = p.do(t, http.MethodPost, "/claims/"+claimID+"/questionnaire/next", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeView(t, w).ReadyForReview)
}

func TestQuestionnaire_SubmitValidatesAmount(t *testing.T) {
	p := setupPortal(t)
	claimID := p.startClaim(t)

	w := p.do(t, http.MethodPost, "/claims/"+claimID+"/questionnaire/submit", gin.H{"claimAmount": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewRoutes_RoleGated(t *testing.T) {
	p := setupPortal(t)
	claimID := p.startClaim(t)

	// Employees cannot reach the review queue or change statuses.
	w := p.do(t, http.MethodGet, "/claims/review", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = p.do(t, http.MethodPut, "/claims/"+claimID+"/status", gin.H{"status": "hr"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	hrToken, err := middleware.GenerateToken("hr-1", "hanna", session.RoleHR, time.Hour)
	assert.NoError(t, err)

	w = p.doAs(t, hrToken, http.MethodGet, "/claims/review", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReview_TransitionsThroughBackend(t *testing.T) {
	p := setupPortal(t)
	claimID := p.startClaim(t)

	hrToken, err := middleware.GenerateToken("hr-1", "hanna", session.RoleHR, time.Hour)
	assert.NoError(t, err)

	// A draft claim cannot be rejected outright by HR.
	w := p.doAs(t, hrToken, http.MethodPut, "/claims/"+claimID+"/status",
		gin.H{"status": "rejected", "reason": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Walk it through draft -> employee -> hr -> insurer.
	w = p.doAs(t, hrToken, http.MethodPut, "/claims/"+claimID+"/status", gin.H{"status": "employee", "reason": "kick off"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = p.doAs(t, hrToken, http.MethodPut, "/claims/"+claimID+"/status", gin.H{"status": "hr"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = p.doAs(t, hrToken, http.MethodPut, "/claims/"+claimID+"/status", gin.H{"status": "insurer"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Rejection without a reason is refused before it reaches the backend.
	w = p.doAs(t, hrToken, http.MethodPut, "/claims/"+claimID+"/status", gin.H{"status": "rejected"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "reason")
}

func TestDocumentWidget_UploadAndSearch(t *testing.T) {
	p := setupPortal(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("docType", "medical-report")
	mw.WriteField("refId", "clm-1")
	mw.WriteField("tags", "life, xray")
	fw, _ := mw.CreateFormFile("file", "scan.png")
	fw.Write([]byte("png-bytes"))
	mw.Close()

	req, _ := http.NewRequest(http.MethodPost, "/documents", &buf)
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	p.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "scan.png")

	w := p.do(t, http.MethodGet, "/documents?refId=clm-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scan.png")
}

func TestRoutes_RequireToken(t *testing.T) {
	p := setupPortal(t)

	req, _ := http.NewRequest(http.MethodGet, "/policies", nil)
	w := httptest.NewRecorder()
	p.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
