package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/coverdesk/claims-go/internal/domain/claim"
	"github.com/coverdesk/claims-go/internal/domain/document"
	"github.com/coverdesk/claims-go/internal/domain/questionnaire"
	"github.com/gin-gonic/gin"
)

// FakeBackend is an in-memory stand-in for the external claims backend and
// document service, good enough for handler-level tests.
type FakeBackend struct {
	Server *httptest.Server

	mu          sync.Mutex
	claims      map[string]*claim.Claim
	documents   []document.Document
	nextClaimID int
	nextDocID   int

	// UploadCalls counts document uploads; SaveCalls counts answer saves.
	UploadCalls int
	SaveCalls   int

	// FailUploads makes every document upload return 500.
	FailUploads bool
	// FailSaves makes every answer save return 500.
	FailSaves bool
}

func NewFakeBackend() *FakeBackend {
	f := &FakeBackend{claims: make(map[string]*claim.Claim)}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(f.requireAuth)

	r.POST("/claims", f.createClaim)
	r.GET("/claims/:id", f.getClaim)
	r.GET("/claims", f.listClaims)
	r.GET("/claims/review", f.listClaims)
	r.POST("/claims/:id/sections/:sid/answers", f.saveSection)
	r.POST("/claims/:id/answers", f.saveAll)
	r.PUT("/claims/:id/status", f.updateStatus)
	r.POST("/claims/:id/submit", f.submit)
	r.DELETE("/claims/:id", f.deleteClaim)
	r.GET("/policies", f.listPolicies)
	r.GET("/policies/:id", f.getPolicy)

	r.POST("/documents", f.uploadDocument)
	r.GET("/documents", f.searchDocuments)
	r.GET("/documents/:id/download", f.downloadDocument)

	f.Server = httptest.NewServer(r)
	return f
}

func (f *FakeBackend) URL() string { return f.Server.URL }
func (f *FakeBackend) Close()      { f.Server.Close() }

func (f *FakeBackend) requireAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	c.Next()
}

// NewTestQuestionnaire is the template every fake claim starts with: a
// details section with a required text question and an optional number
// question, then an evidence section with a required file question.
func NewTestQuestionnaire(claimID string) *questionnaire.Questionnaire {
	return &questionnaire.Questionnaire{
		ID:             "qn-" + claimID,
		ClaimID:        claimID,
		TotalQuestions: 3,
		Sections: []questionnaire.Section{
			{
				SectionID: "s1",
				Title:     "Incident details",
				Order:     1,
				Questions: []questionnaire.QuestionResponse{
					{QuestionID: "q1", Text: "Describe the incident", Type: questionnaire.TypeText, Required: true, Order: 1},
					{QuestionID: "q2", Text: "Estimated cost", Type: questionnaire.TypeNumber, Order: 2},
				},
			},
			{
				SectionID: "s2",
				Title:     "Evidence",
				Order:     2,
				Questions: []questionnaire.QuestionResponse{
					{QuestionID: "qFile", Text: "Supporting document", Type: questionnaire.TypeFile, Required: true, Order: 1},
				},
			},
		},
	}
}

func (f *FakeBackend) createClaim(c *gin.Context) {
	var in claim.CreateClaimInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f.mu.Lock()
	f.nextClaimID++
	id := fmt.Sprintf("clm-%d", f.nextClaimID)
	cl := &claim.Claim{
		ID:            id,
		PolicyID:      in.PolicyID,
		ClaimType:     claim.ClaimType(in.ClaimType),
		ClaimOption:   in.ClaimOption,
		Status:        claim.StatusDraft,
		CreatedAt:     time.Now(),
		Questionnaire: NewTestQuestionnaire(id),
	}
	f.claims[id] = cl
	f.mu.Unlock()

	c.JSON(http.StatusCreated, cl)
}

func (f *FakeBackend) getClaim(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cl, ok := f.claims[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "claim not found"})
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (f *FakeBackend) listClaims(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]claim.Claim, 0, len(f.claims))
	for _, cl := range f.claims {
		out = append(out, *cl)
	}
	c.JSON(http.StatusOK, out)
}

type fakeAnswersPayload struct {
	Answers []questionnaire.AnswerSubmission `json:"answers"`
}

func (f *FakeBackend) saveSection(c *gin.Context) {
	var in fakeAnswersPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.SaveCalls++
	if f.FailSaves {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save rejected"})
		return
	}
	cl, ok := f.claims[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "claim not found"})
		return
	}
	sec := cl.Questionnaire.Section(c.Param("sid"))
	if sec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "section not found"})
		return
	}

	applyAnswers(cl.Questionnaire, in.Answers)
	recompute(cl.Questionnaire)

	c.JSON(http.StatusOK, questionnaire.SaveResult{
		Section: sec,
		Progress: &questionnaire.Progress{
			TotalQuestions:    cl.Questionnaire.TotalQuestions,
			AnsweredQuestions: cl.Questionnaire.AnsweredQuestions,
			IsComplete:        cl.Questionnaire.IsComplete,
		},
	})
}

func (f *FakeBackend) saveAll(c *gin.Context) {
	var in fakeAnswersPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.SaveCalls++
	if f.FailSaves {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save rejected"})
		return
	}
	cl, ok := f.claims[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "claim not found"})
		return
	}

	applyAnswers(cl.Questionnaire, in.Answers)
	recompute(cl.Questionnaire)

	// Full-object response: exercises the zero-delta merge path.
	c.JSON(http.StatusOK, questionnaire.SaveResult{Questionnaire: cl.Questionnaire})
}

func applyAnswers(q *questionnaire.Questionnaire, answers []questionnaire.AnswerSubmission) {
	for _, a := range answers {
		qr := q.Question(a.QuestionID)
		if qr == nil {
			continue
		}
		ans := &questionnaire.Answer{}
		switch qr.Type {
		case questionnaire.TypeText:
			ans.Kind = questionnaire.KindText
			ans.Text, _ = a.Value.(string)
		case questionnaire.TypeNumber:
			ans.Kind = questionnaire.KindNumber
			ans.Number, _ = a.Value.(float64)
		case questionnaire.TypeDate:
			ans.Kind = questionnaire.KindDate
			if s, ok := a.Value.(string); ok {
				ans.Date, _ = time.Parse(time.RFC3339, s)
			}
		case questionnaire.TypeBoolean:
			ans.Kind = questionnaire.KindBoolean
			ans.Bool, _ = a.Value.(bool)
		case questionnaire.TypeSelect:
			ans.Kind = questionnaire.KindSelect
			ans.Select, _ = a.Value.(string)
		case questionnaire.TypeMultiSelect:
			ans.Kind = questionnaire.KindMultiSelect
			if vs, ok := a.Value.([]any); ok {
				for _, v := range vs {
					if s, ok := v.(string); ok {
						ans.MultiSelect = append(ans.MultiSelect, s)
					}
				}
			}
		case questionnaire.TypeFile:
			ans.Kind = questionnaire.KindFile
			ans.FileID, _ = a.Value.(string)
		}
		qr.Answer = ans
		qr.Answered = true
	}
}

func recompute(q *questionnaire.Questionnaire) {
	answered := 0
	complete := true
	for i := range q.Sections {
		sec := &q.Sections[i]
		secDone := true
		for _, qr := range sec.Questions {
			if qr.Answered {
				answered++
			} else if qr.Required {
				secDone = false
			}
		}
		sec.IsComplete = secDone
		if !secDone {
			complete = false
		}
	}
	q.AnsweredQuestions = answered
	q.IsComplete = complete
}

func (f *FakeBackend) updateStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	cl, ok := f.claims[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "claim not found"})
		return
	}
	cl.Status = claim.ClaimStatus(in.Status)
	cl.Reason = in.Reason
	if cl.Status == claim.StatusEmployee {
		now := time.Now()
		cl.SubmittedAt = &now
	}
	c.JSON(http.StatusOK, cl)
}

func (f *FakeBackend) submit(c *gin.Context) {
	var in struct {
		ClaimAmount float64  `json:"claimAmount"`
		Documents   []string `json:"documents"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	cl, ok := f.claims[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "claim not found"})
		return
	}
	if !cl.Questionnaire.IsComplete {
		c.JSON(http.StatusConflict, gin.H{"error": "questionnaire incomplete"})
		return
	}
	cl.RequestedAmount = in.ClaimAmount
	c.JSON(http.StatusOK, cl)
}

func (f *FakeBackend) deleteClaim(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.claims, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (f *FakeBackend) listPolicies(c *gin.Context) {
	c.JSON(http.StatusOK, []gin.H{
		{"id": "pol-1", "policyNumber": "LIFE-001", "type": "life", "status": "active"},
		{"id": "pol-2", "policyNumber": "VEH-002", "type": "vehicle", "status": "active"},
	})
}

func (f *FakeBackend) getPolicy(c *gin.Context) {
	status := "active"
	if c.Param("id") == "pol-lapsed" {
		status = "lapsed"
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "policyNumber": "P-" + c.Param("id"), "status": status})
}

func (f *FakeBackend) uploadDocument(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UploadCalls++
	if f.FailUploads {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file part missing"})
		return
	}

	f.nextDocID++
	doc := document.Document{
		ID:        fmt.Sprintf("doc-%d", f.nextDocID),
		Name:      fh.Filename,
		SizeBytes: fh.Size,
		CreatedAt: time.Now(),
	}
	f.documents = append(f.documents, doc)
	c.JSON(http.StatusCreated, doc)
}

func (f *FakeBackend) searchDocuments(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.JSON(http.StatusOK, f.documents)
}

func (f *FakeBackend) downloadDocument(c *gin.Context) {
	c.Data(http.StatusOK, "application/octet-stream", []byte("fake content for "+c.Param("id")))
}
