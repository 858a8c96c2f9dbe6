package handlers

import (
	"io"
	"net/http"

	"github.com/coverdesk/claims-go/internal/application"
	"github.com/coverdesk/claims-go/internal/config"
	"github.com/coverdesk/claims-go/internal/domain/claim"
	"github.com/coverdesk/claims-go/internal/domain/document"
	"github.com/coverdesk/claims-go/internal/domain/questionnaire"
	"github.com/coverdesk/claims-go/pkg/response"
	"github.com/coverdesk/claims-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

// QuestionnaireHandler exposes the claim questionnaire stepper: view state,
// draft edits, file selection, next/previous navigation and final submit.
type QuestionnaireHandler struct {
	service *application.QuestionnaireService
}

func NewQuestionnaireHandler(service *application.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{service: service}
}

func (h *QuestionnaireHandler) GetState(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	view, err := h.service.View(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// SaveDraft records in-progress answers locally. Nothing reaches the backend
// until Next, Save or Submit.
func (h *QuestionnaireHandler) SaveDraft(c *gin.Context) {
	var input questionnaire.SaveDraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	view, err := h.service.SaveDraft(c.Request.Context(), sess, c.Param("id"), input.Answers)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// SelectFile attaches uploaded form files to a file question. Files are held
// locally and only uploaded to the document service when the section is
// saved.
func (h *QuestionnaireHandler) SelectFile(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "expected multipart form"})
		return
	}

	var files []document.File
	for _, fh := range form.File["files"] {
		if fh.Size > config.MaxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponse{Error: "file too large: " + fh.Filename})
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "failed to read file: " + fh.Filename})
			return
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "failed to read file: " + fh.Filename})
			return
		}
		files = append(files, document.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     content,
		})
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "no files in request"})
		return
	}

	view, err := h.service.SelectFile(c.Request.Context(), sess, c.Param("id"), c.Param("questionId"), files)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Next validates the current section, persists it, and advances.
func (h *QuestionnaireHandler) Next(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	view, err := h.service.Next(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Previous steps back without validating or saving.
func (h *QuestionnaireHandler) Previous(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	view, err := h.service.Previous(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Save persists the current section without advancing.
func (h *QuestionnaireHandler) Save(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	view, err := h.service.Save(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Submit finishes the questionnaire and sends the claim for review. Refused
// unless the backend confirms the questionnaire complete.
func (h *QuestionnaireHandler) Submit(c *gin.Context) {
	var input claim.SubmitClaimInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	cl, err := h.service.Submit(c.Request.Context(), sess, c.Param("id"), input.ClaimAmount)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cl)
}
