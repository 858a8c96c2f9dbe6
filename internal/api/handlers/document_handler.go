package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/coverdesk/claims-go/internal/application"
	"github.com/coverdesk/claims-go/internal/config"
	"github.com/coverdesk/claims-go/internal/domain/document"
	"github.com/coverdesk/claims-go/pkg/response"
	"github.com/coverdesk/claims-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	service *application.DocumentService
}

func NewDocumentHandler(service *application.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Upload receives a file from the upload widget and forwards it to the
// document service with its metadata.
func (h *DocumentHandler) Upload(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	if fh.Size > config.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponse{Error: "file too large"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "failed to read file"})
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "failed to read file"})
		return
	}

	var tags []string
	if raw := c.PostForm("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	doc, err := h.service.Upload(c.Request.Context(), sess, document.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, application.UploadInput{
		DocType:     c.PostForm("docType"),
		RefID:       c.PostForm("refId"),
		Description: c.PostForm("description"),
		Tags:        tags,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// Search powers the document widget's filter box.
func (h *DocumentHandler) Search(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	docs, err := h.service.Search(c.Request.Context(), sess, document.SearchQuery{
		RefID:   c.Query("refId"),
		DocType: c.Query("docType"),
		Tag:     c.Query("tag"),
		Text:    c.Query("q"),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}

// Download streams a document's content through to the browser.
func (h *DocumentHandler) Download(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	body, contentType, err := h.service.Download(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, -1, contentType, body, nil)
}
