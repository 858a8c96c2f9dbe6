package application

import (
	"context"
	"errors"
	"io"

	"github.com/coverdesk/claims-go/internal/client"
	"github.com/coverdesk/claims-go/internal/domain/document"
	"github.com/coverdesk/claims-go/internal/domain/session"
)

var ErrEmptyFile = errors.New("uploaded file is empty")

type DocumentService struct {
	docs client.DocumentAPI
}

func NewDocumentService(docs client.DocumentAPI) *DocumentService {
	return &DocumentService{docs: docs}
}

// UploadInput is what the upload widget sends alongside the file.
type UploadInput struct {
	DocType     string
	RefID       string
	Description string
	Tags        []string
}

// Upload sends a file from the upload widget to the document service,
// stamping the uploader from the session.
func (s *DocumentService) Upload(ctx context.Context, sess session.Context, file document.File, in UploadInput) (*document.Document, error) {
	if len(file.Content) == 0 {
		return nil, ErrEmptyFile
	}
	meta := document.UploadMetadata{
		Type:           "claim",
		DocType:        in.DocType,
		UploadedBy:     sess.UserID,
		UploadedByRole: sess.Role,
		RefID:          in.RefID,
		Description:    in.Description,
		Tags:           in.Tags,
	}
	return s.docs.UploadDocument(ctx, sess, file, meta)
}

func (s *DocumentService) Search(ctx context.Context, sess session.Context, q document.SearchQuery) ([]document.Document, error) {
	return s.docs.SearchDocuments(ctx, sess, q)
}

// Download streams a stored document. The caller must close the reader.
func (s *DocumentService) Download(ctx context.Context, sess session.Context, documentID string) (io.ReadCloser, string, error) {
	return s.docs.DownloadDocument(ctx, sess, documentID)
}
