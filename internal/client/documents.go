package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/coverdesk/claims-go/internal/domain/document"
	"github.com/coverdesk/claims-go/internal/domain/session"
)

//go:generate mockgen -source=documents.go -destination=mock/documents_mock.go -package=mock

// DocumentAPI is the document service's REST contract.
type DocumentAPI interface {
	UploadDocument(ctx context.Context, sess session.Context, file document.File, meta document.UploadMetadata) (*document.Document, error)
	SearchDocuments(ctx context.Context, sess session.Context, q document.SearchQuery) ([]document.Document, error)
	DownloadDocument(ctx context.Context, sess session.Context, documentID string) (io.ReadCloser, string, error)
}

type restDocumentClient struct {
	base       string
	httpClient *http.Client
}

// UploadDocument sends the file and its metadata as one multipart request.
// The metadata travels as a JSON part so the document service does not have
// to parse individual form fields.
func (c *restDocumentClient) UploadDocument(ctx context.Context, sess session.Context, file document.File, meta document.UploadMetadata) (*document.Document, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := mw.WriteField("metadata", string(metaJSON)); err != nil {
		return nil, fmt.Errorf("failed to write metadata part: %w", err)
	}

	fw, err := mw.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := fw.Write(file.Content); err != nil {
		return nil, fmt.Errorf("failed to write file part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/documents", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+sess.AuthToken)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var doc document.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &doc, nil
}

func (c *restDocumentClient) SearchDocuments(ctx context.Context, sess session.Context, q document.SearchQuery) ([]document.Document, error) {
	params := url.Values{}
	if q.RefID != "" {
		params.Set("refId", q.RefID)
	}
	if q.DocType != "" {
		params.Set("docType", q.DocType)
	}
	if q.Tag != "" {
		params.Set("tag", q.Tag)
	}
	if q.Text != "" {
		params.Set("q", q.Text)
	}

	u := c.base + "/documents"
	if enc := params.Encode(); enc != "" {
		u += "?" + enc
	}

	var out []document.Document
	if err := doJSON(ctx, c.httpClient, sess, http.MethodGet, u, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadDocument streams a document's content. The caller owns the reader.
func (c *restDocumentClient) DownloadDocument(ctx context.Context, sess session.Context, documentID string) (io.ReadCloser, string, error) {
	u := c.base + "/documents/" + url.PathEscape(documentID) + "/download"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+sess.AuthToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to send request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, "", decodeError(resp)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}
