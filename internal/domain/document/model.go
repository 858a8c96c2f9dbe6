package document

import "time"

// Document is the document service's record for an uploaded file.
type Document struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	DocType        string    `json:"docType"`
	UploadedBy     string    `json:"uploadedBy"`
	UploadedByRole string    `json:"uploadedByRole"`
	RefID          string    `json:"refId"`
	Description    string    `json:"description"`
	Tags           []string  `json:"tags"`
	SizeBytes      int64     `json:"sizeBytes"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UploadMetadata accompanies a file on upload.
type UploadMetadata struct {
	Type           string   `json:"type"`
	DocType        string   `json:"docType"`
	UploadedBy     string   `json:"uploadedBy"`
	UploadedByRole string   `json:"uploadedByRole"`
	RefID          string   `json:"refId"`
	Description    string   `json:"description"`
	Tags           []string `json:"tags"`
}

// File is a file selected by the user that has not been uploaded yet.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// SearchQuery filters the document search widget.
type SearchQuery struct {
	RefID   string
	DocType string
	Tag     string
	Text    string
}
