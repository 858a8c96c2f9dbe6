package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coverdesk/claims-go/internal/domain/session"
)

// Config points the clients at the external services.
type Config struct {
	ClaimsBaseURL    string
	DocumentsBaseURL string
	Timeout          time.Duration
}

// Clients bundles the external collaborators behind their interfaces.
type Clients struct {
	Claims    ClaimsAPI
	Documents DocumentAPI
}

func New(cfg Config) *Clients {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	httpClient := &http.Client{Timeout: cfg.Timeout}
	return &Clients{
		Claims:    &restClaimsClient{base: cfg.ClaimsBaseURL, httpClient: httpClient},
		Documents: &restDocumentClient{base: cfg.DocumentsBaseURL, httpClient: httpClient},
	}
}

// APIError is a non-2xx response from a backend service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

type wireError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// doJSON issues a JSON request with the session's bearer token and decodes
// the response into out (when out is non-nil).
func doJSON(ctx context.Context, httpClient *http.Client, sess session.Context, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+sess.AuthToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var we wireError
	msg := ""
	if json.Unmarshal(raw, &we) == nil {
		if we.Error != "" {
			msg = we.Error
		} else {
			msg = we.Message
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
