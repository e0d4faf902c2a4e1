package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"ContactForm_SheetsProject/internal/models"
)

const (
	SubmitPath = "/api/submit"

	// 네트워크 자체가 실패한 경우 (응답 없음)
	KindTransport models.ErrorKind = "transport"
)

type SubmitError struct {
	Status  int
	Kind    models.ErrorKind
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submit failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("submit failed (%s, HTTP %d): %s", e.Kind, e.Status, e.Message)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// Client posts submissions to the contact endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient targets baseURL (e.g. http://localhost:8080). A nil httpClient
// means http.DefaultClient, which has no timeout; bound calls with ctx.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Submit(ctx context.Context, sub models.Submission) (*models.AppendConfirmation, error) {
	reqBody, err := json.Marshal(sub)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SubmitPath, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &SubmitError{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	var envelope models.SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &SubmitError{
			Status:  resp.StatusCode,
			Kind:    models.KindInternal,
			Message: "unreadable response: " + resp.Status,
		}
	}

	if resp.StatusCode != http.StatusOK || !envelope.OK {
		serr := &SubmitError{Status: resp.StatusCode, Kind: models.KindInternal, Message: resp.Status}
		if envelope.Error != nil {
			serr.Kind = envelope.Error.Kind
			serr.Message = envelope.Error.Message
		}
		return nil, serr
	}
	return envelope.Result, nil
}
