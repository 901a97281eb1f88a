package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"media-buyer-intake/pkg/models"
)

// SubmitPath is the route of the submission endpoint
const SubmitPath = "/api/submit-form"

// Client defines the interface for posting applications to the submission endpoint
type Client interface {
	SubmitForm(ctx context.Context, data models.FormData) (models.SubmitResponse, error)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new intake client for the server at baseURL
func NewClient(baseURL string, timeout time.Duration) Client {
	return &clientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *clientImpl) SubmitForm(ctx context.Context, data models.FormData) (models.SubmitResponse, error) {
	var result models.SubmitResponse

	jsonPayload, err := json.Marshal(data)
	if err != nil {
		return result, fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SubmitPath, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return result, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result, fmt.Errorf("error submitting form: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, fmt.Errorf("error reading response: %w", err)
	}

	// Both 200 and 500 carry a {success, message} body.
	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("error parsing response (status %d): %w", resp.StatusCode, err)
	}
	return result, nil
}
