package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/justsurfingit/job-board/internal/models"
)

// upstreamResponse is the provider's envelope. Extra fields are ignored; a
// missing jobs field means the shape changed under us, and we fail closed
// instead of passing garbage along.
type upstreamResponse struct {
	Jobs *[]models.Job `json:"jobs"`
}

// UpstreamService talks to the third-party jobs provider.
type UpstreamService struct {
	Client  *http.Client
	BaseURL string
}

// NewUpstreamService creates the client with a plain timeout. No retries,
// no backoff.
func NewUpstreamService(baseURL string, timeout time.Duration) *UpstreamService {
	return &UpstreamService{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: baseURL,
	}
}

// SearchJobs POSTs one search payload to the provider and returns its job
// list. Any failure (network, non-2xx, undecodable or shape-invalid body) is
// an error; callers decide how to degrade.
func (s *UpstreamService) SearchJobs(ctx context.Context, req models.SearchRequest) ([]models.Job, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode search payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var decoded upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}
	if decoded.Jobs == nil {
		return nil, fmt.Errorf("upstream response has no jobs field")
	}
	return *decoded.Jobs, nil
}
