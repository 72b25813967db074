package approvedevents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"athleticsplatform/internal/domain"
)

type approvedEventsHTTPFetcher struct {
	client *http.Client
	url    string
}

// NewHTTPFetcher returns a fetcher that calls the approved-events resource.
func NewHTTPFetcher(client *http.Client, url string) domain.ApprovedEventsFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &approvedEventsHTTPFetcher{client: client, url: url}
}

func (f *approvedEventsHTTPFetcher) Fetch(ctx context.Context) ([]domain.RemoteEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch approved events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("approved events api returned status: %d", resp.StatusCode)
	}

	var events []domain.RemoteEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode approved events response: %w", err)
	}
	return events, nil
}
