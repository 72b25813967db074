package approvedevents

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes loose payloads", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			w.Header().Set("Content-Type", "application/json")
			// Numeric id and null price, the way the backend actually sends them.
			_, _ = w.Write([]byte(`[{"id": 12, "title": "Night Run", "price": null, "participants": 0}]`))
		}))
		defer srv.Close()

		fetcher := NewHTTPFetcher(srv.Client(), srv.URL)
		events, err := fetcher.Fetch(ctx)
		require.NoError(t, err)
		require.Len(t, events, 1)
		require.Equal(t, "12", events[0].ID.String())
		require.Equal(t, "Night Run", events[0].Title)
		require.Nil(t, events[0].Price)
		require.NotNil(t, events[0].Participants)
		require.Equal(t, 0, *events[0].Participants)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusBadGateway)
		}))
		defer srv.Close()

		fetcher := NewHTTPFetcher(srv.Client(), srv.URL)
		_, err := fetcher.Fetch(ctx)
		require.Error(t, err)
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not": "an array"}`))
		}))
		defer srv.Close()

		fetcher := NewHTTPFetcher(srv.Client(), srv.URL)
		_, err := fetcher.Fetch(ctx)
		require.Error(t, err)
	})
}
