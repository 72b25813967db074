package athleticsplatform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"athleticsplatform/config"
	"athleticsplatform/internal/domain"
)

func newTestPlatform(t *testing.T, approvedEventsURL string) *Platform {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.StorageBackend = "memory"
	cfg.EmailProvider = "noop"
	cfg.ApprovedEventsURL = approvedEventsURL

	p, err := New(cfg, config.NewLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestPlatform_endToEnd_remoteDown(t *testing.T) {
	ctx := context.Background()
	// Nothing listens here; the catalog must degrade to the local set.
	p := newTestPlatform(t, "http://127.0.0.1:1/api/approved-events/")

	_, err := p.Intake.Submit(ctx, &domain.Registration{Username: "sarah", EventID: "6"})
	require.NoError(t, err)

	catalog := p.Catalog.Merged(ctx)
	assert.Len(t, catalog, 6)

	got, err := p.Reconciler.Reconcile(ctx, "sarah")
	require.NoError(t, err)
	assert.Empty(t, got.Upcoming)
	require.Len(t, got.Completed, 1)
	assert.Equal(t, "6", got.Completed[0].ID)
}

func TestPlatform_endToEnd_remoteCatalog(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 42, "title": "Harbor Night Run", "price": null}]`))
	}))
	defer srv.Close()

	p := newTestPlatform(t, srv.URL)

	catalog := p.Catalog.Merged(ctx)
	require.Len(t, catalog, 7)
	assert.Equal(t, "Harbor Night Run", catalog[6].Title)
	assert.Equal(t, "42", catalog[6].ID)
	assert.Equal(t, float64(0), catalog[6].Price)
	assert.Equal(t, "upcoming", catalog[6].Status)
}

func TestPlatform_unknownStorageBackend(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.StorageBackend = "cassandra"

	_, err = New(cfg, config.NewLogger())
	require.Error(t, err)
}

func TestMain(m *testing.M) {
	// Keep config.Load deterministic regardless of the host environment.
	os.Unsetenv("STORAGE_BACKEND")
	os.Unsetenv("APPROVED_EVENTS_URL")
	os.Exit(m.Run())
}
