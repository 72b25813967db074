package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"athleticsplatform/internal/domain"
)

// fakeDirectory implements domain.UserDirectory for tests.
type fakeDirectory struct {
	profiles map[string]domain.UserProfile
}

func (f *fakeDirectory) Lookup(ctx context.Context, username string) (*domain.UserProfile, error) {
	if profile, ok := f.profiles[username]; ok {
		return &profile, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeDirectory) Register(ctx context.Context, username string, profile domain.UserProfile, password string) error {
	return nil
}

func (f *fakeDirectory) VerifyPassword(ctx context.Context, username, password string) error {
	return nil
}

type reconcileFixture struct {
	store      domain.RegistrationStore
	fetcher    *fakeFetcher
	reconciler domain.ReconciliationService
}

func newReconcileFixture(t *testing.T, profiles map[string]domain.UserProfile) *reconcileFixture {
	t.Helper()
	slots := newFakeSlotStore()
	store := newTestStore(slots)
	fetcher := &fakeFetcher{err: errors.New("backend down")}
	catalog := newTestCatalog(fetcher)
	users := &fakeDirectory{profiles: profiles}
	return &reconcileFixture{
		store:      store,
		fetcher:    fetcher,
		reconciler: NewReconciliationService(store, catalog, users, testLogger(), 2*time.Second),
	}
}

func TestReconcile_idMatchWithRemoteDown(t *testing.T) {
	ctx := context.Background()
	fx := newReconcileFixture(t, nil)

	_, err := fx.store.Save(ctx, &domain.Registration{Username: "sarah", EventID: "6"})
	require.NoError(t, err)

	got, err := fx.reconciler.Reconcile(ctx, "sarah")
	require.NoError(t, err)
	assert.Empty(t, got.Upcoming)
	require.Len(t, got.Completed, 1)
	assert.Equal(t, "6", got.Completed[0].ID)
	assert.Equal(t, "Desert Ultra Marathon", got.Completed[0].Title)
}

func TestReconcile_substringNameFallback(t *testing.T) {
	ctx := context.Background()
	fx := newReconcileFixture(t, nil)

	_, err := fx.store.Save(ctx, &domain.Registration{Username: "bob", EventName: "marathon"})
	require.NoError(t, err)

	got, err := fx.reconciler.Reconcile(ctx, "bob")
	require.NoError(t, err)

	// "marathon" is contained, case-insensitively, in two local titles.
	upcomingIDs := eventIDs(got.Upcoming)
	assert.Contains(t, upcomingIDs, "1", "City Marathon 2026 should match")
	require.Len(t, got.Completed, 1)
	assert.Equal(t, "Desert Ultra Marathon", got.Completed[0].Title)
}

func TestReconcile_idPhaseSuppressesNameFallback(t *testing.T) {
	ctx := context.Background()
	fx := newReconcileFixture(t, nil)

	_, err := fx.store.Save(ctx, &domain.Registration{Username: "sarah", EventID: "6"})
	require.NoError(t, err)
	_, err = fx.store.Save(ctx, &domain.Registration{Username: "sarah", EventName: "marathon"})
	require.NoError(t, err)

	got, err := fx.reconciler.Reconcile(ctx, "sarah")
	require.NoError(t, err)
	assert.Empty(t, got.Upcoming, "name fallback must not run when the id phase matched")
	require.Len(t, got.Completed, 1)
	assert.Equal(t, "6", got.Completed[0].ID)
}

func TestReconcile_undefinedEventIDTriggersFallback(t *testing.T) {
	ctx := context.Background()
	fx := newReconcileFixture(t, nil)

	// Forms that never resolved an event write the literal string "undefined".
	_, err := fx.store.Save(ctx, &domain.Registration{Username: "bob", EventID: "undefined", EventName: "Spring 10K Fun Run"})
	require.NoError(t, err)

	got, err := fx.reconciler.Reconcile(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, got.Upcoming, 1)
	assert.Equal(t, "5", got.Upcoming[0].ID)
}

func TestReconcile_upcomingCappedAtThree(t *testing.T) {
	ctx := context.Background()
	fx := newReconcileFixture(t, nil)

	for _, eventID := range []string{"1", "2", "3", "4", "5"} {
		_, err := fx.store.Save(ctx, &domain.Registration{Username: "sarah", EventID: eventID})
		require.NoError(t, err)
	}

	got, err := fx.reconciler.Reconcile(ctx, "sarah")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, eventIDs(got.Upcoming), "first three non-completed matches in catalog order")
	assert.Empty(t, got.Completed)
}

func TestReconcile_unknownUserIsEmptyNotError(t *testing.T) {
	ctx := context.Background()
	fx := newReconcileFixture(t, nil)

	got, err := fx.reconciler.Reconcile(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, got.Upcoming)
	assert.Empty(t, got.Completed)
}

func TestReconcile_registeredForVanishedEvent(t *testing.T) {
	ctx := context.Background()
	fx := newReconcileFixture(t, nil)

	_, err := fx.store.Save(ctx, &domain.Registration{Username: "sarah", EventID: "404"})
	require.NoError(t, err)

	got, err := fx.reconciler.Reconcile(ctx, "sarah")
	require.NoError(t, err)
	assert.Empty(t, got.Upcoming)
	assert.Empty(t, got.Completed)
}

func TestReconcile_includesRemoteEvents(t *testing.T) {
	ctx := context.Background()
	fx := newReconcileFixture(t, nil)
	fx.fetcher.err = nil
	fx.fetcher.events = []domain.RemoteEvent{{ID: "42", Title: "Harbor Night Run"}}

	_, err := fx.store.Save(ctx, &domain.Registration{Username: "sarah", EventID: "42"})
	require.NoError(t, err)

	got, err := fx.reconciler.Reconcile(ctx, "sarah")
	require.NoError(t, err)
	require.Len(t, got.Upcoming, 1)
	assert.Equal(t, "Harbor Night Run", got.Upcoming[0].Title)
}

func TestAthleteDashboard(t *testing.T) {
	ctx := context.Background()
	profiles := map[string]domain.UserProfile{
		"sarah": {FirstName: "Sarah", LastName: "Lee", Role: domain.RoleAthlete},
	}
	fx := newReconcileFixture(t, profiles)

	for _, reg := range []domain.Registration{
		{Username: "sarah", EventID: "6"},
		{Username: "sarah", EventID: "1"},
		{Username: "sarah", EventID: "2"},
	} {
		r := reg
		_, err := fx.store.Save(ctx, &r)
		require.NoError(t, err)
	}

	dash, err := fx.reconciler.AthleteDashboard(ctx, "sarah")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Lee", dash.FullName)
	assert.Equal(t, 3, dash.RegisteredCount)
	assert.Equal(t, 1, dash.CompletedCount)
	assert.Equal(t, []string{"1", "2"}, eventIDs(dash.Upcoming))

	titles := make([]string, 0, len(dash.Achievements))
	for _, a := range dash.Achievements {
		titles = append(titles, a.Title)
	}
	assert.Contains(t, titles, "First Finish")
	assert.Contains(t, titles, "Trail Enthusiast")
	assert.NotContains(t, titles, "5 Events Completed")
}

func TestAthleteDashboard_unknownUserGetsDefaultName(t *testing.T) {
	ctx := context.Background()
	fx := newReconcileFixture(t, nil)

	dash, err := fx.reconciler.AthleteDashboard(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, "User", dash.FullName)
	assert.Equal(t, 0, dash.RegisteredCount)
	assert.Empty(t, dash.Achievements)
}

func eventIDs(events []domain.Event) []string {
	ids := make([]string, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
	}
	return ids
}
