package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/venueprofit/internal/db"
	"github.com/Simplici0/venueprofit/internal/migrations"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "auth-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, migrations.Up(database, nil))

	return NewService(database, "test-secret")
}

func TestEnsureUserAndValidateCredentials(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	inserted, err := EnsureUser(ctx, svc.db, "ops@venue.test", "hunter2")
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = EnsureUser(ctx, svc.db, "ops@venue.test", "changed")
	require.NoError(t, err)
	assert.False(t, inserted)

	ok, err := svc.ValidateCredentials(ctx, "ops@venue.test", "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ValidateCredentials(ctx, "ops@venue.test", "changed")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.ValidateCredentials(ctx, "nobody@venue.test", "hunter2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionValueRoundTripAndTamper(t *testing.T) {
	svc := NewService(nil, "test-secret")

	value := svc.CreateSessionValue("ops@venue.test")
	email, ok := svc.VerifySessionValue(value)
	require.True(t, ok)
	assert.Equal(t, "ops@venue.test", email)

	_, ok = svc.VerifySessionValue(value + "00")
	assert.False(t, ok)

	other := NewService(nil, "other-secret")
	_, ok = other.VerifySessionValue(value)
	assert.False(t, ok)

	_, ok = svc.VerifySessionValue("garbage")
	assert.False(t, ok)
}

func TestSessionValueExpires(t *testing.T) {
	svc := NewService(nil, "test-secret")
	issued := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	value := svc.CreateSessionValue("ops@venue.test")

	svc.now = func() time.Time { return issued.Add(sessionTTL + time.Minute) }
	_, ok := svc.VerifySessionValue(value)
	assert.False(t, ok)
}

func TestMiddlewareRedirectsAnonymousRequests(t *testing.T) {
	svc := NewService(nil, "test-secret")
	handler := svc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/bookings", nil))
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: svc.CreateSessionValue("ops@venue.test")})
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
