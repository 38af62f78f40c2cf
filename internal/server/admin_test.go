package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/analytics"
)

func (h *harness) login(t *testing.T, user, pass string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {user}, "password": {pass}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return h.do(req)
}

func (h *harness) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	rec := h.login(t, "zach", "secret")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))
	for _, c := range rec.Result().Cookies() {
		if c.Name == adminCookie {
			return c
		}
	}
	t.Fatal("login set no admin cookie")
	return nil
}

func (h *harness) adminGet(target string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return h.do(req)
}

func TestAdminRequiresLogin(t *testing.T) {
	h := newHarness(t, true)

	rec := h.adminGet("/admin/dashboard", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	rec = h.adminGet("/admin/dashboard", &http.Cookie{Name: adminCookie, Value: "forged"})
	assert.Equal(t, http.StatusFound, rec.Code)

	rec = h.login(t, "zach", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestAdminDashboard(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	require.NoError(t, h.visits.RecordVisit(ctx, "198.51.100.1", "test-agent", "/"))
	require.NoError(t, h.visits.RecordVisit(ctx, "198.51.100.2", "test-agent", "/"))
	cookie := h.adminCookie(t)

	rec := h.adminGet("/admin/dashboard", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="total-visitors">2<`)

	rec = h.adminGet("/admin/visitors", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, strings.Count(rec.Body.String(), `class="visitor-row"`))
	assert.NotContains(t, rec.Body.String(), "198.51.100.1")
}

func TestAdminStatsAPI(t *testing.T) {
	h := newHarness(t, true)
	require.NoError(t, h.visits.RecordVisit(context.Background(), "198.51.100.1", "", "/"))
	cookie := h.adminCookie(t)

	rec := h.adminGet("/admin/api/stats", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats analytics.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalVisitors)

	rec = h.adminGet("/admin/export/stats", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "admin-stats.json")

	rec = h.adminGet("/admin/export/stats?format=yaml", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "admin-stats.yaml")
	var exported map[string]any
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &exported))
	assert.Equal(t, 1, exported["total_visitors"])
}

func TestAdminPrivacyCleanup(t *testing.T) {
	h := newHarness(t, true)
	cookie := h.adminCookie(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/privacy/cleanup", nil)
	req.AddCookie(cookie)
	rec := h.do(req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(0), body["removed"])
}

func TestAdminLogout(t *testing.T) {
	h := newHarness(t, true)

	rec := h.adminGet("/admin/logout", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == adminCookie {
			assert.Negative(t, c.MaxAge)
		}
	}
}
