package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-certform/internal/config"
	"github.com/goliatone/go-certform/internal/logger"
	"github.com/goliatone/go-certform/pkg/certification"
	"github.com/goliatone/go-certform/pkg/page"
)

var sessionPattern = regexp.MustCompile(`data-session="([^"]+)"`)

func testConfig() *config.Config {
	return &config.Config{
		Env:      config.EnvLocal,
		Server:   config.Server{Address: ":0", ShutdownTimeout: time.Second},
		Session:  config.Session{TTL: time.Minute, SweepInterval: time.Minute},
		Log:      config.Log{Level: "error"},
		Locality: config.Locality{Barangay: "West Rembo", City: "Taguig City"},
	}
}

func newTestServer(t *testing.T, options ...page.Option) *Server {
	t.Helper()

	srv, err := New(context.Background(), testConfig(), logger.Discard(), options...)
	require.NoError(t, err)
	return srv
}

func do(t *testing.T, srv *Server, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func openPage(t *testing.T, srv *Server) (string, string) {
	t.Helper()

	rec := do(t, srv, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	match := sessionPattern.FindStringSubmatch(body)
	require.Len(t, match, 2, "page carries a session id")
	return match[1], body
}

func TestIndexRendersPage(t *testing.T) {
	srv := newTestServer(t)

	id, body := openPage(t, srv)

	assert.Contains(t, body, "BARANGAY CERTIFICATION SYSTEM")
	assert.Contains(t, body, "Official Document Management Portal")
	assert.Contains(t, body, "Barangay West Rembo, Taguig City. All rights reserved.")
	assert.Contains(t, body, `action="/sessions/`+id+`/fields"`)
	assert.Contains(t, body, `data-action="preview"`)
	assert.Contains(t, body, `value="MANZANO"`)
	assert.Contains(t, body, "MS. SAGRE L. MANZANO")
	assert.Equal(t, 1, srv.Sessions().Len())
}

func TestFieldPatchUpdatesPreview(t *testing.T) {
	srv := newTestServer(t)
	id, _ := openPage(t, srv)

	rec := do(t, srv, http.MethodPost, "/sessions/"+id+"/fields/surname", url.Values{"value": {"CRUZ"}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "MS. SAGRE L. CRUZ")

	rec = do(t, srv, http.MethodGet, "/sessions/"+id+"/preview", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "MS. SAGRE L. CRUZ")
}

func TestFieldPatchErrors(t *testing.T) {
	srv := newTestServer(t)
	id, _ := openPage(t, srv)

	tests := []struct {
		name     string
		target   string
		value    string
		wantCode int
		wantBody string
	}{
		{name: "invalid option", target: "/sessions/" + id + "/fields/prefix", value: "DR.", wantCode: http.StatusUnprocessableEntity, wantBody: "Choose one of: MS., MR., MRS."},
		{name: "invalid date", target: "/sessions/" + id + "/fields/issuedDate", value: "02/01/2025", wantCode: http.StatusUnprocessableEntity, wantBody: "Enter a date as YYYY-MM-DD"},
		{name: "invalid number", target: "/sessions/" + id + "/fields/age", value: "ten", wantCode: http.StatusUnprocessableEntity, wantBody: "Enter a whole number"},
		{name: "unknown field", target: "/sessions/" + id + "/fields/nickname", value: "x", wantCode: http.StatusNotFound, wantBody: "Unknown field"},
		{name: "unknown session", target: "/sessions/missing/fields/surname", value: "x", wantCode: http.StatusNotFound, wantBody: "Session expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, tt.target, url.Values{"value": {tt.value}})

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}

	ctrl, ok := srv.Sessions().Lookup(id)
	require.True(t, ok)
	assert.Equal(t, certification.Sample(), ctrl.Record(), "rejected values leave the record unchanged")
}

func TestActions(t *testing.T) {
	srv := newTestServer(t)
	id, _ := openPage(t, srv)

	tests := []struct {
		action        string
		wantLevel     page.Level
		wantMessage   string
		wantDirective page.Directive
	}{
		{action: "save", wantLevel: page.LevelSuccess, wantMessage: "Record saved successfully"},
		{action: "find", wantLevel: page.LevelInfo, wantMessage: "Search functionality - Coming soon"},
		{action: "refresh", wantLevel: page.LevelInfo, wantMessage: "Data refreshed"},
		{action: "preview", wantLevel: page.LevelInfo, wantMessage: "Opening print preview...", wantDirective: page.DirectivePrint},
		{action: "pdf", wantLevel: page.LevelSuccess, wantMessage: "Generating PDF..."},
		{action: "close", wantLevel: page.LevelInfo, wantMessage: "Form closed"},
		{action: "new", wantLevel: page.LevelSuccess, wantMessage: "New record form cleared", wantDirective: page.DirectiveReloadForm},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/sessions/"+id+"/actions/"+tt.action, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var note page.Notification
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
			assert.Equal(t, tt.wantLevel, note.Level)
			assert.Equal(t, tt.wantMessage, note.Message)
			assert.Equal(t, tt.wantDirective, note.Directive)
		})
	}

	rec := do(t, srv, http.MethodGet, "/sessions/"+id+"/form", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `value="MANZANO"`, "new record clears the form")

	rec = do(t, srv, http.MethodGet, "/sessions/"+id+"/preview", nil)
	assert.Contains(t, rec.Body.String(), "[NAME]")

	rec = do(t, srv, http.MethodPost, "/sessions/"+id+"/actions/delete", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type failingRepository struct {
	page.NopRepository
}

func (failingRepository) Save(context.Context, certification.Record) error {
	return errors.New("disk full")
}

func TestActionPortFailure(t *testing.T) {
	srv := newTestServer(t, page.WithRepository(failingRepository{}))
	id, _ := openPage(t, srv)

	rec := do(t, srv, http.MethodPost, "/sessions/"+id+"/actions/save", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var note page.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, page.LevelError, note.Level)
	assert.Equal(t, "Save failed", note.Message)
}

func TestAssetsAndAPI(t *testing.T) {
	srv := newTestServer(t)
	id, _ := openPage(t, srv)

	rec := do(t, srv, http.MethodGet, "/assets/certform.js", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"OK"`)

	rec = do(t, srv, http.MethodGet, "/api/v1/sessions/"+id+"/record", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Values      map[string]string `json:"values"`
		Certificate struct {
			FullAddress string `json:"fullAddress"`
		} `json:"certificate"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "MANZANO", payload.Values["surname"])
	assert.Equal(t, "43-C A. Mabini Street - Sitio 5", payload.Certificate.FullAddress)

	rec = do(t, srv, http.MethodGet, "/api/v1/sessions/missing/record", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListenAndServeStopsWithContext(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Address = "127.0.0.1:0"
	srv, err := New(context.Background(), cfg, logger.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
