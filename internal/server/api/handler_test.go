package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-certform/pkg/certification"
	"github.com/goliatone/go-certform/pkg/model"
	"github.com/goliatone/go-certform/pkg/page"
	"github.com/goliatone/go-certform/pkg/preview"
)

type fakeSessions map[string]*page.Controller

func (f fakeSessions) Lookup(id string) (*page.Controller, bool) {
	ctrl, ok := f[id]
	return ctrl, ok
}

type deriveCertificates struct{}

func (deriveCertificates) Certificate(rec certification.Record) (preview.Certificate, error) {
	return preview.Derive(rec, preview.DefaultLocality), nil
}

func newTestHandler() (*Handler, *page.Controller) {
	ctrl := page.NewController()
	deps := Dependencies{
		Sessions:     fakeSessions{"abc": ctrl},
		Certificates: deriveCertificates{},
		Form:         model.FormModel{OperationID: "updateCertification", Fields: []model.Field{{Name: "surname"}}},
		Log:          slog.Default(),
	}
	return NewHandler(deps, huma.Middlewares{}), ctrl
}

func TestHandler_healthCheck(t *testing.T) {
	handler, _ := newTestHandler()

	output, err := handler.healthCheck(context.Background(), &struct{}{})

	require.NoError(t, err)
	assert.Equal(t, "OK", output.Body.Status)
}

func TestHandler_getRecord(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		wantErr   int
	}{
		{name: "known session", sessionID: "abc"},
		{name: "unknown session", sessionID: "nope", wantErr: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestHandler()

			output, err := handler.getRecord(context.Background(), &sessionInput{SessionID: tt.sessionID})

			if tt.wantErr != 0 {
				var statusErr huma.StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, tt.wantErr, statusErr.GetStatus())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "MANZANO", output.Body.Values["surname"])
			assert.Equal(t, "MS. SAGRE L. MANZANO", output.Body.Certificate.FullName)
		})
	}
}

func TestHandler_patchRecord(t *testing.T) {
	handler, ctrl := newTestHandler()

	input := &patchInput{SessionID: "abc"}
	input.Body.Patches = []patchItem{
		{Field: "surname", Value: "CRUZ"},
		{Field: "prefix", Value: "MR."},
	}
	output, err := handler.patchRecord(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "CRUZ", ctrl.Record().Surname)
	assert.True(t, strings.HasSuffix(output.Body.Certificate.FullName, "CRUZ"))
	assert.True(t, strings.HasPrefix(output.Body.Certificate.FullName, "MR. "))
}

func TestHandler_patchRecordRejectsValue(t *testing.T) {
	handler, ctrl := newTestHandler()

	input := &patchInput{SessionID: "abc"}
	input.Body.Patches = []patchItem{
		{Field: "surname", Value: "CRUZ"},
		{Field: "purpose", Value: "TRAVEL"},
		{Field: "firstname", Value: "JUAN"},
	}
	_, err := handler.patchRecord(context.Background(), input)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.GetStatus())
	assert.Contains(t, err.Error(), "Choose one of")

	rec := ctrl.Record()
	assert.Equal(t, "CRUZ", rec.Surname, "patches before the rejected one stay applied")
	assert.Equal(t, certification.PurposeLocalEmployment, rec.Purpose)
	assert.Equal(t, "SAGRE", rec.Firstname)
}

func TestHandler_dispatchAction(t *testing.T) {
	tests := []struct {
		name      string
		action    string
		wantLevel page.Level
		wantMsg   string
		wantErr   int
	}{
		{name: "save", action: "save", wantLevel: page.LevelSuccess, wantMsg: "Record saved successfully"},
		{name: "find", action: "find", wantLevel: page.LevelInfo, wantMsg: "Search functionality - Coming soon"},
		{name: "unknown", action: "delete", wantErr: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newTestHandler()

			output, err := handler.dispatchAction(context.Background(), &actionInput{SessionID: "abc", Action: tt.action})

			if tt.wantErr != 0 {
				var statusErr huma.StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, tt.wantErr, statusErr.GetStatus())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, output.Body.Level)
			assert.Equal(t, tt.wantMsg, output.Body.Message)
		})
	}
}

func TestHandler_dispatchNewClearsRecord(t *testing.T) {
	handler, ctrl := newTestHandler()

	output, err := handler.dispatchAction(context.Background(), &actionInput{SessionID: "abc", Action: "new"})

	require.NoError(t, err)
	assert.Equal(t, page.DirectiveReloadForm, output.Body.Directive)
	assert.True(t, ctrl.Record().IsEmpty())
}

func TestNewRegistersRoutes(t *testing.T) {
	router := chi.NewRouter()
	New(router, Dependencies{
		Sessions:     fakeSessions{"abc": page.NewController()},
		Certificates: deriveCertificates{},
		Form:         model.FormModel{OperationID: "updateCertification"},
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/sessions/abc/record",
		strings.NewReader(`{"patches":[{"field":"age","value":"ten"}]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var problem map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "Enter a whole number", problem["detail"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/form", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"operationId":"updateCertification"`)
}
