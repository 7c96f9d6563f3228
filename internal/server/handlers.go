package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-certform/pkg/certification"
	"github.com/goliatone/go-certform/pkg/page"
	"github.com/goliatone/go-certform/pkg/render"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeJSON = "application/json"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	id, ctrl := s.sessions.Create()
	rec := ctrl.Record()
	urls := urlsFor(id)

	form, err := s.renderForm(r, rec, urls)
	if err != nil {
		s.fail(w, r, "render form", err)
		return
	}
	certificate, err := s.previews.HTML(r.Context(), rec)
	if err != nil {
		s.fail(w, r, "render preview", err)
		return
	}

	out, err := s.pages.RenderTemplate(pageTemplate, pageView{
		Title:    pageTitle,
		Subtitle: pageSubtitle,
		Session:  id,
		URLs:     urls,
		Actions:  actionButtons(),
		Form:     string(form),
		Preview:  string(certificate),
		Year:     copyrightYear,
		Locality: s.previews.Locality(),
	})
	if err != nil {
		s.fail(w, r, "render page", err)
		return
	}
	s.log.DebugContext(r.Context(), "session started", slog.String("session", id))
	writeBody(w, http.StatusOK, contentTypeHTML, []byte(out))
}

func (s *Server) handleField(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.controller(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		writeBody(w, http.StatusBadRequest, contentTypeText, []byte("Malformed form body"))
		return
	}

	patch := certification.Patch{
		Field: certification.Field(chi.URLParam(r, "field")),
		Value: r.PostFormValue("value"),
	}
	rec, err := ctrl.Apply(patch)
	if err != nil {
		var fieldErr *certification.FieldError
		switch {
		case errors.Is(err, certification.ErrUnknownField):
			writeBody(w, http.StatusNotFound, contentTypeText, []byte("Unknown field"))
		case errors.As(err, &fieldErr):
			writeBody(w, http.StatusUnprocessableEntity, contentTypeText, []byte(fieldErr.Reason()))
		default:
			s.fail(w, r, "apply patch", err)
		}
		return
	}

	out, err := s.previews.HTML(r.Context(), rec)
	if err != nil {
		s.fail(w, r, "render preview", err)
		return
	}
	writeBody(w, http.StatusOK, contentTypeHTML, out)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.controller(w, r)
	if !ok {
		return
	}
	out, err := s.previews.HTML(r.Context(), ctrl.Record())
	if err != nil {
		s.fail(w, r, "render preview", err)
		return
	}
	writeBody(w, http.StatusOK, contentTypeHTML, out)
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.controller(w, r)
	if !ok {
		return
	}
	out, err := s.renderForm(r, ctrl.Record(), urlsFor(chi.URLParam(r, "sessionID")))
	if err != nil {
		s.fail(w, r, "render form", err)
		return
	}
	writeBody(w, http.StatusOK, contentTypeHTML, out)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := s.controller(w, r)
	if !ok {
		return
	}
	action, err := page.ParseAction(chi.URLParam(r, "action"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, page.Notification{Level: page.LevelError, Message: "Unknown action"})
		return
	}

	note, err := ctrl.Dispatch(r.Context(), action)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, note)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (s *Server) controller(w http.ResponseWriter, r *http.Request) (*page.Controller, bool) {
	ctrl, ok := s.sessions.Lookup(chi.URLParam(r, "sessionID"))
	if !ok {
		writeBody(w, http.StatusNotFound, contentTypeText, []byte("Session expired, reload the page"))
		return nil, false
	}
	return ctrl, true
}

func (s *Server) renderForm(r *http.Request, rec certification.Record, urls sessionURLs) ([]byte, error) {
	return s.forms.Render(r.Context(), s.form, "", render.RenderOptions{
		Action: urls.Fields,
		Values: rec.Values(),
	})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.log.ErrorContext(r.Context(), "request failed", slog.String("op", op), slog.Any("error", err))
	writeBody(w, http.StatusInternalServerError, contentTypeText, []byte(http.StatusText(http.StatusInternalServerError)))
}

func writeBody(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		writeBody(w, http.StatusInternalServerError, contentTypeText, []byte(http.StatusText(http.StatusInternalServerError)))
		return
	}
	writeBody(w, status, contentTypeJSON, body)
}
