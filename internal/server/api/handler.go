package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"github.com/goliatone/go-certform/pkg/certification"
	"github.com/goliatone/go-certform/pkg/page"
)

type Handler struct {
	deps       Dependencies
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(deps Dependencies, middleware huma.Middlewares) *Handler {
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		deps:       deps,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
	huma.Register(api, h.getRecordOp(), h.getRecord)
	huma.Register(api, h.patchRecordOp(), h.patchRecord)
	huma.Register(api, h.dispatchActionOp(), h.dispatchAction)
	huma.Register(api, h.getFormOp(), h.getForm)
}

func (h *Handler) healthCheck(_ context.Context, _ *struct{}) (*healthOutput, error) {
	h.log.Debug("health check request received")
	return &healthOutput{Body: healthResponse{Status: "OK"}}, nil
}

func (h *Handler) getRecord(_ context.Context, input *sessionInput) (*recordOutput, error) {
	ctrl, err := h.controller(input.SessionID)
	if err != nil {
		return nil, err
	}
	return h.recordOutput(ctrl.Record())
}

func (h *Handler) patchRecord(_ context.Context, input *patchInput) (*recordOutput, error) {
	ctrl, err := h.controller(input.SessionID)
	if err != nil {
		return nil, err
	}

	for i, item := range input.Body.Patches {
		_, err := ctrl.Apply(certification.Patch{Field: certification.Field(item.Field), Value: item.Value})
		if err == nil {
			continue
		}
		var fieldErr *certification.FieldError
		if !errors.As(err, &fieldErr) {
			return nil, err
		}
		location := fmt.Sprintf("body.patches[%d].value", i)
		if errors.Is(err, certification.ErrUnknownField) {
			location = fmt.Sprintf("body.patches[%d].field", i)
		}
		return nil, huma.Error422UnprocessableEntity(fieldErr.Reason(), &huma.ErrorDetail{
			Location: location,
			Message:  fieldErr.Reason(),
			Value:    item,
		})
	}
	return h.recordOutput(ctrl.Record())
}

func (h *Handler) dispatchAction(ctx context.Context, input *actionInput) (*actionOutput, error) {
	ctrl, err := h.controller(input.SessionID)
	if err != nil {
		return nil, err
	}
	action, err := page.ParseAction(input.Action)
	if err != nil {
		return nil, huma.Error404NotFound("Unknown action")
	}
	note, err := ctrl.Dispatch(ctx, action)
	if err != nil {
		return nil, huma.Error500InternalServerError(note.Message, err)
	}
	return &actionOutput{Body: note}, nil
}

func (h *Handler) getForm(_ context.Context, _ *struct{}) (*formOutput, error) {
	return &formOutput{Body: h.deps.Form}, nil
}

func (h *Handler) controller(sessionID string) (*page.Controller, error) {
	if h.deps.Sessions == nil {
		return nil, huma.Error404NotFound("Session not found")
	}
	ctrl, ok := h.deps.Sessions.Lookup(sessionID)
	if !ok {
		return nil, huma.Error404NotFound("Session not found")
	}
	return ctrl, nil
}

func (h *Handler) recordOutput(rec certification.Record) (*recordOutput, error) {
	out := &recordOutput{Body: recordResponse{Values: rec.Values()}}
	if h.deps.Certificates != nil {
		cert, err := h.deps.Certificates.Certificate(rec)
		if err != nil {
			return nil, huma.Error500InternalServerError("Unable to derive certificate", err)
		}
		out.Body.Certificate = cert
	}
	return out, nil
}
