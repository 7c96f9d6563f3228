package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Health check endpoint",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getRecordOp() huma.Operation {
	return huma.Operation{
		OperationID: "record-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/sessions/{sessionId}/record",
		Summary:     "Current record and its derived certificate text",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) patchRecordOp() huma.Operation {
	return huma.Operation{
		OperationID: "record-patch",
		Method:      http.MethodPatch,
		Path:        "/api/v1/sessions/{sessionId}/record",
		Summary:     "Replace one or more fields",
		Description: "Patches apply in order. A rejected value stops processing; earlier patches stay applied.",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) dispatchActionOp() huma.Operation {
	return huma.Operation{
		OperationID: "action-dispatch",
		Method:      http.MethodPost,
		Path:        "/api/v1/sessions/{sessionId}/actions/{action}",
		Summary:     "Run a toolbar action",
		Tags:        []string{"actions"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getFormOp() huma.Operation {
	return huma.Operation{
		OperationID: "form-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/form",
		Summary:     "Form model used to render the certification form",
		Tags:        []string{"form"},
		Middlewares: h.middleware,
	}
}
