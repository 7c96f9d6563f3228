package api

import (
	"github.com/goliatone/go-certform/pkg/model"
	"github.com/goliatone/go-certform/pkg/page"
	"github.com/goliatone/go-certform/pkg/preview"
)

type healthOutput struct {
	Body healthResponse
}

type healthResponse struct {
	Status string `json:"status" example:"OK" doc:"Health status of the service"`
}

type sessionInput struct {
	SessionID string `path:"sessionId" doc:"Session id issued when the page was loaded"`
}

type recordOutput struct {
	Body recordResponse
}

type recordResponse struct {
	Values      map[string]string   `json:"values" doc:"Field values keyed by field name"`
	Certificate preview.Certificate `json:"certificate" doc:"Display text derived from the values"`
}

type patchInput struct {
	SessionID string `path:"sessionId" doc:"Session id issued when the page was loaded"`
	Body      struct {
		Patches []patchItem `json:"patches" minItems:"1" doc:"Field replacements applied in order"`
	}
}

type patchItem struct {
	Field string `json:"field" doc:"Field name, for example surname"`
	Value string `json:"value" doc:"New value; empty clears the field"`
}

type actionInput struct {
	SessionID string `path:"sessionId" doc:"Session id issued when the page was loaded"`
	Action    string `path:"action" doc:"Toolbar action: new, save, find, refresh, preview, pdf or close"`
}

type actionOutput struct {
	Body page.Notification
}

type formOutput struct {
	Body model.FormModel
}
