package preview

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-certform/pkg/certification"
	rendertemplate "github.com/goliatone/go-certform/pkg/render/template"
	"github.com/goliatone/go-certform/pkg/render/template/gotemplate"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithLocality sets the barangay printed in the certificate prose.
func WithLocality(locality Locality) Option {
	return func(r *Renderer) {
		r.locality = locality
	}
}

// WithQRCode embeds a verification QR code of the given pixel size. A size
// of zero disables it.
func WithQRCode(size int) Option {
	return func(r *Renderer) {
		r.qrSize = size
	}
}

// WithTemplateRenderer replaces the embedded certificate templates.
func WithTemplateRenderer(templates rendertemplate.TemplateRenderer) Option {
	return func(r *Renderer) {
		if templates != nil {
			r.templates = templates
		}
	}
}

// Renderer turns a record into the certificate as HTML or plain text.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	policy    *bluemonday.Policy
	locality  Locality
	qrSize    int
}

// NewRenderer builds a Renderer backed by the embedded templates.
func NewRenderer(options ...Option) (*Renderer, error) {
	r := &Renderer{
		policy:   certificatePolicy(),
		locality: DefaultLocality,
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithSetName("certificate"),
		)
		if err != nil {
			return nil, fmt.Errorf("preview: configure templates: %w", err)
		}
		r.templates = engine
	}
	return r, nil
}

// Locality reports the barangay the renderer prints.
func (r *Renderer) Locality() Locality {
	return r.locality
}

// Certificate derives the display view of rec, including the QR code when
// enabled.
func (r *Renderer) Certificate(rec certification.Record) (Certificate, error) {
	cert := Derive(rec, r.locality)
	if r.qrSize > 0 {
		uri, err := qrDataURI(VerificationPayload(cert), r.qrSize)
		if err != nil {
			return Certificate{}, err
		}
		cert.QRCode = uri
	}
	return cert, nil
}

// HTML renders the certificate fragment shown beside the form.
func (r *Renderer) HTML(ctx context.Context, rec certification.Record) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cert, err := r.Certificate(rec)
	if err != nil {
		return nil, err
	}
	out, err := r.templates.RenderTemplate(htmlTemplate, cert)
	if err != nil {
		return nil, fmt.Errorf("preview: render html: %w", err)
	}
	return r.policy.SanitizeBytes([]byte(out)), nil
}

// Text renders the certificate for terminals.
func (r *Renderer) Text(ctx context.Context, rec certification.Record) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cert := Derive(rec, r.locality)
	out, err := r.templates.RenderTemplate(textTemplate, cert)
	if err != nil {
		return nil, fmt.Errorf("preview: render text: %w", err)
	}
	return []byte(out), nil
}
