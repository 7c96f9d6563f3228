// Package template defines the template seam shared by the form renderer, the
// certificate preview and the page shell. Implementations live in
// subpackages; gotemplate is the pongo2-backed default.
package template
