// Package openapi holds the loader and parser contracts used to read the
// certification form schema. Implementations live under internal/openapi so
// kin-openapi types never leak to callers.
package openapi
