// Package model defines the flat form model consumed by renderers. Builders
// live in internal/model and read the x-formgen extension namespace: "order"
// sets field position, "placeholder" fills the control placeholder and the
// curated UI hint keys (span, section, inputType, helpText...) are surfaced
// in Field.UIHints.
package model
