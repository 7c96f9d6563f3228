// Package certification models the Barangay Certification record edited by the
// form and read by the preview. The record is a plain value: editors produce a
// new record per change through Apply and never mutate in place.
package certification
