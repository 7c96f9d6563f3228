// Package preview derives the display text of a Barangay Certification and
// renders it into the certificate template. Everything here is a pure function
// of the record: empty fields render as bracketed placeholder tokens so an
// incomplete record still reads as a document.
package preview
