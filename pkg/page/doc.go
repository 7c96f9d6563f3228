// Package page owns the state of one certification page: the record being
// edited and the toolbar actions (new, save, find, refresh, preview, pdf,
// close). Persistence, search and export go through the Repository, Exporter
// and Printer ports; the default adapters only acknowledge the request.
package page
