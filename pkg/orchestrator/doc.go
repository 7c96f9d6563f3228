// Package orchestrator wires the loader → parser → model builder → renderer
// pipeline behind a single entry point with injectable stages.
package orchestrator
