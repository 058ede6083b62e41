// Package orchestrator wires the loader → parser → builder → transformer
// pipeline that turns an OpenAPI operation into a form document, for callers
// that prefer a single entry point.
package orchestrator
