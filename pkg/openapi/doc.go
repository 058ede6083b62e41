// Package openapi exposes the loader and parser contracts used to import form
// definitions from OpenAPI documents. The concrete implementations live under
// internal/openapi so kin-openapi types never leak into the public API; the
// root formdoc package wires them together.
package openapi
