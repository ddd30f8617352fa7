// Package openapi exposes the public contracts for loading OpenAPI
// documents and discovering declared constraints from their schemas.
// Implementations live under internal/openapi to keep kin-openapi
// dependencies hidden from consumers.
package openapi
