package api

import "github.com/artpar/menud/internal/core/domain"

// =============================================================================
// Response Types
// =============================================================================

// IndexResponse describes the API and its endpoints.
type IndexResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// DeleteResponse confirms a deletion and carries the removed item.
type DeleteResponse struct {
	Message string          `json:"message"`
	Item    domain.MenuItem `json:"item"`
}

// ErrorResponse is the error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse reports every failed field rule for a write body.
type ValidationErrorResponse struct {
	Error    string   `json:"error"`
	Messages []string `json:"messages"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}
