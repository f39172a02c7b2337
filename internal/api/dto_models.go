package api

// ErrorResponse is the standard error payload for all API endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is a generic success payload for endpoints that have no
// natural resource body to return.
type SuccessResponse struct {
	Message string `json:"message"`
}
