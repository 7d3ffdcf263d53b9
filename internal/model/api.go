package model

// APIResponse is the envelope returned by every REST endpoint
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	// Total carries the pre-pagination result count on list endpoints
	Total *int `json:"total,omitempty"`
}
