package dto

// SuccessResponse is the bare success envelope.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the failure envelope used by every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
