package types

// SuccessEnvelope is the body shape for every 2xx response.
type SuccessEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// APIError carries the machine-readable error payload.
type APIError struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope is the body shape for every non-2xx response.
type ErrorEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Error   APIError `json:"error"`
}
