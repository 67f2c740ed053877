package dto

// ErrorResponse is the uniform error payload. Path is only set for structure
// validation failures and points at the offending node ("sections/2/components/0").
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}
