package models

type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindAuth              ErrorKind = "auth"
	KindNotFound          ErrorKind = "not_found"
	KindRemoteUnavailable ErrorKind = "remote_unavailable"
	KindInternal          ErrorKind = "internal"
)

// /api/submit 응답 envelope
type SubmitResponse struct {
	OK     bool                `json:"ok" example:"true"`
	Result *AppendConfirmation `json:"result,omitempty"`
	Error  *APIError           `json:"error,omitempty"`
}

type APIError struct {
	Kind    ErrorKind `json:"kind" example:"validation"`
	Message string    `json:"message" example:"name is required"`
}
