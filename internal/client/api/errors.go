package api

import "errors"

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrNotFound         = errors.New("not found")
	ErrServer           = errors.New("server error")
)

// ValidationError carries the field-level messages the server attaches to a
// rejected create/change request. Match with errors.As.
type ValidationError struct {
	Message       string              `json:"message"`
	InvalidFields map[string][]string `json:"invalid_fields"`
}

func (e *ValidationError) Error() string {
	return e.Message
}
