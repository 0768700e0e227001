package dto

import "time"

// ErrorResponse is the standard error body returned by every endpoint.
//
// Message keeps the "error" key the widget already reads; ErrorDetails
// carries the underlying cause when there is one.
type ErrorResponse struct {
	Message      string    `json:"error" example:"de and para are required"`
	ErrorDetails string    `json:"details,omitempty" example:"unsupported currency: \"XYZ\""`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
// err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
