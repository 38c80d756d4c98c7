package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ReviewAlreadyExists is reported as a client error, not 409, to keep the booking site's contract.
var ReviewAlreadyExists = &Failure{Code: http.StatusBadRequest, Message: "Review already exists for this booking"}

var PastVisitDate = &Failure{Code: http.StatusBadRequest, Message: "Please select a future date for your visit"}
var UnknownStore = &Failure{Code: http.StatusBadRequest, Message: "Please select a valid store"}
var CancellationWindowClosed = &Failure{
	Code:    http.StatusBadRequest,
	Message: "Cancellation is not permitted within 2 days of your reservation date",
}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// BadGateway returns a new Failure for errors reported by an upstream provider.
func BadGateway(msg string) error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
