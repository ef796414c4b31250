package constants

import "net/http"

// CodedError is an error carrying the HTTP status it should be reported with.
// The api error handler unwraps to the first CodedError in the chain.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrMissingFieldIndex    = NewCodedError(http.StatusBadRequest, "field and index are required")
	ErrMissingProvinceCode  = NewCodedError(http.StatusBadRequest, "province code is required")
	ErrMissingDistrictCodes = NewCodedError(http.StatusBadRequest, "province and district codes are required")
	ErrEngineUnavailable    = NewCodedError(http.StatusServiceUnavailable, "search engine is not reachable")
)
