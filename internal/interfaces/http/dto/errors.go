package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
	// ErrCodeValueMismatch is used when the item totals do not reconcile with
	// the recorded transaction value
	ErrCodeValueMismatch = "ERR_VALUE_MISMATCH"
	// ErrCodeProcessInconsistent is used when a process save was rolled back
	ErrCodeProcessInconsistent = "ERR_PROCESS_INCONSISTENT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Domain and
// import codes are listed verbatim so handlers can pass them straight through.
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	"INVALID_TRANSACTION": http.StatusBadRequest,
	"INVALID_DISCOUNT":    http.StatusBadRequest,
	"INVALID_DESCRIPTION": http.StatusBadRequest,
	"INVALID_QUANTITY":    http.StatusBadRequest,
	"INVALID_PRICE":       http.StatusBadRequest,
	"INVALID_SUPPLIER":    http.StatusBadRequest,
	"INDEX_OUT_OF_RANGE":  http.StatusBadRequest,
	"EMPTY_IMPORT":        http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState:  http.StatusUnprocessableEntity,
	ErrCodeBusinessRule:  http.StatusUnprocessableEntity,
	ErrCodeValueMismatch: http.StatusUnprocessableEntity,

	"LAST_LINE_ITEM":       http.StatusUnprocessableEntity,
	"NO_LINE_ITEMS":        http.StatusUnprocessableEntity,
	"LINES_MISALIGNED":     http.StatusUnprocessableEntity,
	"SUPPLIER_IS_WINNER":   http.StatusUnprocessableEntity,
	"DUPLICATE_SUPPLIER":   http.StatusUnprocessableEntity,
	"NOT_ENOUGH_PROPOSALS": http.StatusUnprocessableEntity,

	// Import errors -> 422 Unprocessable Entity
	"ERR_IMPORT_UNKNOWN":       http.StatusUnprocessableEntity,
	"ERR_IMPORT_EMPTY_FILE":    http.StatusUnprocessableEntity,
	"ERR_IMPORT_MALFORMED_ROW": http.StatusUnprocessableEntity,
	"ERR_IMPORT_INVALID_TYPE":  http.StatusUnprocessableEntity,
	"ERR_IMPORT_NO_ITEMS":      http.StatusUnprocessableEntity,

	// Persistence failure -> 500 Internal Server Error
	ErrCodeProcessInconsistent: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps shared domain error codes to the standardized
// API format
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":                 ErrCodeNotFound,
	"ALREADY_EXISTS":            ErrCodeAlreadyExists,
	"INVALID_INPUT":             ErrCodeInvalidInput,
	"INVALID_STATE":             ErrCodeInvalidState,
	"VALUE_MISMATCH":            ErrCodeValueMismatch,
	"PROCESS_DATA_INCONSISTENT": ErrCodeProcessInconsistent,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the API format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
