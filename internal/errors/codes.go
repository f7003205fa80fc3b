package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationMalformedBody ErrorCode = "VALIDATION_005"
)

// Tool error codes (TOOL_*)
const (
	ToolNotFound      ErrorCode = "TOOL_001"
	ToolAlreadyExists ErrorCode = "TOOL_002"
	ToolInvalidID     ErrorCode = "TOOL_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound ErrorCode = "CATEGORY_001"
)

// Request routing error codes (REQUEST_*)
const (
	RequestRouteNotFound        ErrorCode = "REQUEST_001"
	RequestMethodNotAllowed     ErrorCode = "REQUEST_002"
	RequestPayloadTooLarge      ErrorCode = "REQUEST_003"
	RequestUnsupportedMediaType ErrorCode = "REQUEST_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationMalformedBody: "Request body is not valid JSON",

	// Tool errors
	ToolNotFound:      "Tool not found",
	ToolAlreadyExists: "A tool with this name already exists",
	ToolInvalidID:     "Invalid tool ID",

	// Category errors
	CategoryNotFound: "Category not found",

	// Request errors
	RequestRouteNotFound:        "Resource not found",
	RequestMethodNotAllowed:     "Method not allowed",
	RequestPayloadTooLarge:      "Request payload too large",
	RequestUnsupportedMediaType: "Unsupported media type",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
