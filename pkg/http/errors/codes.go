package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeInvalidPayload   = "invalid_payload"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeMissingField     = "missing_field"

	// Resource errors
	ErrCodeNotFound        = "not_found"
	ErrCodeUnknownMode     = "unknown_mode"
	ErrCodeSessionNotFound = "session_not_found"
	ErrCodeInvalidSession  = "invalid_session_id"

	// Game data errors
	ErrCodePoolExhausted = "pool_exhausted"
	ErrCodeNotReady      = "not_ready"

	// High score errors
	ErrCodeHighScoreFailed = "highscore_failed"
	ErrCodeStatsFailed     = "stats_failed"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
	ErrCodeUpstreamError      = "upstream_error"
	ErrCodeMethodNotAllowed   = "method_not_allowed"
)
