// Package i18n provides internationalization support for the menu service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates a body that could not be decoded.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyServiceUnavailable indicates the storage backend is unavailable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyValidation indicates a malformed generation or update request.
	ErrKeyValidation = "error.validation"
	// ErrKeyInvalidData indicates a well formed but inconsistent request.
	ErrKeyInvalidData = "error.invalid_data"
	// ErrKeyInsufficientDishes indicates the catalog cannot satisfy a menu request.
	ErrKeyInsufficientDishes = "error.insufficient_dishes"
	// ErrKeyIdempotencyUnavailable indicates the idempotency store failed.
	ErrKeyIdempotencyUnavailable = "error.idempotency_unavailable"
)
