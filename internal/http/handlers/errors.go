// Package handlers defines the HTTP-layer error codes used across all API
// endpoints.
//
// Codes are lowercase snake_case. Generic codes mirror HTTP status semantics;
// domain codes name the operation or dependency that failed. Clients branch
// on these rather than on messages.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeStoreUnavailable     = "store_unavailable"
	ErrCodeAssistantUnavailable = "assistant_unavailable"
	ErrCodeChatFailed           = "chat_failed"
	ErrCodeListFailed           = "list_failed"
	ErrCodeSaveFailed           = "save_failed"
	ErrCodeExportFailed         = "export_failed"
)
