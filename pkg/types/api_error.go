package types

import "fmt"

// Error codes returned in the "error" field of a failed response
const (
	ErrorRateLimited  = "rate_limited"
	ErrorMissingScope = "missing_scope"

	ErrorInvalidAuth        = "invalid_auth"
	ErrorNotAuthed          = "not_authed"
	ErrorAccountInactive    = "account_inactive"
	ErrorTokenRevoked       = "token_revoked"
	ErrorTokenExpired       = "token_expired"
	ErrorNoPermission       = "no_permission"
	ErrorOrgLoginRequired   = "org_login_required"
	ErrorEKMAccessDenied    = "ekm_access_denied"
	ErrorChannelNotFound    = "channel_not_found"
	ErrorNotInChannel       = "not_in_channel"
	ErrorUserNotFound       = "user_not_found"
	ErrorIsArchived         = "is_archived"
	ErrorMsgTooLong         = "msg_too_long"
	ErrorNoText             = "no_text"
	ErrorInvalidArguments   = "invalid_arguments"
	ErrorInvalidArgName     = "invalid_arg_name"
	ErrorInvalidArrayArg    = "invalid_array_arg"
	ErrorInvalidCharset     = "invalid_charset"
	ErrorInvalidFormData    = "invalid_form_data"
	ErrorInvalidPostType    = "invalid_post_type"
	ErrorMissingPostType    = "missing_post_type"
	ErrorTeamAddedToOrg     = "team_added_to_org"
	ErrorUpgradeRequired    = "upgrade_required"
	ErrorRequestTimeout     = "request_timeout"
	ErrorServiceUnavailable = "service_unavailable"
	ErrorFatalError         = "fatal_error"
	ErrorInternalError      = "internal_error"
)

var authErrorCodes = [...]string{
	ErrorInvalidAuth,
	ErrorNotAuthed,
	ErrorAccountInactive,
	ErrorTokenRevoked,
	ErrorTokenExpired,
	ErrorNoPermission,
	ErrorOrgLoginRequired,
	ErrorEKMAccessDenied,
}

// AuthErrorCodes returns the error codes that indicate an authentication failure
func AuthErrorCodes() []string {
	out := make([]string, len(authErrorCodes))
	copy(out, authErrorCodes[:])
	return out
}

// IsAuthErrorCode reports whether code is one of the authentication error codes
func IsAuthErrorCode(code string) bool {
	for _, c := range authErrorCodes {
		if code == c {
			return true
		}
	}
	return false
}

// ErrorCategory groups error codes by how a caller is expected to react
type ErrorCategory string

const (
	CategoryUnknown        ErrorCategory = "unknown"
	CategoryAuthentication ErrorCategory = "authentication"
	CategoryRateLimit      ErrorCategory = "rate_limit"
	CategoryMissingScope   ErrorCategory = "missing_scope"
	CategoryInvalidRequest ErrorCategory = "invalid_request"
	CategoryNotFound       ErrorCategory = "not_found"
	CategoryServerError    ErrorCategory = "server_error"
)

// ClassifyErrorCode maps an error code to its category
func ClassifyErrorCode(code string) ErrorCategory {
	switch {
	case code == ErrorRateLimited:
		return CategoryRateLimit
	case code == ErrorMissingScope:
		return CategoryMissingScope
	case IsAuthErrorCode(code):
		return CategoryAuthentication
	}

	switch code {
	case ErrorChannelNotFound, ErrorUserNotFound:
		return CategoryNotFound
	case ErrorNotInChannel, ErrorIsArchived, ErrorMsgTooLong, ErrorNoText,
		ErrorInvalidArguments, ErrorInvalidArgName, ErrorInvalidArrayArg,
		ErrorInvalidCharset, ErrorInvalidFormData, ErrorInvalidPostType,
		ErrorMissingPostType, ErrorTeamAddedToOrg, ErrorUpgradeRequired:
		return CategoryInvalidRequest
	case ErrorRequestTimeout, ErrorServiceUnavailable, ErrorFatalError, ErrorInternalError:
		return CategoryServerError
	}
	return CategoryUnknown
}

// APIError is a failed Web API call expressed as a Go error
type APIError struct {
	Code       string        // Value of the response's error field
	Category   ErrorCategory // Derived from Code
	Method     string        // API method, e.g. "chat.postMessage", when known
	Needed     string        // Scope required, on missing_scope
	Provided   string        // Scopes held by the token, on missing_scope
	Warning    string        // Response warning field, if any
	RetryAfter int           // Seconds to wait before retry (for rate limits)
}

// Error implements the error interface
func (e *APIError) Error() string {
	code := e.Code
	if code == "" {
		code = "unknown_error"
	}
	msg := code
	if e.Method != "" {
		msg = e.Method + ": " + code
	}
	if e.Needed != "" {
		msg = fmt.Sprintf("%s (needed=%s)", msg, e.Needed)
	}
	return fmt.Sprintf("slack api error: %s (category=%s)", msg, e.Category)
}

// IsRetryable returns true if the call may succeed when repeated later
func (e *APIError) IsRetryable() bool {
	switch e.Category {
	case CategoryRateLimit, CategoryServerError:
		return true
	}
	return false
}

// WithMethod sets the method field and returns the error for chaining
func (e *APIError) WithMethod(method string) *APIError {
	e.Method = method
	return e
}

// WithScopes sets the needed and provided scope fields and returns the error for chaining
func (e *APIError) WithScopes(needed, provided string) *APIError {
	e.Needed = needed
	e.Provided = provided
	return e
}

// WithWarning sets the warning field and returns the error for chaining
func (e *APIError) WithWarning(warning string) *APIError {
	e.Warning = warning
	return e
}

// WithRetryAfter sets the retry after field and returns the error for chaining
func (e *APIError) WithRetryAfter(retryAfter int) *APIError {
	e.RetryAfter = retryAfter
	return e
}

// NewAPIError creates an APIError for the given error code
func NewAPIError(code string) *APIError {
	return &APIError{
		Code:     code,
		Category: ClassifyErrorCode(code),
	}
}
