// Package guards classifies Web API responses as success, error, rate
// limited, missing scope or authentication failure.
//
// The ok field is compared strictly: only a JSON boolean counts. A response
// whose ok is missing or not a boolean is neither a success nor an error, and
// every predicate reports false for it. No predicate panics, including on a
// nil Response.
package guards

import (
	"reflect"

	"github.com/cecil-the-coder/slack-api-types/pkg/types"
)

// IsSuccessResponse reports whether ok is exactly true
func IsSuccessResponse(r types.Response) bool {
	ok, known := status(r)
	return known && ok
}

// IsErrorResponse reports whether ok is exactly false
func IsErrorResponse(r types.Response) bool {
	ok, known := status(r)
	return known && !ok
}

// IsRateLimited reports whether r failed with rate_limited
func IsRateLimited(r types.Response) bool {
	return IsErrorResponse(r) && r.ErrorCode() == types.ErrorRateLimited
}

// IsMissingScope reports whether r failed with missing_scope.
// The scope needed is in the response's needed field.
func IsMissingScope(r types.Response) bool {
	return IsErrorResponse(r) && r.ErrorCode() == types.ErrorMissingScope
}

// IsAuthError reports whether r failed with one of the authentication error
// codes. A failed response without an error code is not an auth error.
func IsAuthError(r types.Response) bool {
	if !IsErrorResponse(r) {
		return false
	}
	code := r.ErrorCode()
	return code != "" && types.IsAuthErrorCode(code)
}

func status(r types.Response) (ok, known bool) {
	if r == nil {
		return false, false
	}
	if rv := reflect.ValueOf(r); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return false, false
	}
	return r.Status()
}
