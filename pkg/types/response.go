package types

// Response is implemented by every Web API response envelope, typed or raw.
type Response interface {
	// Status reports the envelope's ok field. known is false when the field
	// is missing or is not a JSON boolean; ok is meaningful only when known is true.
	Status() (ok bool, known bool)
	// ErrorCode returns the error field, or "" when it is absent.
	ErrorCode() string
}

// APICallResult is the envelope shared by every Web API response.
// OK is nil when ok was missing or null.
type APICallResult struct {
	OK       *bool  `json:"ok,omitempty"`
	Error    string `json:"error,omitempty"`
	Needed   string `json:"needed,omitempty"`   // scope required, on missing_scope
	Provided string `json:"provided,omitempty"` // scopes the token holds, on missing_scope
	Warning  string `json:"warning,omitempty"`

	ResponseMetadata Optional[ResponseMetadata] `json:"response_metadata,omitzero"`
}

// Status implements Response. A missing or null ok leaves the status unknown.
func (r APICallResult) Status() (bool, bool) {
	if r.OK == nil {
		return false, false
	}
	return *r.OK, true
}

// IsOK reports whether ok is true
func (r APICallResult) IsOK() bool {
	return r.OK != nil && *r.OK
}

// ErrorCode implements Response
func (r APICallResult) ErrorCode() string {
	return r.Error
}

// CursorMetadata returns response_metadata and whether the key was present.
// A present null yields empty metadata.
func (r APICallResult) CursorMetadata() (*ResponseMetadata, bool) {
	if !r.ResponseMetadata.Present {
		return nil, false
	}
	if r.ResponseMetadata.Value == nil {
		return &ResponseMetadata{}, true
	}
	return r.ResponseMetadata.Value, true
}

// Err converts an envelope that is not a success into an *APIError, including
// one whose ok is missing. It returns nil when ok is true.
func (r APICallResult) Err() error {
	if r.IsOK() {
		return nil
	}
	apiErr := NewAPIError(r.Error).
		WithScopes(r.Needed, r.Provided).
		WithWarning(r.Warning)
	if meta := r.ResponseMetadata.Value; meta != nil && meta.RetryAfter > 0 {
		apiErr = apiErr.WithRetryAfter(meta.RetryAfter)
	}
	return apiErr
}

// ResponseMetadata carries cursor pagination state and non-fatal warnings
type ResponseMetadata struct {
	NextCursor *string  `json:"next_cursor,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
	Messages   []string `json:"messages,omitempty"`
	RetryAfter int      `json:"retry_after,omitempty"` // seconds, on rate_limited
}

// Cursor returns next_cursor verbatim and whether it was present. Safe on a nil receiver.
func (m *ResponseMetadata) Cursor() (string, bool) {
	if m == nil || m.NextCursor == nil {
		return "", false
	}
	return *m.NextCursor, true
}

// WithCursor returns present response_metadata carrying the given next_cursor
func WithCursor(cursor string) Optional[ResponseMetadata] {
	return Some(ResponseMetadata{NextCursor: &cursor})
}

// Paging is the legacy offset pagination record. A nil member was absent or
// not a whole number.
type Paging struct {
	Count *int `json:"count,omitempty"`
	Total *int `json:"total,omitempty"`
	Page  *int `json:"page,omitempty"`
	Pages *int `json:"pages,omitempty"`
}

// NewPaging returns a record with every member set
func NewPaging(count, total, page, pages int) Paging {
	return Paging{Count: &count, Total: &total, Page: &page, Pages: &pages}
}

// TotalCount returns total and whether it was present. Safe on a nil receiver.
func (p *Paging) TotalCount() (int, bool) {
	if p == nil || p.Total == nil {
		return 0, false
	}
	return *p.Total, true
}

// HasMore reports whether page and pages are both present and page < pages.
// Safe on a nil receiver.
func (p *Paging) HasMore() bool {
	if p == nil || p.Page == nil || p.Pages == nil {
		return false
	}
	return *p.Page < *p.Pages
}

// CursorPaginatedResponse is a response that may carry a next_cursor
type CursorPaginatedResponse struct {
	APICallResult
}

// OffsetPaginatedResponse is a response that may carry a paging record
type OffsetPaginatedResponse struct {
	APICallResult
	Paging Optional[Paging] `json:"paging,omitzero"`
}

// PagingInfo returns the paging record and whether the key was present.
// A present null yields an empty record.
func (r OffsetPaginatedResponse) PagingInfo() (*Paging, bool) {
	if !r.Paging.Present {
		return nil, false
	}
	if r.Paging.Value == nil {
		return &Paging{}, true
	}
	return r.Paging.Value, true
}
