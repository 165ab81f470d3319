package types

import (
	"encoding/json"
	"fmt"
	"math"
)

// RawResponse is a response decoded into a generic JSON object. Its accessors
// apply strict typing: a field of the wrong JSON type is treated as absent.
type RawResponse map[string]any

// DecodeRawResponse decodes a JSON object into a RawResponse
func DecodeRawResponse(data []byte) (RawResponse, error) {
	var raw RawResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if raw == nil {
		return nil, ErrNotObject
	}
	return raw, nil
}

// Status implements Response. ok must be a JSON boolean; 1, "true" and the
// like leave the status unknown.
func (r RawResponse) Status() (bool, bool) {
	ok, isBool := r["ok"].(bool)
	return ok, isBool
}

// ErrorCode implements Response
func (r RawResponse) ErrorCode() string {
	code, _ := r["error"].(string)
	return code
}

// Has reports whether key is present, whatever its value
func (r RawResponse) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// GetString returns the string stored under key, if any
func (r RawResponse) GetString(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// CursorMetadata returns response_metadata and whether the key was present.
// A present key of any shape yields non-nil metadata.
func (r RawResponse) CursorMetadata() (*ResponseMetadata, bool) {
	raw, present := r["response_metadata"]
	if !present {
		return nil, false
	}
	meta := &ResponseMetadata{}
	fields, ok := raw.(map[string]any)
	if !ok {
		return meta, true
	}
	if cursor, ok := fields["next_cursor"].(string); ok {
		meta.NextCursor = &cursor
	}
	meta.Warnings = stringSlice(fields["warnings"])
	meta.Messages = stringSlice(fields["messages"])
	if n, ok := toInt(fields["retry_after"]); ok {
		meta.RetryAfter = n
	}
	return meta, true
}

// PagingInfo returns the paging record and whether the key was present.
// Members that are missing or not whole numbers are left nil.
func (r RawResponse) PagingInfo() (*Paging, bool) {
	raw, present := r["paging"]
	if !present {
		return nil, false
	}
	paging := &Paging{}
	fields, ok := raw.(map[string]any)
	if !ok {
		return paging, true
	}
	paging.Count = intMember(fields, "count")
	paging.Total = intMember(fields, "total")
	paging.Page = intMember(fields, "page")
	paging.Pages = intMember(fields, "pages")
	return paging, true
}

// Decode re-encodes the raw object into a typed response such as *ConversationsListResponse
func (r RawResponse) Decode(into any) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func intMember(fields map[string]any, key string) *int {
	n, ok := toInt(fields[key])
	if !ok {
		return nil
	}
	return &n
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
