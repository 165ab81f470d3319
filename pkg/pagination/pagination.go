// Package pagination inspects cursor and offset pagination metadata.
//
// A missing container and a missing field inside it are treated alike: neither
// reports another page.
package pagination

import (
	"reflect"

	"github.com/cecil-the-coder/slack-api-types/pkg/types"
)

// CursorPage is a response that may carry response_metadata.
// types.APICallResult, every response embedding it, and types.RawResponse implement it.
type CursorPage interface {
	// CursorMetadata returns response_metadata and whether the key was present.
	CursorMetadata() (*types.ResponseMetadata, bool)
}

// OffsetPage is a response that may carry a paging record.
// types.OffsetPaginatedResponse and types.RawResponse implement it.
type OffsetPage interface {
	// PagingInfo returns paging and whether the key was present.
	PagingInfo() (*types.Paging, bool)
}

// HasCursor reports whether r contains response_metadata at all, whatever its shape
func HasCursor(r CursorPage) bool {
	_, present := cursorMetadata(r)
	return present
}

// HasNextPage reports whether response_metadata.next_cursor is a non-empty string
func HasNextPage(r CursorPage) bool {
	cursor, ok := ExtractCursor(r)
	return ok && cursor != ""
}

// ExtractCursor returns response_metadata.next_cursor verbatim, including an
// empty string, and false when the path is absent
func ExtractCursor(r CursorPage) (string, bool) {
	meta, present := cursorMetadata(r)
	if !present {
		return "", false
	}
	return meta.Cursor()
}

// HasOffsetPaging reports whether r contains a paging record
func HasOffsetPaging(r OffsetPage) bool {
	_, present := pagingInfo(r)
	return present
}

// HasMorePages reports whether paging.page and paging.pages are both present
// and page < pages
func HasMorePages(r OffsetPage) bool {
	paging, _ := pagingInfo(r)
	return paging.HasMore()
}

// GetTotalCount returns paging.total and false when paging or total is absent
func GetTotalCount(r OffsetPage) (int, bool) {
	paging, _ := pagingInfo(r)
	return paging.TotalCount()
}

func cursorMetadata(r CursorPage) (*types.ResponseMetadata, bool) {
	if isNil(r) {
		return nil, false
	}
	return r.CursorMetadata()
}

func pagingInfo(r OffsetPage) (*types.Paging, bool) {
	if isNil(r) {
		return nil, false
	}
	return r.PagingInfo()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
