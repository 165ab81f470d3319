// Package inspect builds classification reports for Web API responses and
// Block Kit payloads read from JSON documents.
package inspect

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cecil-the-coder/slack-api-types/internal/logging"
	"github.com/cecil-the-coder/slack-api-types/pkg/blocks"
	"github.com/cecil-the-coder/slack-api-types/pkg/guards"
	"github.com/cecil-the-coder/slack-api-types/pkg/pagination"
	"github.com/cecil-the-coder/slack-api-types/pkg/types"
)

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusUnknown = "unknown" // ok missing or not a boolean
)

// ErrNoBlocks is returned when a document holds neither a block array nor a blocks field
var ErrNoBlocks = errors.New("document contains no blocks")

// ResponseReport summarises how the predicates classify a response
type ResponseReport struct {
	Status       string              `json:"status"`
	ErrorCode    string              `json:"error,omitempty"`
	Category     types.ErrorCategory `json:"category,omitempty"`
	RateLimited  bool                `json:"rate_limited"`
	MissingScope bool                `json:"missing_scope"`
	AuthError    bool                `json:"auth_error"`
	Needed       string              `json:"needed,omitempty"`
	RetryAfter   int                 `json:"retry_after,omitempty"`

	HasCursor   bool    `json:"has_cursor"`
	HasNextPage bool    `json:"has_next_page"`
	NextCursor  *string `json:"next_cursor,omitempty"`

	HasOffsetPaging bool `json:"has_offset_paging"`
	HasMorePages    bool `json:"has_more_pages"`
	TotalCount      *int `json:"total_count,omitempty"`

	Blocks *BlockReport `json:"blocks,omitempty"`
}

// BlockEntry describes one element of a block array
type BlockEntry struct {
	Index int    `json:"index"`
	Type  string `json:"type,omitempty"`
	Block bool   `json:"block"`
	Known bool   `json:"known"`
}

// BlockReport summarises a block array
type BlockReport struct {
	Valid   bool         `json:"valid"`
	Total   int          `json:"total"`
	Known   int          `json:"known"`
	Entries []BlockEntry `json:"entries"`
}

// Inspector classifies JSON documents
type Inspector struct {
	logger *slog.Logger
}

// New creates an Inspector. A nil logger discards output.
func New(logger *slog.Logger) *Inspector {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Inspector{logger: logger}
}

// Response classifies a Web API response document
func (i *Inspector) Response(data []byte) (*ResponseReport, error) {
	raw, err := types.DecodeRawResponse(data)
	if err != nil {
		return nil, err
	}

	report := &ResponseReport{
		ErrorCode:    raw.ErrorCode(),
		RateLimited:  guards.IsRateLimited(raw),
		MissingScope: guards.IsMissingScope(raw),
		AuthError:    guards.IsAuthError(raw),
		HasCursor:    pagination.HasCursor(raw),
		HasNextPage:  pagination.HasNextPage(raw),

		HasOffsetPaging: pagination.HasOffsetPaging(raw),
		HasMorePages:    pagination.HasMorePages(raw),
	}

	switch {
	case guards.IsSuccessResponse(raw):
		report.Status = StatusSuccess
	case guards.IsErrorResponse(raw):
		report.Status = StatusError
		report.Category = types.ClassifyErrorCode(report.ErrorCode)
	default:
		report.Status = StatusUnknown
		i.logger.Warn("response ok field is missing or not a boolean")
	}

	if report.MissingScope {
		report.Needed, _ = raw.GetString("needed")
	}
	if meta, ok := raw.CursorMetadata(); ok {
		report.RetryAfter = meta.RetryAfter
		for _, warning := range meta.Warnings {
			i.logger.Info("response warning", "warning", warning)
		}
	}
	if cursor, ok := pagination.ExtractCursor(raw); ok {
		report.NextCursor = &cursor
	}
	if total, ok := pagination.GetTotalCount(raw); ok {
		report.TotalCount = &total
	}

	if values, ok := embeddedBlocks(raw); ok {
		report.Blocks = i.blockReport(values)
	}

	i.logger.Debug("classified response",
		"status", report.Status,
		"error", report.ErrorCode,
		"has_cursor", report.HasCursor,
		"has_offset_paging", report.HasOffsetPaging,
	)
	return report, nil
}

// Blocks classifies a block array, or the blocks of an object holding a
// "blocks" array directly or under "message"
func (i *Inspector) Blocks(data []byte) (*BlockReport, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	switch v := doc.(type) {
	case []any:
		return i.blockReport(v), nil
	case map[string]any:
		if values, ok := embeddedBlocks(v); ok {
			return i.blockReport(values), nil
		}
	}
	return nil, ErrNoBlocks
}

func (i *Inspector) blockReport(values []any) *BlockReport {
	report := &BlockReport{
		Valid:   blocks.ValidateBlocks(values),
		Total:   len(values),
		Entries: make([]BlockEntry, 0, len(values)),
	}
	for idx, v := range values {
		entry := BlockEntry{
			Index: idx,
			Block: blocks.IsBlock(v),
			Known: blocks.IsKnownBlock(v),
		}
		if m, ok := v.(map[string]any); ok {
			entry.Type, _ = m["type"].(string)
		}
		if entry.Known {
			report.Known++
		} else if entry.Block {
			i.logger.Debug("unknown block type", "index", idx, "type", entry.Type)
		}
		report.Entries = append(report.Entries, entry)
	}
	return report
}

func embeddedBlocks(doc map[string]any) ([]any, bool) {
	if values, ok := doc["blocks"].([]any); ok {
		return values, true
	}
	if msg, ok := doc["message"].(map[string]any); ok {
		if values, ok := msg["blocks"].([]any); ok {
			return values, true
		}
	}
	return nil, false
}
