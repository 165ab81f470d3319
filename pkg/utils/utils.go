package utils

import (
	"github.com/cecil-the-coder/slack-api-types/pkg/blocks"
	"github.com/cecil-the-coder/slack-api-types/pkg/guards"
	"github.com/cecil-the-coder/slack-api-types/pkg/pagination"
)

// Block classification
var (
	IsBlock           = blocks.IsBlock
	IsKnownBlock      = blocks.IsKnownBlock
	IsSectionBlock    = blocks.IsSectionBlock
	IsActionsBlock    = blocks.IsActionsBlock
	IsDividerBlock    = blocks.IsDividerBlock
	IsHeaderBlock     = blocks.IsHeaderBlock
	IsImageBlock      = blocks.IsImageBlock
	IsContextBlock    = blocks.IsContextBlock
	IsInputBlock      = blocks.IsInputBlock
	ValidateBlocks    = blocks.ValidateBlocks
	FilterKnownBlocks = blocks.FilterKnownBlocks
)

// Response classification
var (
	IsSuccessResponse = guards.IsSuccessResponse
	IsErrorResponse   = guards.IsErrorResponse
	IsRateLimited     = guards.IsRateLimited
	IsMissingScope    = guards.IsMissingScope
	IsAuthError       = guards.IsAuthError
)

// Pagination
var (
	HasCursor       = pagination.HasCursor
	HasNextPage     = pagination.HasNextPage
	ExtractCursor   = pagination.ExtractCursor
	HasOffsetPaging = pagination.HasOffsetPaging
	HasMorePages    = pagination.HasMorePages
	GetTotalCount   = pagination.GetTotalCount
)

// CursorPage and OffsetPage are the pagination accessor interfaces
type (
	CursorPage = pagination.CursorPage
	OffsetPage = pagination.OffsetPage
)
