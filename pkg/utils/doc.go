// Package utils gathers the runtime helpers for working with Slack Web API
// values in one import:
//
//   - block classification (see package blocks)
//   - response classification (see package guards)
//   - cursor and offset pagination (see package pagination)
//
// Example:
//
//	resp, _ := types.DecodeRawResponse(body)
//	if utils.IsSuccessResponse(resp) && utils.HasNextPage(resp) {
//	    cursor, _ := utils.ExtractCursor(resp)
//	    // request the next page with cursor
//	}
package utils
