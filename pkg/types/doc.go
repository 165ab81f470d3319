// Package types defines the data shapes of the Slack Web API: Block Kit blocks
// and their typed variants, the shared response envelope, pagination metadata,
// request arguments and responses for commonly used methods, and the error-code
// vocabulary a failed call reports.
//
// # Blocks
//
// A Block keeps its "type" discriminant and all other fields verbatim, so blocks
// of unknown or future types decode without error. Block.Decode narrows a block
// of a known type into its typed KnownBlock variant:
//
//	var b types.Block
//	_ = json.Unmarshal(data, &b)
//	if kb, err := b.Decode(); err == nil {
//	    if section, ok := kb.(types.SectionBlock); ok {
//	        fmt.Println(section.Text.Text)
//	    }
//	}
//
// # Responses
//
// Every typed response embeds APICallResult and therefore implements Response.
// RawResponse offers the same accessors over an undecoded JSON object. Both
// agree on strict typing: an "ok" that is missing or null leaves the status
// unknown, and response_metadata or paging count as present whenever their key
// is, even with a null value. Typed members record key presence through
// Optional and pointer fields.
//
// # Errors
//
// APICallResult.Err converts a failed envelope into an *APIError carrying the
// error code, its category and any scope or retry information.
package types
