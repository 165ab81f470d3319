// Package blocks classifies Block Kit blocks by their "type" discriminant.
//
// Classification never inspects type-specific fields: a value with
// {"type": "section"} is a section block whether or not it has text. Blocks of
// unknown types are still Blocks; they are simply not KnownBlocks.
package blocks

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/cecil-the-coder/slack-api-types/pkg/types"
)

// IsBlock reports whether v is a structured record with a string "type" field.
//
// Accepted shapes are types.Block, a non-nil *types.Block, any types.KnownBlock,
// a map[string]any (including types.RawResponse-style maps) and a JSON object
// held in json.RawMessage or []byte. Every other value, including nil, yields false.
func IsBlock(v any) bool {
	_, ok := blockType(v)
	return ok
}

// IsKnownBlock reports whether v is a Block whose type is in the known set
func IsKnownBlock(v any) bool {
	_, ok := KnownType(v)
	return ok
}

// KnownType returns the block type of v when v is a KnownBlock
func KnownType(v any) (types.BlockType, bool) {
	t, ok := blockType(v)
	if !ok || !t.IsKnown() {
		return "", false
	}
	return t, true
}

// IsSectionBlock reports whether b is a section block
func IsSectionBlock(b types.Block) bool {
	return b.Type == types.BlockTypeSection
}

// IsActionsBlock reports whether b is an actions block
func IsActionsBlock(b types.Block) bool {
	return b.Type == types.BlockTypeActions
}

// IsDividerBlock reports whether b is a divider block
func IsDividerBlock(b types.Block) bool {
	return b.Type == types.BlockTypeDivider
}

// IsHeaderBlock reports whether b is a header block
func IsHeaderBlock(b types.Block) bool {
	return b.Type == types.BlockTypeHeader
}

// IsImageBlock reports whether b is an image block
func IsImageBlock(b types.Block) bool {
	return b.Type == types.BlockTypeImage
}

// IsContextBlock reports whether b is a context block
func IsContextBlock(b types.Block) bool {
	return b.Type == types.BlockTypeContext
}

// IsInputBlock reports whether b is an input block
func IsInputBlock(b types.Block) bool {
	return b.Type == types.BlockTypeInput
}

// ValidateBlocks reports whether every element of vs is a Block.
// An empty slice validates.
func ValidateBlocks(vs []any) bool {
	for _, v := range vs {
		if !IsBlock(v) {
			return false
		}
	}
	return true
}

// FilterKnownBlocks returns, in order, the blocks whose type is known.
// Other blocks are dropped silently. The input is not modified.
func FilterKnownBlocks(bs []types.Block) []types.Block {
	out := make([]types.Block, 0, len(bs))
	for _, b := range bs {
		if b.Type.IsKnown() {
			out = append(out, b)
		}
	}
	return out
}

func blockType(v any) (types.BlockType, bool) {
	switch b := v.(type) {
	case nil:
		return "", false
	case types.Block:
		return b.Type, true
	case *types.Block:
		if b == nil {
			return "", false
		}
		return b.Type, true
	case types.KnownBlock:
		// a nil *SectionBlock and friends would panic on the value receiver
		if rv := reflect.ValueOf(b); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		return b.BlockType(), true
	case map[string]any:
		return typeField(b)
	case types.RawResponse:
		return typeField(b)
	case json.RawMessage:
		return rawType(b)
	case []byte:
		return rawType(b)
	default:
		return "", false
	}
}

func typeField(m map[string]any) (types.BlockType, bool) {
	if m == nil {
		return "", false
	}
	t, ok := m["type"].(string)
	return types.BlockType(t), ok
}

func rawType(data []byte) (types.BlockType, bool) {
	if string(bytes.TrimSpace(data)) == "null" {
		return "", false
	}
	var b types.Block
	if err := json.Unmarshal(data, &b); err != nil {
		return "", false
	}
	return b.Type, true
}
