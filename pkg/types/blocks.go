package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// BlockType is the discriminant carried in the "type" field of every block.
type BlockType string

// Block types recognised by the Block Kit reference.
const (
	BlockTypeActions  BlockType = "actions"
	BlockTypeContext  BlockType = "context"
	BlockTypeDivider  BlockType = "divider"
	BlockTypeFile     BlockType = "file"
	BlockTypeHeader   BlockType = "header"
	BlockTypeImage    BlockType = "image"
	BlockTypeInput    BlockType = "input"
	BlockTypeRichText BlockType = "rich_text"
	BlockTypeSection  BlockType = "section"
	BlockTypeVideo    BlockType = "video"
)

var knownBlockTypes = [...]BlockType{
	BlockTypeActions,
	BlockTypeContext,
	BlockTypeDivider,
	BlockTypeFile,
	BlockTypeHeader,
	BlockTypeImage,
	BlockTypeInput,
	BlockTypeRichText,
	BlockTypeSection,
	BlockTypeVideo,
}

// KnownBlockTypes returns the closed set of known block types in alphabetical order.
// The returned slice is a copy and may be modified by the caller.
func KnownBlockTypes() []BlockType {
	out := make([]BlockType, len(knownBlockTypes))
	copy(out, knownBlockTypes[:])
	return out
}

// IsKnown reports whether t belongs to the known block type set.
func (t BlockType) IsKnown() bool {
	for _, known := range knownBlockTypes {
		if t == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer
func (t BlockType) String() string {
	return string(t)
}

var (
	// ErrUnknownBlockType is returned when narrowing a block whose type is not known.
	ErrUnknownBlockType = errors.New("unknown block type")
	// ErrMissingBlockType is returned when a block has no string "type" field.
	ErrMissingBlockType = errors.New("block has no string type field")
	// ErrNotObject is returned when a JSON value is not an object.
	ErrNotObject = errors.New("value is not a JSON object")
)

// Block is a single Block Kit block as it travels over the wire: the type
// discriminant plus every other key kept verbatim. Blocks of unknown or future
// types are valid Blocks and survive a decode/encode round trip unchanged.
type Block struct {
	Type   BlockType
	Fields map[string]json.RawMessage
}

// NewBlock creates an empty block of the given type
func NewBlock(t BlockType) Block {
	return Block{Type: t}
}

// Field returns the raw JSON value stored under name
func (b Block) Field(name string) (json.RawMessage, bool) {
	raw, ok := b.Fields[name]
	return raw, ok
}

// SetField encodes value and stores it under name. The "type" key is reserved.
func (b *Block) SetField(name string, value any) error {
	if name == "type" {
		return fmt.Errorf("block field %q is reserved", name)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode block field %q: %w", name, err)
	}
	if b.Fields == nil {
		b.Fields = make(map[string]json.RawMessage)
	}
	b.Fields[name] = raw
	return nil
}

// BlockID returns the optional block_id field, or "" when absent or not a string
func (b Block) BlockID() string {
	var id string
	if raw, ok := b.Fields["block_id"]; ok {
		_ = json.Unmarshal(raw, &id)
	}
	return id
}

// MarshalJSON implements json.Marshaler
func (b Block) MarshalJSON() ([]byte, error) {
	return marshalTagged(string(b.Type), b.Fields)
}

// UnmarshalJSON implements json.Unmarshaler
func (b *Block) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	typ, fields, err := unmarshalTagged(data)
	if err != nil {
		if errors.Is(err, errMissingTag) {
			return ErrMissingBlockType
		}
		return fmt.Errorf("decode block: %w", err)
	}
	b.Type = BlockType(typ)
	b.Fields = fields
	return nil
}

// Decode narrows b into its typed variant. Blocks whose type is not known
// yield ErrUnknownBlockType.
func (b Block) Decode() (KnownBlock, error) {
	switch b.Type {
	case BlockTypeActions:
		return decodeAs[ActionsBlock](b)
	case BlockTypeContext:
		return decodeAs[ContextBlock](b)
	case BlockTypeDivider:
		return decodeAs[DividerBlock](b)
	case BlockTypeFile:
		return decodeAs[FileBlock](b)
	case BlockTypeHeader:
		return decodeAs[HeaderBlock](b)
	case BlockTypeImage:
		return decodeAs[ImageBlock](b)
	case BlockTypeInput:
		return decodeAs[InputBlock](b)
	case BlockTypeRichText:
		return decodeAs[RichTextBlock](b)
	case BlockTypeSection:
		return decodeAs[SectionBlock](b)
	case BlockTypeVideo:
		return decodeAs[VideoBlock](b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockType, b.Type)
	}
}

func decodeAs[T KnownBlock](b Block) (KnownBlock, error) {
	var v T
	data, err := json.Marshal(b.Fields)
	if err != nil {
		return nil, fmt.Errorf("encode %s block: %w", b.Type, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode %s block: %w", b.Type, err)
	}
	return v, nil
}

// ToBlock converts a typed block variant into its generic wire form
func ToBlock(kb KnownBlock) (Block, error) {
	if kb == nil {
		return Block{}, fmt.Errorf("%w: nil block", ErrMissingBlockType)
	}
	data, err := json.Marshal(kb)
	if err != nil {
		return Block{}, fmt.Errorf("encode %s block: %w", kb.BlockType(), err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Block{}, fmt.Errorf("decode %s block: %w", kb.BlockType(), err)
	}
	delete(fields, "type")
	return Block{Type: kb.BlockType(), Fields: fields}, nil
}

var errMissingTag = errors.New("missing string type field")

func marshalTagged(typ string, fields map[string]json.RawMessage) ([]byte, error) {
	out := make(map[string]json.RawMessage, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	tag, err := json.Marshal(typ)
	if err != nil {
		return nil, err
	}
	out["type"] = tag
	return json.Marshal(out)
}

func unmarshalTagged(data []byte) (string, map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", nil, err
	}
	if fields == nil {
		return "", nil, ErrNotObject
	}
	raw, ok := fields["type"]
	if !ok || !isJSONString(raw) {
		return "", nil, errMissingTag
	}
	var typ string
	if err := json.Unmarshal(raw, &typ); err != nil {
		return "", nil, err
	}
	delete(fields, "type")
	return typ, fields, nil
}

func isJSONString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '"'
}

func isJSONNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}
