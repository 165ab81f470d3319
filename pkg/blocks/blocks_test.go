package blocks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/slack-api-types/internal/testutil"
	"github.com/cecil-the-coder/slack-api-types/pkg/types"
)

func TestIsBlock(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"string", "section", false},
		{"number", 42, false},
		{"slice", []any{map[string]any{"type": "divider"}}, false},
		{"map without type", map[string]any{"text": "hi"}, false},
		{"map with numeric type", map[string]any{"type": 1}, false},
		{"map with nil type", map[string]any{"type": nil}, false},
		{"nil map", map[string]any(nil), false},
		{"map with section type", map[string]any{"type": "section"}, true},
		{"map with unknown type", map[string]any{"type": "unknown_future_type"}, true},
		{"map with empty type", map[string]any{"type": ""}, true},
		{"raw response map", types.RawResponse{"type": "divider"}, true},
		{"generic block", types.NewBlock(types.BlockTypeDivider), true},
		{"block pointer", &types.Block{Type: types.BlockTypeHeader}, true},
		{"nil block pointer", (*types.Block)(nil), false},
		{"typed variant", types.DividerBlock{}, true},
		{"typed variant pointer", &types.SectionBlock{}, true},
		{"nil typed variant pointer", (*types.SectionBlock)(nil), false},
		{"raw json object", json.RawMessage(`{"type":"image","image_url":"https://example.com/a.png"}`), true},
		{"raw json bytes", []byte(`{"type":"video"}`), true},
		{"raw json null", json.RawMessage(`null`), false},
		{"raw json without type", json.RawMessage(`{"text":"hi"}`), false},
		{"raw json with numeric type", json.RawMessage(`{"type":3}`), false},
		{"raw json array", json.RawMessage(`[{"type":"divider"}]`), false},
		{"invalid raw json", []byte(`{"type":`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlock(tt.value))
		})
	}
}

func TestIsKnownBlock(t *testing.T) {
	t.Run("every known type", func(t *testing.T) {
		for _, bt := range types.KnownBlockTypes() {
			assert.True(t, IsKnownBlock(map[string]any{"type": string(bt)}), "type %s", bt)
			assert.True(t, IsKnownBlock(types.NewBlock(bt)), "type %s", bt)
		}
	})

	t.Run("unknown future type is a block but not a known block", func(t *testing.T) {
		v := map[string]any{"type": "unknown_future_type"}
		assert.True(t, IsBlock(v))
		assert.False(t, IsKnownBlock(v))
	})

	t.Run("call is not in the known set", func(t *testing.T) {
		assert.False(t, IsKnownBlock(map[string]any{"type": "call"}))
	})

	t.Run("non-blocks", func(t *testing.T) {
		assert.False(t, IsKnownBlock(nil))
		assert.False(t, IsKnownBlock(map[string]any{"kind": "section"}))
		assert.False(t, IsKnownBlock("section"))
	})

	t.Run("case sensitive", func(t *testing.T) {
		assert.False(t, IsKnownBlock(map[string]any{"type": "Section"}))
	})

	t.Run("known type is returned", func(t *testing.T) {
		bt, ok := KnownType(json.RawMessage(`{"type":"rich_text","elements":[]}`))
		require.True(t, ok)
		assert.Equal(t, types.BlockTypeRichText, bt)

		bt, ok = KnownType(map[string]any{"type": "unknown_future_type"})
		assert.False(t, ok)
		assert.Empty(t, bt)
	})
}

func TestVariantPredicates(t *testing.T) {
	predicates := map[types.BlockType]func(types.Block) bool{
		types.BlockTypeSection: IsSectionBlock,
		types.BlockTypeActions: IsActionsBlock,
		types.BlockTypeDivider: IsDividerBlock,
		types.BlockTypeHeader:  IsHeaderBlock,
		types.BlockTypeImage:   IsImageBlock,
		types.BlockTypeContext: IsContextBlock,
		types.BlockTypeInput:   IsInputBlock,
	}

	all := append(types.KnownBlockTypes(), "unknown_future_type", "")
	for want, predicate := range predicates {
		t.Run(string(want), func(t *testing.T) {
			for _, bt := range all {
				assert.Equal(t, bt == want, predicate(types.NewBlock(bt)), "block type %q", bt)
			}
		})
	}

	t.Run("no structural validation", func(t *testing.T) {
		// a section with no text is still a section
		assert.True(t, IsSectionBlock(types.Block{Type: types.BlockTypeSection}))
		assert.True(t, IsInputBlock(types.Block{Type: types.BlockTypeInput}))
	})
}

func TestValidateBlocks(t *testing.T) {
	t.Run("empty validates", func(t *testing.T) {
		assert.True(t, ValidateBlocks(nil))
		assert.True(t, ValidateBlocks([]any{}))
	})

	t.Run("all blocks including unknown types", func(t *testing.T) {
		values := testutil.BlockValuesFixture(t, "message_blocks")
		assert.True(t, ValidateBlocks(values))
	})

	t.Run("one non-block fails the whole slice", func(t *testing.T) {
		values := []any{
			map[string]any{"type": "section"},
			map[string]any{"text": "no type"},
			map[string]any{"type": "divider"},
		}
		assert.False(t, ValidateBlocks(values))
	})

	t.Run("mixed representations", func(t *testing.T) {
		values := []any{
			types.NewBlock(types.BlockTypeDivider),
			types.HeaderBlock{Text: types.NewPlainText("Title")},
			json.RawMessage(`{"type":"section"}`),
		}
		assert.True(t, ValidateBlocks(values))
	})
}

func TestFilterKnownBlocks(t *testing.T) {
	var decoded []types.Block
	require.NoError(t, json.Unmarshal(testutil.FixtureJSON(t, "message_blocks"), &decoded))
	require.Len(t, decoded, 7)

	known := FilterKnownBlocks(decoded)

	t.Run("drops unknown types and preserves order", func(t *testing.T) {
		got := make([]types.BlockType, 0, len(known))
		for _, b := range known {
			got = append(got, b.Type)
		}
		assert.Equal(t, []types.BlockType{
			types.BlockTypeHeader,
			types.BlockTypeSection,
			types.BlockTypeDivider,
			types.BlockTypeActions,
			types.BlockTypeContext,
		}, got)
	})

	t.Run("never longer than the input", func(t *testing.T) {
		assert.LessOrEqual(t, len(known), len(decoded))
	})

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, known, FilterKnownBlocks(known))
	})

	t.Run("every result is a known block", func(t *testing.T) {
		for _, b := range known {
			assert.True(t, IsKnownBlock(b))
		}
	})

	t.Run("input is untouched", func(t *testing.T) {
		assert.Len(t, decoded, 7)
		assert.Equal(t, types.BlockType("unknown_future_type"), decoded[2].Type)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, FilterKnownBlocks(nil))
	})
}
