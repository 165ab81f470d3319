package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/slack-api-types/internal/testutil"
	"github.com/cecil-the-coder/slack-api-types/pkg/types"
)

func TestKnownBlockTypes(t *testing.T) {
	got := types.KnownBlockTypes()
	assert.Equal(t, []types.BlockType{
		"actions", "context", "divider", "file", "header",
		"image", "input", "rich_text", "section", "video",
	}, got)

	// callers get a copy
	got[0] = "mutated"
	assert.Equal(t, types.BlockTypeActions, types.KnownBlockTypes()[0])

	assert.True(t, types.BlockTypeRichText.IsKnown())
	assert.False(t, types.BlockType("call").IsKnown())
	assert.False(t, types.BlockType("").IsKnown())
}

func TestBlockJSON(t *testing.T) {
	t.Run("unknown block round trips unchanged", func(t *testing.T) {
		in := `{"type":"unknown_future_type","payload":{"nested":[1,2,3]},"block_id":"b1"}`
		var b types.Block
		require.NoError(t, json.Unmarshal([]byte(in), &b))
		assert.Equal(t, types.BlockType("unknown_future_type"), b.Type)
		assert.Equal(t, "b1", b.BlockID())

		out, err := json.Marshal(b)
		require.NoError(t, err)
		assert.JSONEq(t, in, string(out))
	})

	t.Run("missing type", func(t *testing.T) {
		var b types.Block
		err := json.Unmarshal([]byte(`{"text":"hi"}`), &b)
		assert.ErrorIs(t, err, types.ErrMissingBlockType)
	})

	t.Run("non-string type", func(t *testing.T) {
		var b types.Block
		err := json.Unmarshal([]byte(`{"type":null}`), &b)
		assert.ErrorIs(t, err, types.ErrMissingBlockType)
	})

	t.Run("not an object", func(t *testing.T) {
		var b types.Block
		assert.Error(t, json.Unmarshal([]byte(`"section"`), &b))
	})

	t.Run("field accessors", func(t *testing.T) {
		b := types.NewBlock(types.BlockTypeImage)
		require.NoError(t, b.SetField("image_url", "https://example.com/a.png"))
		require.NoError(t, b.SetField("alt_text", "A picture"))
		assert.Error(t, b.SetField("type", "section"))

		raw, ok := b.Field("alt_text")
		require.True(t, ok)
		assert.JSONEq(t, `"A picture"`, string(raw))

		_, ok = b.Field("title")
		assert.False(t, ok)
		assert.Empty(t, b.BlockID())
	})

	t.Run("fields never override the type", func(t *testing.T) {
		b := types.Block{
			Type:   types.BlockTypeDivider,
			Fields: map[string]json.RawMessage{"type": json.RawMessage(`"section"`)},
		}
		out, err := json.Marshal(b)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"divider"}`, string(out))
	})
}

func TestBlockDecode(t *testing.T) {
	var decoded []types.Block
	require.NoError(t, json.Unmarshal(testutil.FixtureJSON(t, "message_blocks"), &decoded))

	t.Run("header", func(t *testing.T) {
		kb, err := decoded[0].Decode()
		require.NoError(t, err)
		header, ok := kb.(types.HeaderBlock)
		require.True(t, ok)
		assert.Equal(t, types.TextTypePlain, header.Text.Type)
		assert.Equal(t, "Deploy report", header.Text.Text)
	})

	t.Run("section with accessory", func(t *testing.T) {
		kb, err := decoded[1].Decode()
		require.NoError(t, err)
		section, ok := kb.(types.SectionBlock)
		require.True(t, ok)
		require.NotNil(t, section.Text)
		assert.Equal(t, types.TextTypeMrkdwn, section.Text.Type)
		require.NotNil(t, section.Accessory)
		assert.Equal(t, "datepicker", section.Accessory.Type)
		assert.Equal(t, "datepicker-action", section.Accessory.ActionID())
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := decoded[2].Decode()
		assert.ErrorIs(t, err, types.ErrUnknownBlockType)
	})

	t.Run("actions", func(t *testing.T) {
		kb, err := decoded[4].Decode()
		require.NoError(t, err)
		actions, ok := kb.(types.ActionsBlock)
		require.True(t, ok)
		require.Len(t, actions.Elements, 1)
		assert.Equal(t, "button", actions.Elements[0].Type)
		assert.Equal(t, "approve", actions.Elements[0].ActionID())
	})

	t.Run("every known type decodes to its own variant", func(t *testing.T) {
		for _, bt := range types.KnownBlockTypes() {
			kb, err := types.NewBlock(bt).Decode()
			require.NoError(t, err, "type %s", bt)
			assert.Equal(t, bt, kb.BlockType())
		}
	})

	t.Run("mistyped field", func(t *testing.T) {
		var b types.Block
		require.NoError(t, json.Unmarshal([]byte(`{"type":"header","text":"not an object"}`), &b))
		_, err := b.Decode()
		assert.Error(t, err)
		assert.NotErrorIs(t, err, types.ErrUnknownBlockType)
	})
}

func TestToBlock(t *testing.T) {
	section := types.SectionBlock{
		BlockID: "intro",
		Text:    &types.TextObject{Type: types.TextTypeMrkdwn, Text: "*Hello*"},
		Fields:  []types.TextObject{types.NewPlainText("a"), types.NewPlainText("b")},
	}

	b, err := types.ToBlock(section)
	require.NoError(t, err)
	assert.Equal(t, types.BlockTypeSection, b.Type)
	assert.Equal(t, "intro", b.BlockID())

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "section",
		"block_id": "intro",
		"text": {"type": "mrkdwn", "text": "*Hello*"},
		"fields": [{"type": "plain_text", "text": "a"}, {"type": "plain_text", "text": "b"}]
	}`, string(out))

	back, err := b.Decode()
	require.NoError(t, err)
	assert.Equal(t, section, back)

	_, err = types.ToBlock(nil)
	assert.Error(t, err)
}

func TestElement(t *testing.T) {
	el, err := types.NewElement("button", map[string]any{
		"action_id": "approve",
		"text":      types.NewPlainText("Approve"),
		"type":      "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "approve", el.ActionID())

	out, err := json.Marshal(el)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"button","action_id":"approve","text":{"type":"plain_text","text":"Approve"}}`, string(out))

	var back types.Element
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, el, back)

	assert.Error(t, json.Unmarshal([]byte(`{"action_id":"x"}`), &back))
}
