package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Text object types
const (
	TextTypePlain  = "plain_text"
	TextTypeMrkdwn = "mrkdwn"
)

// TextObject is the composition object used for every text field in Block Kit
type TextObject struct {
	Type     string `json:"type"` // "plain_text" or "mrkdwn"
	Text     string `json:"text"`
	Emoji    *bool  `json:"emoji,omitempty"`    // plain_text only
	Verbatim *bool  `json:"verbatim,omitempty"` // mrkdwn only
}

// NewPlainText creates a plain_text object
func NewPlainText(text string) TextObject {
	return TextObject{Type: TextTypePlain, Text: text}
}

// NewMrkdwn creates a mrkdwn text object
func NewMrkdwn(text string) TextObject {
	return TextObject{Type: TextTypeMrkdwn, Text: text}
}

// SlackFileRef references an uploaded file by URL or id
type SlackFileRef struct {
	URL string `json:"url,omitempty"`
	ID  string `json:"id,omitempty"`
}

// Element is a block element (button, datepicker, rich_text_section, ...).
// Like Block, it keeps every key other than "type" verbatim.
type Element struct {
	Type   string
	Fields map[string]json.RawMessage
}

// NewElement creates an element of the given type with the supplied fields encoded
func NewElement(typ string, fields map[string]any) (Element, error) {
	el := Element{Type: typ}
	for name, value := range fields {
		if name == "type" {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return Element{}, fmt.Errorf("encode element field %q: %w", name, err)
		}
		if el.Fields == nil {
			el.Fields = make(map[string]json.RawMessage, len(fields))
		}
		el.Fields[name] = raw
	}
	return el, nil
}

// ActionID returns the element's action_id, or "" when absent
func (e Element) ActionID() string {
	var id string
	if raw, ok := e.Fields["action_id"]; ok {
		_ = json.Unmarshal(raw, &id)
	}
	return id
}

// MarshalJSON implements json.Marshaler
func (e Element) MarshalJSON() ([]byte, error) {
	return marshalTagged(e.Type, e.Fields)
}

// UnmarshalJSON implements json.Unmarshaler
func (e *Element) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	typ, fields, err := unmarshalTagged(data)
	if err != nil {
		if errors.Is(err, errMissingTag) {
			return errors.New("element has no string type field")
		}
		return fmt.Errorf("decode element: %w", err)
	}
	e.Type = typ
	e.Fields = fields
	return nil
}
