package types

import "github.com/google/uuid"

// ChatPostMessageArguments are the arguments of chat.postMessage.
// At least one of Text, Blocks or Attachments must be set.
type ChatPostMessageArguments struct {
	Channel        string       `json:"channel"`
	Text           string       `json:"text,omitempty"`
	Blocks         []Block      `json:"blocks,omitempty"`
	Attachments    []Attachment `json:"attachments,omitempty"`
	ThreadTS       string       `json:"thread_ts,omitempty"`
	ReplyBroadcast bool         `json:"reply_broadcast,omitempty"`
	Mrkdwn         *bool        `json:"mrkdwn,omitempty"`
	UnfurlLinks    *bool        `json:"unfurl_links,omitempty"`
	UnfurlMedia    *bool        `json:"unfurl_media,omitempty"`
	Username       string       `json:"username,omitempty"`
	IconEmoji      string       `json:"icon_emoji,omitempty"`
	IconURL        string       `json:"icon_url,omitempty"`
	Metadata       *MessageMeta `json:"metadata,omitempty"`
}

// HasContent reports whether the arguments carry text, blocks or attachments
func (a ChatPostMessageArguments) HasContent() bool {
	return a.Text != "" || len(a.Blocks) > 0 || a.Attachments != nil
}

// Attachment is a legacy secondary message attachment
type Attachment struct {
	Fallback string  `json:"fallback,omitempty"`
	Color    string  `json:"color,omitempty"`
	Pretext  string  `json:"pretext,omitempty"`
	Title    string  `json:"title,omitempty"`
	Text     string  `json:"text,omitempty"`
	Blocks   []Block `json:"blocks,omitempty"`
}

// MessageMeta is application metadata attached to a message
type MessageMeta struct {
	EventType    string         `json:"event_type"`
	EventPayload map[string]any `json:"event_payload"`
}

// Message is a message object as returned by the chat and conversations methods
type Message struct {
	Type        string       `json:"type"`
	Subtype     string       `json:"subtype,omitempty"`
	Text        string       `json:"text,omitempty"`
	User        string       `json:"user,omitempty"`
	BotID       string       `json:"bot_id,omitempty"`
	Username    string       `json:"username,omitempty"`
	TS          string       `json:"ts"`
	ThreadTS    string       `json:"thread_ts,omitempty"`
	Team        string       `json:"team,omitempty"`
	ClientMsgID string       `json:"client_msg_id,omitempty"`
	Blocks      []Block      `json:"blocks,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// ClientUUID parses client_msg_id. It reports false when the id is absent or
// not a UUID; decoding the message never fails on it.
func (m Message) ClientUUID() (uuid.UUID, bool) {
	if m.ClientMsgID == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(m.ClientMsgID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// KnownBlocks narrows every block of a known type, skipping the rest
func (m Message) KnownBlocks() []KnownBlock {
	var out []KnownBlock
	for _, b := range m.Blocks {
		if !b.Type.IsKnown() {
			continue
		}
		if kb, err := b.Decode(); err == nil {
			out = append(out, kb)
		}
	}
	return out
}

// ChatPostMessageResponse is the response of chat.postMessage
type ChatPostMessageResponse struct {
	APICallResult
	Channel string   `json:"channel,omitempty"`
	TS      string   `json:"ts,omitempty"`
	Message *Message `json:"message,omitempty"`
}
