package types

// KnownBlock is one of the officially recognised block variants. The set is
// closed: only types declared in this package implement it.
type KnownBlock interface {
	BlockType() BlockType
	knownBlock()
}

// ActionsBlock holds interactive elements such as buttons and selects
type ActionsBlock struct {
	BlockID  string    `json:"block_id,omitempty"`
	Elements []Element `json:"elements"`
}

func (ActionsBlock) BlockType() BlockType { return BlockTypeActions }
func (ActionsBlock) knownBlock()          {}

// ContextBlock displays small text and image elements
type ContextBlock struct {
	BlockID  string    `json:"block_id,omitempty"`
	Elements []Element `json:"elements"`
}

func (ContextBlock) BlockType() BlockType { return BlockTypeContext }
func (ContextBlock) knownBlock()          {}

// DividerBlock is a visual separator with no content
type DividerBlock struct {
	BlockID string `json:"block_id,omitempty"`
}

func (DividerBlock) BlockType() BlockType { return BlockTypeDivider }
func (DividerBlock) knownBlock()          {}

// FileBlock displays a remote file
type FileBlock struct {
	BlockID    string `json:"block_id,omitempty"`
	ExternalID string `json:"external_id"`
	Source     string `json:"source"`
}

func (FileBlock) BlockType() BlockType { return BlockTypeFile }
func (FileBlock) knownBlock()          {}

// HeaderBlock displays plain text in a larger, bold font
type HeaderBlock struct {
	BlockID string     `json:"block_id,omitempty"`
	Text    TextObject `json:"text"`
}

func (HeaderBlock) BlockType() BlockType { return BlockTypeHeader }
func (HeaderBlock) knownBlock()          {}

// ImageBlock displays an image by URL or by Slack file reference
type ImageBlock struct {
	BlockID   string        `json:"block_id,omitempty"`
	ImageURL  string        `json:"image_url,omitempty"`
	SlackFile *SlackFileRef `json:"slack_file,omitempty"`
	AltText   string        `json:"alt_text"`
	Title     *TextObject   `json:"title,omitempty"`
}

func (ImageBlock) BlockType() BlockType { return BlockTypeImage }
func (ImageBlock) knownBlock()          {}

// InputBlock collects information from users in modals and messages
type InputBlock struct {
	BlockID        string      `json:"block_id,omitempty"`
	Label          TextObject  `json:"label"`
	Element        Element     `json:"element"`
	Hint           *TextObject `json:"hint,omitempty"`
	Optional       bool        `json:"optional,omitempty"`
	DispatchAction bool        `json:"dispatch_action,omitempty"`
}

func (InputBlock) BlockType() BlockType { return BlockTypeInput }
func (InputBlock) knownBlock()          {}

// RichTextBlock displays formatted, structured text
type RichTextBlock struct {
	BlockID  string    `json:"block_id,omitempty"`
	Elements []Element `json:"elements"`
}

func (RichTextBlock) BlockType() BlockType { return BlockTypeRichText }
func (RichTextBlock) knownBlock()          {}

// SectionBlock displays text, optionally alongside fields and an accessory
type SectionBlock struct {
	BlockID   string       `json:"block_id,omitempty"`
	Text      *TextObject  `json:"text,omitempty"`
	Fields    []TextObject `json:"fields,omitempty"`
	Accessory *Element     `json:"accessory,omitempty"`
	Expand    bool         `json:"expand,omitempty"`
}

func (SectionBlock) BlockType() BlockType { return BlockTypeSection }
func (SectionBlock) knownBlock()          {}

// VideoBlock embeds a video player
type VideoBlock struct {
	BlockID         string      `json:"block_id,omitempty"`
	AltText         string      `json:"alt_text"`
	Title           TextObject  `json:"title"`
	TitleURL        string      `json:"title_url,omitempty"`
	VideoURL        string      `json:"video_url"`
	ThumbnailURL    string      `json:"thumbnail_url"`
	Description     *TextObject `json:"description,omitempty"`
	AuthorName      string      `json:"author_name,omitempty"`
	ProviderName    string      `json:"provider_name,omitempty"`
	ProviderIconURL string      `json:"provider_icon_url,omitempty"`
}

func (VideoBlock) BlockType() BlockType { return BlockTypeVideo }
func (VideoBlock) knownBlock()          {}
